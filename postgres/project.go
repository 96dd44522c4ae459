package postgres

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	clinicflow "github.com/clinicflow/backend"
)

type QuizService struct {
	db *sqlx.DB
}

func NewQuizService(db *sqlx.DB) clinicflow.QuizService {
	return &QuizService{
		db: db,
	}
}

// SubmitQuiz stores the answer snapshot as the project's brand
// configuration. Resubmitting overwrites the previous snapshot whole.
func (qs QuizService) SubmitQuiz(ctx context.Context, projectID string, answers clinicflow.QuizAnswers) error {
	brand, err := json.Marshal(answers)
	if err != nil {
		return err
	}

	const query = `
	UPDATE projects
	SET brand = $1
	WHERE id = $2`

	res, err := qs.db.ExecContext(ctx, query, brand, projectID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return clinicflow.ErrProjectNotFound
	}
	return nil
}
