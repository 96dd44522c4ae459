package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	clinicflow "github.com/clinicflow/backend"
)

type PostService struct {
	db *sqlx.DB
}

func NewPostService(db *sqlx.DB) clinicflow.PostService {
	return &PostService{
		db: db,
	}
}

func (ps PostService) Create(ctx context.Context, post clinicflow.Post) error {
	const query = `
	INSERT INTO posts (
		id, project_id, title, body, published, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6
	)`

	_, err := ps.db.ExecContext(ctx, query,
		post.ID,
		post.ProjectID,
		post.Title,
		post.Body,
		post.Published,
		post.CreatedAt,
	)
	return err
}

func (ps PostService) ListByProject(ctx context.Context, projectID string) ([]clinicflow.Post, error) {
	const query = `
	SELECT id, project_id, title, body, published, created_at
	FROM posts
	WHERE project_id = $1
	ORDER BY created_at DESC`

	posts := []clinicflow.Post{}
	if err := ps.db.SelectContext(ctx, &posts, query, projectID); err != nil {
		return nil, err
	}
	return posts, nil
}
