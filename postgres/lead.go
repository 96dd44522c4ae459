package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	clinicflow "github.com/clinicflow/backend"
)

type LeadService struct {
	db *sqlx.DB
}

func NewLeadService(db *sqlx.DB) clinicflow.LeadService {
	return &LeadService{
		db: db,
	}
}

func (ls LeadService) Capture(ctx context.Context, lead clinicflow.Lead) error {
	const query = `
	INSERT INTO leads (
		id, project_id, name, email, phone, source, status, value_cents, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
	)`

	_, err := ls.db.ExecContext(ctx, query,
		lead.ID,
		lead.ProjectID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Source,
		lead.Status,
		lead.ValueCents,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	return err
}

func (ls LeadService) ListByProject(ctx context.Context, projectID string) ([]clinicflow.Lead, error) {
	const query = `
	SELECT
		id,
		project_id,
		name,
		email,
		phone,
		source,
		status,
		value_cents,
		created_at,
		updated_at
	FROM leads
	WHERE project_id = $1
	ORDER BY created_at`

	leads := []clinicflow.Lead{}
	if err := ls.db.SelectContext(ctx, &leads, query, projectID); err != nil {
		return nil, err
	}
	return leads, nil
}

func (ls LeadService) UpdateStatus(ctx context.Context, id string, status clinicflow.LeadStatus) error {
	const query = `
	UPDATE leads
	SET status = $1, updated_at = $2
	WHERE id = $3`

	res, err := ls.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return clinicflow.ErrLeadNotFound
	}
	return nil
}
