package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	clinicflow "github.com/clinicflow/backend"
	"github.com/clinicflow/backend/money"
)

type AdminService struct {
	db *sqlx.DB
}

func NewAdminService(db *sqlx.DB) clinicflow.AdminService {
	return &AdminService{
		db: db,
	}
}

func (as AdminService) ListClients(ctx context.Context) ([]clinicflow.ClientSummary, error) {
	const query = `
	SELECT
		c.id, c.owner_id, c.name, c.city, c.phone, c.created_at,
		u.id AS user_id, u.name AS user_name, u.email AS user_email, u.created_at AS user_created_at
	FROM clinics c
	JOIN users u ON u.id = c.owner_id
	ORDER BY c.created_at DESC`

	rows, err := as.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []clinicflow.ClientSummary{}
	for rows.Next() {
		var cs clinicflow.ClientSummary
		if err := rows.Scan(
			&cs.Clinic.ID,
			&cs.Clinic.OwnerID,
			&cs.Clinic.Name,
			&cs.Clinic.City,
			&cs.Clinic.Phone,
			&cs.Clinic.CreatedAt,
			&cs.Owner.ID,
			&cs.Owner.Name,
			&cs.Owner.Email,
			&cs.Owner.CreatedAt,
		); err != nil {
			return nil, err
		}
		clients = append(clients, cs)
	}
	return clients, rows.Err()
}

// GetClient loads the primary clinic record with its owner and project.
// Stats are not computed here; the handler gathers them one by one so a
// failing stat query never sinks the whole response.
func (as AdminService) GetClient(ctx context.Context, clinicID string) (clinicflow.ClientDetails, error) {
	var details clinicflow.ClientDetails

	const clinicQuery = `
	SELECT id, owner_id, name, city, phone, created_at
	FROM clinics
	WHERE id = $1`

	if err := as.db.GetContext(ctx, &details.Clinic, clinicQuery, clinicID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return details, clinicflow.ErrClinicNotFound
		}
		return details, err
	}

	const ownerQuery = `
	SELECT id, name, email, created_at
	FROM users
	WHERE id = $1`

	if err := as.db.GetContext(ctx, &details.Owner, ownerQuery, details.Clinic.OwnerID); err != nil {
		return details, err
	}

	const projectQuery = `
	SELECT id, clinic_id, name, created_at
	FROM projects
	WHERE clinic_id = $1
	ORDER BY created_at
	LIMIT 1`

	var project clinicflow.Project
	err := as.db.GetContext(ctx, &project, projectQuery, details.Clinic.ID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// A clinic that never finished onboarding has no project yet.
	case err != nil:
		return details, err
	default:
		details.Project = &project
	}

	return details, nil
}

func (as AdminService) PostCounts(ctx context.Context, projectID string) (int, int, error) {
	const query = `
	SELECT
		COUNT(*) FILTER (WHERE created_at >= date_trunc('month', now())) AS month,
		COUNT(*) AS total
	FROM posts
	WHERE project_id = $1`

	var month, total int
	if err := as.db.QueryRowContext(ctx, query, projectID).Scan(&month, &total); err != nil {
		return 0, 0, err
	}
	return month, total, nil
}

func (as AdminService) PaymentTotal(ctx context.Context, clinicID string) (money.Cents, error) {
	const query = `
	SELECT COALESCE(SUM(amount_cents), 0)
	FROM payments
	WHERE clinic_id = $1 AND status = 'paid'`

	var total money.Cents
	if err := as.db.QueryRowContext(ctx, query, clinicID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (as AdminService) LoginCount(ctx context.Context, userID string) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM usage_logs
	WHERE user_id = $1 AND event = 'login'`

	var count int
	if err := as.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
