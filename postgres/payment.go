package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	clinicflow "github.com/clinicflow/backend"
)

type PaymentService struct {
	db *sqlx.DB
}

func NewPaymentService(db *sqlx.DB) clinicflow.PaymentService {
	return &PaymentService{
		db: db,
	}
}

func (ps PaymentService) Create(ctx context.Context, payment clinicflow.Payment) error {
	const query = `
	INSERT INTO payments (
		id, clinic_id, plan, amount_cents, status, charge_id, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7
	)`

	_, err := ps.db.ExecContext(ctx, query,
		payment.ID,
		payment.ClinicID,
		payment.Plan,
		payment.AmountCents,
		payment.Status,
		payment.ChargeID,
		payment.CreatedAt,
	)
	return err
}
