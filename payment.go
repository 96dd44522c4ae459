package clinicflow

import (
	"context"
	"time"

	"github.com/clinicflow/backend/money"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Payment struct {
	ID          string        `json:"id" db:"id"`
	ClinicID    string        `json:"clinic_id" db:"clinic_id"`
	Plan        string        `json:"plan" db:"plan"`
	AmountCents money.Cents   `json:"amount_cents" db:"amount_cents"`
	Status      PaymentStatus `json:"status" db:"status"`
	ChargeID    string        `json:"charge_id,omitempty" db:"charge_id"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}

type PaymentService interface {
	Create(ctx context.Context, payment Payment) error
}

// PixCharge is the result of creating a one-time charge with the billing
// provider.
type PixCharge struct {
	ID          string
	RedirectURL string
}

type Biller interface {
	CreateCharge(ctx context.Context, amount money.Cents, description string) (PixCharge, error)
}
