package clinicflow

import (
	"context"
	"errors"
	"time"

	"github.com/clinicflow/backend/money"
)

var ErrClinicNotFound = errors.New("clinic not found")

type Clinic struct {
	ID        string    `json:"id" db:"id"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	Name      string    `json:"name" db:"name"`
	City      string    `json:"city,omitempty" db:"city"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type UsageLog struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Event     string    `json:"event" db:"event"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ClientSummary is one row of the admin client listing.
type ClientSummary struct {
	Clinic Clinic `json:"clinic"`
	Owner  User   `json:"owner"`
}

// ClientStats holds the derived numbers for the admin client-details view.
// Any of them may be zero-substituted when its query fails; the primary
// clinic record is still served.
type ClientStats struct {
	PostsThisMonth int         `json:"posts_this_month"`
	PostsTotal     int         `json:"posts_total"`
	PaidCents      money.Cents `json:"paid_cents"`
	PaidFormatted  string      `json:"paid_formatted"`
	Logins         int         `json:"logins"`
}

type ClientDetails struct {
	Clinic  Clinic      `json:"clinic"`
	Owner   User        `json:"owner"`
	Project *Project    `json:"project,omitempty"`
	Stats   ClientStats `json:"stats"`
}

// AdminService exposes the read side used by the admin/CRM surface. The
// stat methods are split out so the handler can degrade each one
// independently.
type AdminService interface {
	ListClients(ctx context.Context) ([]ClientSummary, error)
	GetClient(ctx context.Context, clinicID string) (ClientDetails, error)
	PostCounts(ctx context.Context, projectID string) (month int, total int, err error)
	PaymentTotal(ctx context.Context, clinicID string) (money.Cents, error)
	LoginCount(ctx context.Context, userID string) (int, error)
}
