package clinicflow

import (
	"context"
	"errors"
	"time"

	"github.com/clinicflow/backend/money"
)

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidStatus = errors.New("invalid lead status")
	ErrNameRequired  = errors.New("name is required")
)

// LeadStatus is the closed set of lifecycle states for a captured lead.
// Any status may be overwritten by any other; there is no transition graph.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusScheduled LeadStatus = "scheduled"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusScheduled, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

type Lead struct {
	ID         string      `json:"id" db:"id"`
	ProjectID  string      `json:"project_id" db:"project_id"`
	Name       string      `json:"name" db:"name"`
	Email      string      `json:"email,omitempty" db:"email"`
	Phone      string      `json:"phone,omitempty" db:"phone"`
	Source     string      `json:"source,omitempty" db:"source"`
	Status     LeadStatus  `json:"status" db:"status"`
	ValueCents money.Cents `json:"value_cents,omitempty" db:"value_cents"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" db:"updated_at"`
}

type LeadService interface {
	Capture(ctx context.Context, lead Lead) error
	ListByProject(ctx context.Context, projectID string) ([]Lead, error)
	UpdateStatus(ctx context.Context, id string, status LeadStatus) error
}
