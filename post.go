package clinicflow

import (
	"context"
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

type Post struct {
	ID        string    `json:"id" db:"id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	Published bool      `json:"published" db:"published"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type PostService interface {
	Create(ctx context.Context, post Post) error
	ListByProject(ctx context.Context, projectID string) ([]Post, error)
}
