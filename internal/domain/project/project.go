package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Stack         []string  `json:"stack"`
	RepositoryURL *string   `json:"repository_url"`
	LiveURL       *string   `json:"live_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

var ErrTitleRequired = errors.New("title is required")

func (p *Project) Validate() error {
	if p.Title == "" {
		return ErrTitleRequired
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Project, error)
}
