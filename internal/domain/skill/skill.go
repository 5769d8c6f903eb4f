package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	CategoryLanguage  = "language"
	CategoryFramework = "framework"
	CategoryTool      = "tool"
	CategoryDesign    = "design"
	CategorySoft      = "soft"
)

type Skill struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Proficiency int       `json:"proficiency"`
	CreatedAt   time.Time `json:"created_at"`
}

var (
	ErrInvalidCategory    = errors.New("invalid skill category")
	ErrInvalidProficiency = errors.New("proficiency must be between 1 and 5")
)

func (s *Skill) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	switch s.Category {
	case CategoryLanguage, CategoryFramework, CategoryTool, CategoryDesign, CategorySoft:

	default:
		return ErrInvalidCategory
	}
	if s.Proficiency < 1 || s.Proficiency > 5 {
		return ErrInvalidProficiency
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Skill, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Skill, error)
}
