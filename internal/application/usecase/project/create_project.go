package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campushire/talent-hub/internal/domain/project"
	"github.com/campushire/talent-hub/pkg/apperror"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
}

func NewCreateProjectUseCase(repo project.Repository) *CreateProjectUseCase {
	return &CreateProjectUseCase{projectRepo: repo}
}

type CreateProjectInput struct {
	OwnerID       uuid.UUID
	Title         string
	Description   string
	Stack         []string
	RepositoryURL *string
	LiveURL       *string
}

type CreateProjectOutput struct {
	ProjectID uuid.UUID
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {

	now := time.Now().UTC()

	newProject := &project.Project{
		ID:            uuid.New(),
		OwnerID:       input.OwnerID,
		Title:         input.Title,
		Description:   input.Description,
		Stack:         input.Stack,
		RepositoryURL: input.RepositoryURL,
		LiveURL:       input.LiveURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := newProject.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, err
	}

	return &CreateProjectOutput{ProjectID: newProject.ID}, nil
}
