package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campushire/talent-hub/internal/domain/project"
	"github.com/campushire/talent-hub/pkg/apperror"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
}

func NewUpdateProjectUseCase(repo project.Repository) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: repo}
}

type UpdateProjectInput struct {
	ProjectID     uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	Description   string
	Stack         []string
	RepositoryURL *string
	LiveURL       *string
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	p.Title = input.Title
	p.Description = input.Description
	p.Stack = input.Stack
	p.RepositoryURL = input.RepositoryURL
	p.LiveURL = input.LiveURL
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return &UpdateProjectOutput{Project: p}, nil
}
