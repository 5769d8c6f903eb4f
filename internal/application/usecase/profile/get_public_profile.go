package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushire/talent-hub/internal/domain/project"
	"github.com/campushire/talent-hub/internal/domain/skill"
	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/pkg/apperror"
)

type GetPublicProfileUseCase struct {
	talentRepo  talent.Repository
	skillRepo   skill.Repository
	projectRepo project.Repository
}

func NewGetPublicProfileUseCase(tRepo talent.Repository, sRepo skill.Repository, pRepo project.Repository) *GetPublicProfileUseCase {
	return &GetPublicProfileUseCase{
		talentRepo:  tRepo,
		skillRepo:   sRepo,
		projectRepo: pRepo,
	}
}

type GetPublicProfileInput struct {
	ProfileID uuid.UUID
	// CallerID is uuid.Nil for anonymous viewers.
	CallerID    uuid.UUID
	CallerAdmin bool
}

type GetPublicProfileOutput struct {
	Profile      *talent.Profile
	Skills       []*skill.Skill
	Projects     []*project.Project
	SkillCount   int
	ProjectCount int
}

// Execute assembles a profile with its owned skills and projects. Profiles
// that are not publicly listable are visible only to their owner or an admin.
func (uc *GetPublicProfileUseCase) Execute(ctx context.Context, input GetPublicProfileInput) (*GetPublicProfileOutput, error) {
	p, err := uc.talentRepo.FindByOwner(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	if !p.Listable() {
		isOwner := input.CallerID != uuid.Nil && input.CallerID == p.OwnerID
		if !isOwner && !input.CallerAdmin {
			return nil, apperror.NewForbidden("profile is not public")
		}
	}

	skills, err := uc.skillRepo.ListByOwner(ctx, p.OwnerID)
	if err != nil {
		return nil, err
	}

	projects, err := uc.projectRepo.ListByOwner(ctx, p.OwnerID, 50, 0)
	if err != nil {
		return nil, err
	}

	// Counts come from the database, not the capped listings.
	skillCount, projectCount, err := uc.talentRepo.CountOwned(ctx, p.OwnerID)
	if err != nil {
		return nil, err
	}

	return &GetPublicProfileOutput{
		Profile:      p,
		Skills:       skills,
		Projects:     projects,
		SkillCount:   skillCount,
		ProjectCount: projectCount,
	}, nil
}
