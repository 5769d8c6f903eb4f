package skill

import (
	"context"
	"time"

	"github.com/campushire/talent-hub/internal/domain/skill"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
	"github.com/google/uuid"
)

type SkillUseCase struct {
	repo   skill.Repository
	logger logger.Logger
}

func NewSkillUseCase(r skill.Repository, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: r, logger: log}
}

type CreateSkillInput struct {
	OwnerID     uuid.UUID
	Name        string
	Category    string
	Proficiency int
}

func (uc *SkillUseCase) CreateSkill(ctx context.Context, in CreateSkillInput) (*skill.Skill, error) {
	s := &skill.Skill{
		ID:          uuid.New(),
		OwnerID:     in.OwnerID,
		Name:        in.Name,
		Category:    in.Category,
		Proficiency: in.Proficiency,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

type UpdateSkillInput struct {
	SkillID     uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Category    string
	Proficiency int
}

func (uc *SkillUseCase) UpdateSkill(ctx context.Context, in UpdateSkillInput) (*skill.Skill, error) {
	s, err := uc.repo.FindByID(ctx, in.SkillID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	s.Name = in.Name
	s.Category = in.Category
	s.Proficiency = in.Proficiency

	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *SkillUseCase) DeleteSkill(ctx context.Context, id, ownerID uuid.UUID) error {
	return uc.repo.Delete(ctx, id, ownerID)
}

func (uc *SkillUseCase) ListSkills(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
