package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
	"go.uber.org/zap"
)

type ProfileUseCase struct {
	talentRepo talent.Repository
	cache      DirectoryCacheInvalidator
	logger     logger.Logger
}

// DirectoryCacheInvalidator drops cached public listings after a write that
// can change what the directory shows.
type DirectoryCacheInvalidator interface {
	InvalidateDirectory(ctx context.Context) error
}

func NewProfileUseCase(repo talent.Repository, cache DirectoryCacheInvalidator, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{talentRepo: repo, cache: cache, logger: log}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Profile *talent.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.talentRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	OwnerID        uuid.UUID
	FullName       string
	Headline       string
	Institution    string
	Major          string
	GraduationYear *int
	Bio            string
	Location       string
	Links          talent.Links
}

type UpdateProfileOutput struct {
	Profile *talent.Profile
}

// ExecuteUpdateProfile writes descriptive fields only. Status, visibility and
// review feedback are untouched on this path.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p, err := uc.talentRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	p.FullName = input.FullName
	p.Headline = input.Headline
	p.Institution = input.Institution
	p.Major = input.Major
	p.GraduationYear = input.GraduationYear
	p.Bio = input.Bio
	p.Location = input.Location
	p.Links = input.Links
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("profile validation failed", err)
	}

	if err := uc.talentRepo.UpdateFields(ctx, p); err != nil {
		return nil, err
	}

	if p.Listable() {
		if err := uc.cache.InvalidateDirectory(ctx); err != nil {
			uc.logger.Warn("Failed to invalidate directory cache",
				zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		}
	}

	return &UpdateProfileOutput{Profile: p}, nil
}

type SetVisibilityInput struct {
	OwnerID uuid.UUID
	Visible bool
}

func (uc *ProfileUseCase) ExecuteSetVisibility(ctx context.Context, input SetVisibilityInput) error {
	if err := uc.talentRepo.SetVisibility(ctx, input.OwnerID, input.Visible); err != nil {
		return err
	}
	if err := uc.cache.InvalidateDirectory(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate directory cache",
			zap.String("owner_id", input.OwnerID.String()), zap.Error(err))
	}
	return nil
}

type GetReviewStateInput struct {
	OwnerID uuid.UUID
}

type GetReviewStateOutput struct {
	Status           talent.Status
	ReviewNote       string
	RequestedChanges []string
	ReviewedAt       *time.Time
}

// ExecuteGetReviewState surfaces the reviewer feedback to the profile owner.
func (uc *ProfileUseCase) ExecuteGetReviewState(ctx context.Context, input GetReviewStateInput) (*GetReviewStateOutput, error) {
	p, err := uc.talentRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &GetReviewStateOutput{
		Status:           p.Status,
		ReviewNote:       p.ReviewNote,
		RequestedChanges: p.RequestedChanges,
		ReviewedAt:       p.ReviewedAt,
	}, nil
}
