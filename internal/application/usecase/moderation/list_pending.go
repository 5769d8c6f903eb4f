package moderation

import (
	"context"

	"github.com/campushire/talent-hub/internal/domain/moderation"
	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/pkg/apperror"
)

type ListPendingUseCase struct {
	talentRepo talent.Repository
}

func NewListPendingUseCase(repo talent.Repository) *ListPendingUseCase {
	return &ListPendingUseCase{talentRepo: repo}
}

type ListPendingInput struct {
	Reviewer moderation.Reviewer
	Page     int
	Limit    int
}

type PendingItem struct {
	Profile      *talent.Profile
	SkillCount   int
	ProjectCount int
}

type ListPendingOutput struct {
	Items []PendingItem
}

// Execute returns the review queue, oldest submissions first.
func (uc *ListPendingUseCase) Execute(ctx context.Context, input ListPendingInput) (*ListPendingOutput, error) {
	if !input.Reviewer.Admin {
		return nil, apperror.NewForbidden("review queue requires the admin capability")
	}

	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Page <= 0 {
		input.Page = 1
	}
	offset := (input.Page - 1) * input.Limit

	profiles, err := uc.talentRepo.ListPending(ctx, input.Limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]PendingItem, 0, len(profiles))
	for _, p := range profiles {
		skills, projects, err := uc.talentRepo.CountOwned(ctx, p.OwnerID)
		if err != nil {
			return nil, err
		}
		items = append(items, PendingItem{Profile: p, SkillCount: skills, ProjectCount: projects})
	}

	return &ListPendingOutput{Items: items}, nil
}
