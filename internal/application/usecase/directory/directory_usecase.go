package directory

import (
	"context"

	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
	"go.uber.org/zap"
)

// Cache is a read-through cache over the directory listing. Implementations
// return (nil, nil) on a miss.
type Cache interface {
	GetListing(ctx context.Context, filter talent.DirectoryFilter) ([]*talent.Profile, error)
	SetListing(ctx context.Context, filter talent.DirectoryFilter, profiles []*talent.Profile) error
	InvalidateDirectory(ctx context.Context) error
}

type DirectoryUseCase struct {
	talentRepo talent.Repository
	cache      Cache
	logger     logger.Logger
}

func NewDirectoryUseCase(repo talent.Repository, cache Cache, log logger.Logger) *DirectoryUseCase {
	return &DirectoryUseCase{
		talentRepo: repo,
		cache:      cache,
		logger:     log,
	}
}

type ListInput struct {
	Query string
	Sort  string
	Page  int
	Limit int
}

type ListOutput struct {
	Profiles []*talent.Profile
}

// Execute returns profiles that are approved and visible, nothing else. Sort
// is a refinement: equal keys keep registration order.
func (uc *DirectoryUseCase) Execute(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Limit <= 0 || input.Limit > 100 {
		input.Limit = 20
	}
	if input.Page <= 0 {
		input.Page = 1
	}

	sort := talent.SortKey(input.Sort)
	switch sort {
	case talent.SortRecent, talent.SortRating, talent.SortTop:
	case "":
		sort = talent.SortRecent
	default:
		return nil, apperror.NewInvalidInput("sort must be one of recent, rating, top", nil)
	}

	filter := talent.DirectoryFilter{
		Query:  input.Query,
		Sort:   sort,
		Limit:  input.Limit,
		Offset: (input.Page - 1) * input.Limit,
	}

	// Cache only browse traffic; searches are too sparse to be worth it.
	cacheable := filter.Query == ""

	if cacheable {
		cached, err := uc.cache.GetListing(ctx, filter)
		if err != nil {
			uc.logger.Warn("Directory cache read failed", zap.Error(err))
		} else if cached != nil {
			return &ListOutput{Profiles: cached}, nil
		}
	}

	profiles, err := uc.talentRepo.ListDirectory(ctx, filter)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := uc.cache.SetListing(ctx, filter, profiles); err != nil {
			uc.logger.Warn("Directory cache write failed", zap.Error(err))
		}
	}

	return &ListOutput{Profiles: profiles}, nil
}
