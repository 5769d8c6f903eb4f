package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/pkg/logger"
	"github.com/gorilla/feeds"
)

type FeedUseCase struct {
	talentRepo talent.Repository
	baseURL    string
	logger     logger.Logger
}

func NewFeedUseCase(repo talent.Repository, baseURL string, log logger.Logger) *FeedUseCase {
	return &FeedUseCase{
		talentRepo: repo,
		baseURL:    baseURL,
		logger:     log,
	}
}

// Execute builds an RSS feed of recently approved, visible profiles.
func (uc *FeedUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	uc.logger.Info("Generating talent feed...")

	now := time.Now()
	feed := &feeds.Feed{
		Title:       "Talent Hub - New Talent",
		Link:        &feeds.Link{Href: uc.baseURL + "/api/talents"},
		Description: "Recently approved talent profiles.",
		Created:     now,
	}

	profiles, err := uc.talentRepo.ListRecentlyApproved(ctx, 20)
	if err != nil {
		uc.logger.Error("Failed to list approved profiles for feed", err)
		return nil, err
	}

	items := make([]*feeds.Item, 0, len(profiles))
	for _, p := range profiles {
		item := &feeds.Item{
			Title:       fmt.Sprintf("%s - %s", p.FullName, p.Headline),
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/api/talents/%s", uc.baseURL, p.OwnerID)},
			Description: p.Bio,
			Created:     p.CreatedAt,
		}
		if p.ReviewedAt != nil {
			item.Created = *p.ReviewedAt
		}
		items = append(items, item)
	}
	feed.Items = items

	return feed, nil
}
