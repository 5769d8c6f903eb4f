package moderation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/campushire/talent-hub/internal/domain/moderation"
	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type fakeTalentRepo struct {
	talent.Repository

	lastOwnerID uuid.UUID
	lastUpdate  talent.ReviewUpdate
	applyErr    error
	profile     *talent.Profile
}

func (f *fakeTalentRepo) ApplyReview(ctx context.Context, ownerID uuid.UUID, upd talent.ReviewUpdate) (*talent.Profile, error) {
	f.lastOwnerID = ownerID
	f.lastUpdate = upd
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	p := *f.profile
	p.Status = upd.Status
	p.ReviewNote = upd.ReviewNote
	p.RequestedChanges = upd.RequestedChanges
	p.ReviewedAt = &upd.ReviewedAt
	return &p, nil
}

type fakeNotifier struct {
	intents []domain.NotificationIntent
	err     error
}

func (f *fakeNotifier) Notify(ctx context.Context, intent domain.NotificationIntent) error {
	f.intents = append(f.intents, intent)
	return f.err
}

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) InvalidateDirectory(ctx context.Context) error {
	f.calls++
	return f.err
}

func pendingProfile() *talent.Profile {
	return &talent.Profile{
		OwnerID:        uuid.New(),
		FullName:       "Linh Pham",
		ProfileVisible: true,
		Status:         talent.StatusPending,
		CreatedAt:      time.Now().UTC(),
	}
}

func adminReviewer() domain.Reviewer {
	return domain.Reviewer{UserID: uuid.New(), Admin: true}
}

func TestApplyDecision_Approve(t *testing.T) {
	repo := &fakeTalentRepo{profile: pendingProfile()}
	notifier := &fakeNotifier{}
	cache := &fakeInvalidator{}
	uc := NewApplyDecisionUseCase(repo, notifier, cache, logger.NewNop())

	out, err := uc.Execute(context.Background(), ApplyDecisionInput{
		Reviewer: adminReviewer(),
		Decision: domain.Decision{ProfileID: repo.profile.OwnerID, Kind: domain.DecisionApprove},
	})

	require.NoError(t, err)
	assert.Equal(t, talent.StatusApproved, out.Profile.Status)
	assert.Empty(t, out.Profile.ReviewNote)
	assert.Empty(t, out.Profile.RequestedChanges)
	assert.NotNil(t, out.Profile.ReviewedAt)

	assert.Equal(t, 1, cache.calls)
	require.Len(t, notifier.intents, 1)
	assert.Equal(t, domain.NotificationApproved, notifier.intents[0].Kind)
	assert.Equal(t, repo.profile.OwnerID, notifier.intents[0].RecipientID)
}

func TestApplyDecision_Approve_HiddenProfileSkipsInvalidation(t *testing.T) {
	p := pendingProfile()
	p.ProfileVisible = false
	repo := &fakeTalentRepo{profile: p}
	cache := &fakeInvalidator{}
	uc := NewApplyDecisionUseCase(repo, &fakeNotifier{}, cache, logger.NewNop())

	_, err := uc.Execute(context.Background(), ApplyDecisionInput{
		Reviewer: adminReviewer(),
		Decision: domain.Decision{ProfileID: p.OwnerID, Kind: domain.DecisionApprove},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, cache.calls)
}

func TestApplyDecision_Reject(t *testing.T) {
	repo := &fakeTalentRepo{profile: pendingProfile()}
	notifier := &fakeNotifier{}
	uc := NewApplyDecisionUseCase(repo, notifier, &fakeInvalidator{}, logger.NewNop())

	out, err := uc.Execute(context.Background(), ApplyDecisionInput{
		Reviewer: adminReviewer(),
		Decision: domain.Decision{
			ProfileID: repo.profile.OwnerID,
			Kind:      domain.DecisionReject,
			Note:      "portfolio links are broken",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, talent.StatusRejected, out.Profile.Status)
	assert.Equal(t, "portfolio links are broken", out.Profile.ReviewNote)
	require.Len(t, notifier.intents, 1)
	assert.Equal(t, domain.NotificationRejected, notifier.intents[0].Kind)
	assert.Contains(t, notifier.intents[0].Message, "portfolio links are broken")
}

func TestApplyDecision_RequestChanges_StaysPending(t *testing.T) {
	repo := &fakeTalentRepo{profile: pendingProfile()}
	notifier := &fakeNotifier{}
	cache := &fakeInvalidator{}
	uc := NewApplyDecisionUseCase(repo, notifier, cache, logger.NewNop())

	out, err := uc.Execute(context.Background(), ApplyDecisionInput{
		Reviewer: adminReviewer(),
		Decision: domain.Decision{
			ProfileID:        repo.profile.OwnerID,
			Kind:             domain.DecisionRequestChanges,
			Note:             "please add a bio",
			RequestedChanges: []string{"bio", "avatar"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, talent.StatusPending, out.Profile.Status)
	assert.Equal(t, "please add a bio", out.Profile.ReviewNote)
	assert.Equal(t, []string{"bio", "avatar"}, out.Profile.RequestedChanges)

	assert.Equal(t, 0, cache.calls)
	require.Len(t, notifier.intents, 1)
	assert.Equal(t, domain.NotificationChangesWanted, notifier.intents[0].Kind)
}

func TestApplyDecision_NonAdminForbidden(t *testing.T) {
	repo := &fakeTalentRepo{profile: pendingProfile()}
	uc := NewApplyDecisionUseCase(repo, &fakeNotifier{}, &fakeInvalidator{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), ApplyDecisionInput{
		Reviewer: domain.Reviewer{UserID: uuid.New(), Admin: false},
		Decision: domain.Decision{ProfileID: repo.profile.OwnerID, Kind: domain.DecisionApprove},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.Equal(t, uuid.Nil, repo.lastOwnerID)
}

func TestApplyDecision_InvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		decision domain.Decision
	}{
		{
			name:     "unknown kind",
			decision: domain.Decision{ProfileID: uuid.New(), Kind: "escalate"},
		},
		{
			name:     "reject without note",
			decision: domain.Decision{ProfileID: uuid.New(), Kind: domain.DecisionReject},
		},
		{
			name:     "request changes without note",
			decision: domain.Decision{ProfileID: uuid.New(), Kind: domain.DecisionRequestChanges},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeTalentRepo{profile: pendingProfile()}
			uc := NewApplyDecisionUseCase(repo, &fakeNotifier{}, &fakeInvalidator{}, logger.NewNop())

			_, err := uc.Execute(context.Background(), ApplyDecisionInput{
				Reviewer: adminReviewer(),
				Decision: tc.decision,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, apperror.ErrInvalidInput)
			assert.Equal(t, uuid.Nil, repo.lastOwnerID)
		})
	}
}

func TestApplyDecision_AlreadyReviewedConflict(t *testing.T) {
	repo := &fakeTalentRepo{
		profile:  pendingProfile(),
		applyErr: apperror.NewInvalidState("profile", "profile has already been reviewed"),
	}
	notifier := &fakeNotifier{}
	uc := NewApplyDecisionUseCase(repo, notifier, &fakeInvalidator{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), ApplyDecisionInput{
		Reviewer: adminReviewer(),
		Decision: domain.Decision{ProfileID: repo.profile.OwnerID, Kind: domain.DecisionApprove},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Empty(t, notifier.intents)
}

func TestApplyDecision_CacheFailureDoesNotFailDecision(t *testing.T) {
	repo := &fakeTalentRepo{profile: pendingProfile()}
	cache := &fakeInvalidator{err: errors.New("redis unreachable")}
	uc := NewApplyDecisionUseCase(repo, &fakeNotifier{}, cache, logger.NewNop())

	out, err := uc.Execute(context.Background(), ApplyDecisionInput{
		Reviewer: adminReviewer(),
		Decision: domain.Decision{ProfileID: repo.profile.OwnerID, Kind: domain.DecisionApprove},
	})

	require.NoError(t, err)
	assert.Equal(t, talent.StatusApproved, out.Profile.Status)
	assert.Equal(t, 1, cache.calls)
}

func TestApplyDecision_NotifyFailureDoesNotFailDecision(t *testing.T) {
	repo := &fakeTalentRepo{profile: pendingProfile()}
	notifier := &fakeNotifier{err: errors.New("broker unreachable")}
	uc := NewApplyDecisionUseCase(repo, notifier, &fakeInvalidator{}, logger.NewNop())

	out, err := uc.Execute(context.Background(), ApplyDecisionInput{
		Reviewer: adminReviewer(),
		Decision: domain.Decision{ProfileID: repo.profile.OwnerID, Kind: domain.DecisionApprove},
	})

	require.NoError(t, err)
	assert.Equal(t, talent.StatusApproved, out.Profile.Status)
}
