package moderation

import (
	"context"
	"fmt"
	"time"

	"github.com/campushire/talent-hub/internal/domain/moderation"
	"github.com/campushire/talent-hub/internal/domain/talent"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ApplyDecisionUseCase struct {
	talentRepo talent.Repository
	notifier   moderation.Notifier
	cache      DirectoryCacheInvalidator
	logger     logger.Logger
}

// DirectoryCacheInvalidator drops cached public listings; an approval must be
// visible on the next directory query.
type DirectoryCacheInvalidator interface {
	InvalidateDirectory(ctx context.Context) error
}

func NewApplyDecisionUseCase(repo talent.Repository, notifier moderation.Notifier, cache DirectoryCacheInvalidator, log logger.Logger) *ApplyDecisionUseCase {
	return &ApplyDecisionUseCase{
		talentRepo: repo,
		notifier:   notifier,
		cache:      cache,
		logger:     log,
	}
}

type ApplyDecisionInput struct {
	Reviewer moderation.Reviewer
	Decision moderation.Decision
}

type ApplyDecisionOutput struct {
	Profile *talent.Profile
}

var tracer = otel.Tracer("moderation_usecase")

// Execute runs one review decision against one pending profile.
//
// Transitions: pending -> approved, pending -> rejected. A request_changes
// decision leaves the profile pending and records the reviewer feedback on
// the row. Profiles already approved or rejected are never re-decided; the
// repository guard surfaces that as a conflict.
func (uc *ApplyDecisionUseCase) Execute(ctx context.Context, input ApplyDecisionInput) (*ApplyDecisionOutput, error) {

	ctx, span := tracer.Start(ctx, "ApplyDecision")
	defer span.End()

	if !input.Reviewer.Admin {
		return nil, apperror.NewForbidden("review decisions require the admin capability")
	}

	d := input.Decision
	if !d.Kind.Valid() {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown decision kind '%s'", d.Kind), nil)
	}
	if d.Kind != moderation.DecisionApprove && d.Note == "" {
		return nil, apperror.NewInvalidInput("a note is required when rejecting or requesting changes", nil)
	}

	now := time.Now().UTC()
	upd := talent.ReviewUpdate{ReviewedAt: now}

	switch d.Kind {
	case moderation.DecisionApprove:
		// Approval clears any previous change-request feedback.
		upd.Status = talent.StatusApproved
	case moderation.DecisionReject:
		upd.Status = talent.StatusRejected
		upd.ReviewNote = d.Note
	case moderation.DecisionRequestChanges:
		upd.Status = talent.StatusPending
		upd.ReviewNote = d.Note
		upd.RequestedChanges = d.RequestedChanges
	}

	p, err := uc.talentRepo.ApplyReview(ctx, d.ProfileID, upd)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("profile_id", d.ProfileID.String()),
		attribute.String("decision", string(d.Kind)),
	)
	uc.logger.Info("Review decision applied",
		zap.String("profile_id", d.ProfileID.String()),
		zap.String("decision", string(d.Kind)),
		zap.String("reviewer_id", input.Reviewer.UserID.String()),
	)

	if p.Listable() {
		if err := uc.cache.InvalidateDirectory(ctx); err != nil {
			uc.logger.Warn("Failed to invalidate directory cache",
				zap.String("profile_id", d.ProfileID.String()), zap.Error(err))
		}
	}

	// Notification is fire-and-forget: the transition stands even if the
	// intent cannot be emitted.
	intent := buildIntent(p, d, now)
	if err := uc.notifier.Notify(ctx, intent); err != nil {
		uc.logger.Warn("Failed to emit review notification",
			zap.String("profile_id", d.ProfileID.String()), zap.Error(err))
	}

	return &ApplyDecisionOutput{Profile: p}, nil
}

func buildIntent(p *talent.Profile, d moderation.Decision, at time.Time) moderation.NotificationIntent {
	intent := moderation.NotificationIntent{
		RecipientID: p.OwnerID,
		OccurredAt:  at,
	}
	switch d.Kind {
	case moderation.DecisionApprove:
		intent.Kind = moderation.NotificationApproved
		intent.Message = "Your profile has been approved and is now listed in the talent directory."
	case moderation.DecisionReject:
		intent.Kind = moderation.NotificationRejected
		intent.Message = fmt.Sprintf("Your profile was rejected: %s", d.Note)
	case moderation.DecisionRequestChanges:
		intent.Kind = moderation.NotificationChangesWanted
		intent.Message = fmt.Sprintf("A reviewer requested changes to your profile: %s", d.Note)
	}
	return intent
}
