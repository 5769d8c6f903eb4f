package moderation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type DecisionKind string

const (
	DecisionApprove        DecisionKind = "approve"
	DecisionReject         DecisionKind = "reject"
	DecisionRequestChanges DecisionKind = "request_changes"
)

func (k DecisionKind) Valid() bool {
	switch k {
	case DecisionApprove, DecisionReject, DecisionRequestChanges:
		return true
	}
	return false
}

// Decision is a single-use reviewer verdict on one pending profile. It is not
// persisted on its own; its effect lands on the profile row.
type Decision struct {
	ProfileID        uuid.UUID
	Kind             DecisionKind
	Note             string
	RequestedChanges []string
}

// Reviewer is the validated caller identity handed to the review flow. The
// flow refuses to run unless Admin is set.
type Reviewer struct {
	UserID uuid.UUID
	Admin  bool
}

const (
	NotificationApproved      = "profile_approved"
	NotificationRejected      = "profile_rejected"
	NotificationChangesWanted = "profile_changes_requested"
)

// NotificationIntent is what the review flow emits for the owner. Delivery is
// someone else's problem; a failed emit never rolls back a transition.
type NotificationIntent struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	Kind        string    `json:"kind"`
	Message     string    `json:"message"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Notifier interface {
	Notify(ctx context.Context, intent NotificationIntent) error
}
