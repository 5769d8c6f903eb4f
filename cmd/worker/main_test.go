package main

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/talent-hub/internal/domain/moderation"
	"github.com/campushire/talent-hub/internal/domain/notification"
	"github.com/campushire/talent-hub/pkg/apperror"
)

type fakeNotificationRepo struct {
	notification.Repository

	saveErr error
	saved   []*notification.Notification
}

func (f *fakeNotificationRepo) Save(ctx context.Context, n *notification.Notification) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, n)
	return nil
}

func TestProcessMessage_StoresIntent(t *testing.T) {
	repo := &fakeNotificationRepo{}
	occurred := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	intent := moderation.NotificationIntent{
		RecipientID: uuid.New(),
		Kind:        moderation.NotificationApproved,
		Message:     "Your profile has been approved.",
		OccurredAt:  occurred,
	}
	payload, err := json.Marshal(intent)
	require.NoError(t, err)

	err = processMessage(context.Background(), repo, kafka.Message{Value: payload})

	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, intent.RecipientID, repo.saved[0].RecipientID)
	assert.Equal(t, moderation.NotificationApproved, repo.saved[0].Kind)
	assert.Equal(t, occurred, repo.saved[0].CreatedAt)
	assert.Nil(t, repo.saved[0].ReadAt)
}

func TestProcessMessage_MalformedPayloadSkipped(t *testing.T) {
	repo := &fakeNotificationRepo{}

	err := processMessage(context.Background(), repo, kafka.Message{Value: []byte("not json")})

	// nil so the caller commits the offset and moves on.
	assert.NoError(t, err)
	assert.Empty(t, repo.saved)
}

func TestProcessMessage_StoreFailurePropagates(t *testing.T) {
	repo := &fakeNotificationRepo{saveErr: apperror.NewInternal("db down", nil)}
	payload, err := json.Marshal(moderation.NotificationIntent{RecipientID: uuid.New()})
	require.NoError(t, err)

	// The caller must not commit the offset on this path.
	err = processMessage(context.Background(), repo, kafka.Message{Value: payload})

	assert.Error(t, err)
	assert.Empty(t, repo.saved)
}
