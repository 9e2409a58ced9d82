package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltmarch/voyage-engine/internal/models"
)

func TestHub_Notify_NoSubscribers_DoesNotBlock(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	done := make(chan error, 1)
	go func() {
		done <- h.Notify(context.Background(), "v1", models.Event{Day: 1, Kind: models.EventInfo})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Notify blocked with no subscribers")
	}
}

func TestHub_Notify_ContextCancelled_ReturnsError(t *testing.T) {
	h := NewHub()
	// Hub loop intentionally not started: broadcast channel has no reader.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Notify(ctx, "v1", models.Event{Day: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
