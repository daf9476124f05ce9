package main

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponder_ClampsNegativeDelay(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewResponder(-time.Second).Delay())
	assert.Equal(t, time.Second, NewResponder(time.Second).Delay())
}

func TestResponder_FiresAfterDelay(t *testing.T) {
	r := NewResponder(30 * time.Millisecond)
	session := uuid.New()

	start := time.Now()
	msg := r.Schedule(context.Background(), session)()

	require.IsType(t, replyDueMsg{}, msg)
	assert.Equal(t, session, msg.(replyDueMsg).session)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestResponder_CancelledBeforeDelay(t *testing.T) {
	r := NewResponder(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cmd := r.Schedule(ctx, uuid.New())

	done := make(chan any, 1)
	go func() { done <- cmd() }()
	cancel()

	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("schedule ignored cancellation")
	}
}

func TestResponder_AlreadyCancelled(t *testing.T) {
	r := NewResponder(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Nil(t, r.Schedule(ctx, uuid.New())())
}
