package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// replyDueMsg tells the room session that one simulated reply is due.
type replyDueMsg struct {
	session uuid.UUID
}

// Responder schedules the simulated persona replies.
type Responder struct {
	delay time.Duration
}

func NewResponder(delay time.Duration) *Responder {
	if delay < 0 {
		delay = 0
	}
	return &Responder{delay: delay}
}

func (r *Responder) Delay() time.Duration { return r.delay }

// Schedule is a tea.Cmd that waits for the reply delay and then reports the
// reply as due for session. If ctx is cancelled first it returns no message.
func (r *Responder) Schedule(ctx context.Context, session uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			// Cancelled while the timer fired at the same time.
			if ctx.Err() != nil {
				return nil
			}
			return replyDueMsg{session: session}
		}
	}
}
