// Package flow holds the application level state machine: which view is
// shown and how user actions move between them.
package flow

import (
	"errors"
	"fmt"

	"github.com/puyokura/designarena/model"
)

var (
	// ErrInvalidTransition is returned when an event does not apply to the current state.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrUnknownArena is returned when a selection names an arena outside the catalog.
	ErrUnknownArena = errors.New("unknown arena")
)

// State is one of Onboarding, Hub or Room.
type State interface {
	state()
	String() string
}

type Onboarding struct{}

type Hub struct{}

// Room is the conversation view for a single arena.
type Room struct {
	ArenaID int
}

func (Onboarding) state() {}
func (Hub) state()        {}
func (Room) state()       {}

func (Onboarding) String() string { return "onboarding" }
func (Hub) String() string        { return "hub" }
func (r Room) String() string     { return fmt.Sprintf("room(%d)", r.ArenaID) }

// Event is a user action: Complete, Select or Back.
type Event interface {
	event()
}

// Complete is emitted by the onboarding call to action.
type Complete struct{}

// Select picks an arena from the hub.
type Select struct {
	ArenaID int
}

// Back leaves a room.
type Back struct{}

func (Complete) event() {}
func (Select) event()   {}
func (Back) event()     {}

// Initial is the state the program starts in.
func Initial() State { return Onboarding{} }

// Transition applies e to s. On error the returned state is s.
func Transition(s State, e Event) (State, error) {
	switch s.(type) {
	case Onboarding:
		if _, ok := e.(Complete); ok {
			return Hub{}, nil
		}
	case Hub:
		if sel, ok := e.(Select); ok {
			if _, found := model.FindArena(sel.ArenaID); !found {
				return s, fmt.Errorf("%w: %d", ErrUnknownArena, sel.ArenaID)
			}
			return Room{ArenaID: sel.ArenaID}, nil
		}
	case Room:
		if _, ok := e.(Back); ok {
			return Hub{}, nil
		}
	}
	return s, fmt.Errorf("%w: %T in %s", ErrInvalidTransition, e, s)
}
