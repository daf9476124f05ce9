package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitial(t *testing.T) {
	assert.Equal(t, Onboarding{}, Initial())
}

func TestTransition_HappyPath(t *testing.T) {
	s := Initial()

	s, err := Transition(s, Complete{})
	require.NoError(t, err)
	assert.Equal(t, Hub{}, s)

	s, err = Transition(s, Select{ArenaID: 3})
	require.NoError(t, err)
	assert.Equal(t, Room{ArenaID: 3}, s)

	s, err = Transition(s, Back{})
	require.NoError(t, err)
	assert.Equal(t, Hub{}, s)

	s, err = Transition(s, Select{ArenaID: 3})
	require.NoError(t, err)
	assert.Equal(t, Room{ArenaID: 3}, s)
}

func TestTransition_UnknownArena(t *testing.T) {
	s, err := Transition(Hub{}, Select{ArenaID: 99})

	assert.ErrorIs(t, err, ErrUnknownArena)
	assert.Equal(t, Hub{}, s)
}

func TestTransition_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		event Event
	}{
		{"select during onboarding", Onboarding{}, Select{ArenaID: 1}},
		{"back during onboarding", Onboarding{}, Back{}},
		{"complete in hub", Hub{}, Complete{}},
		{"back in hub", Hub{}, Back{}},
		{"select in room", Room{ArenaID: 1}, Select{ArenaID: 2}},
		{"complete in room", Room{ArenaID: 1}, Complete{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Transition(tt.state, tt.event)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tt.state, s)
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "onboarding", Onboarding{}.String())
	assert.Equal(t, "hub", Hub{}.String())
	assert.Equal(t, "room(4)", Room{ArenaID: 4}.String())
}
