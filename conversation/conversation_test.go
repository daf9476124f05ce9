package conversation

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puyokura/designarena/model"
)

func newTestRoom() *Conversation {
	return NewRoom(WithRand(rand.New(rand.NewPCG(1, 2))))
}

func TestNewRoom_Seeded(t *testing.T) {
	c := newTestRoom()

	assert.Equal(t, 2, c.Len())
	assert.Empty(t, c.Input())
	assert.Len(t, c.Personas(), 3)
	assert.Empty(t, c.Typing())
}

func TestSend_BlankInputIsNoop(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		c := newTestRoom()
		c.SetInput(in)

		_, ok := c.Send()

		assert.False(t, ok, "input %q", in)
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, in, c.Input())
	}
}

func TestSend_AppendsUserMessage(t *testing.T) {
	c := newTestRoom()
	c.SetInput("Hello")

	msg, ok := c.Send()

	require.True(t, ok)
	require.Equal(t, 3, c.Len())
	last := c.Messages()[2]
	assert.Equal(t, msg, last)
	assert.True(t, last.IsUser)
	assert.Nil(t, last.PersonaID)
	assert.Equal(t, "Hello", last.Content)
	assert.Equal(t, model.TimestampJustNow, last.Timestamp)
	assert.Equal(t, 3, last.ID)
	assert.Empty(t, c.Input())
}

func TestSend_KeepsContentAsTyped(t *testing.T) {
	c := newTestRoom()
	c.SetInput("  spaced  ")

	msg, ok := c.Send()

	require.True(t, ok)
	assert.Equal(t, "  spaced  ", msg.Content)
}

func TestReply_AppendsPersonaMessage(t *testing.T) {
	c := newTestRoom()
	c.SetInput("Hello")
	_, _ = c.Send()

	msg, ok := c.Reply()

	require.True(t, ok)
	require.Equal(t, 4, c.Len())
	last := c.Messages()[3]
	assert.Equal(t, msg, last)
	assert.False(t, last.IsUser)
	require.NotNil(t, last.PersonaID)
	assert.Contains(t, []int{1, 2, 3}, *last.PersonaID)
	assert.Equal(t, model.CannedReply, last.Content)
}

func TestReply_NoPersonas(t *testing.T) {
	c := New(nil, nil)

	_, ok := c.Reply()

	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestIDs_UniqueAcrossRapidSends(t *testing.T) {
	c := newTestRoom()

	// Three sends before any reply fires, then the replies land.
	for _, text := range []string{"a", "b", "c"} {
		c.SetInput(text)
		_, ok := c.Send()
		require.True(t, ok)
	}
	for i := 0; i < 3; i++ {
		_, ok := c.Reply()
		require.True(t, ok)
	}

	msgs := c.Messages()
	require.Len(t, msgs, 8)
	seen := map[int]bool{}
	for i, m := range msgs {
		assert.False(t, seen[m.ID], "duplicate id %d", m.ID)
		seen[m.ID] = true
		if i > 0 {
			assert.Greater(t, m.ID, msgs[i-1].ID)
		}
	}
}

func TestIDs_ContinueAfterHighestSeed(t *testing.T) {
	seed := []model.Message{
		model.NewPersonaMessage(10, 1, "x", "1m ago"),
		model.NewPersonaMessage(4, 2, "y", "1m ago"),
	}
	c := New(model.Personas(), seed)
	c.SetInput("hi")

	msg, ok := c.Send()

	require.True(t, ok)
	assert.Equal(t, 11, msg.ID)
}

func TestReply_PersonaDistribution(t *testing.T) {
	c := newTestRoom()
	counts := map[int]int{}

	for i := 0; i < 300; i++ {
		msg, ok := c.Reply()
		require.True(t, ok)
		counts[*msg.PersonaID]++
	}

	assert.Len(t, counts, 3)
	for id, n := range counts {
		assert.Greater(t, n, 50, "persona %d picked %d times", id, n)
	}
}

func TestWithReply(t *testing.T) {
	c := NewRoom(WithReply("custom"))

	msg, ok := c.Reply()

	require.True(t, ok)
	assert.Equal(t, "custom", msg.Content)
}

func TestMessages_ReturnsCopy(t *testing.T) {
	c := newTestRoom()
	msgs := c.Messages()
	msgs[0].Content = "changed"

	assert.NotEqual(t, "changed", c.Messages()[0].Content)
}

func TestPersonaLookupAndTyping(t *testing.T) {
	ps := model.Personas()
	ps[2].Status = model.StatusTyping
	c := New(ps, nil)

	p, ok := c.Persona(2)
	require.True(t, ok)
	assert.Equal(t, "Zephyr", p.Name)

	_, ok = c.Persona(9)
	assert.False(t, ok)

	typing := c.Typing()
	require.Len(t, typing, 1)
	assert.Equal(t, "Nova", typing[0].Name)
}
