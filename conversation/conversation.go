// Package conversation holds the state of one room session: the message
// thread, the text being composed and the personas that answer.
//
// A Conversation is not safe for concurrent use. It is owned by a single
// bubbletea model and only touched from its Update method.
package conversation

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/puyokura/designarena/model"
)

type Conversation struct {
	personas []model.Persona
	messages []model.Message
	input    string
	lastID   int
	rng      *rand.Rand
	reply    string
}

type Option func(*Conversation)

// WithRand sets the source used to pick the replying persona.
func WithRand(r *rand.Rand) Option {
	return func(c *Conversation) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithReply overrides the canned reply text.
func WithReply(text string) Option {
	return func(c *Conversation) {
		if text != "" {
			c.reply = text
		}
	}
}

// New starts a conversation with the given personas and seeded thread.
// Identifiers handed out later continue after the highest seeded id.
func New(personas []model.Persona, seed []model.Message, opts ...Option) *Conversation {
	c := &Conversation{
		personas: append([]model.Persona(nil), personas...),
		messages: append([]model.Message(nil), seed...),
		reply:    model.CannedReply,
	}
	for _, m := range seed {
		if m.ID > c.lastID {
			c.lastID = m.ID
		}
	}
	for _, o := range opts {
		o(c)
	}
	if c.rng == nil {
		now := uint64(time.Now().UnixNano())
		c.rng = rand.New(rand.NewPCG(now, now>>1))
	}
	return c
}

// NewRoom starts a conversation seeded from the static catalogs.
func NewRoom(opts ...Option) *Conversation {
	return New(model.Personas(), model.SeedMessages(), opts...)
}

func (c *Conversation) SetInput(v string) { c.input = v }

func (c *Conversation) Input() string { return c.input }

// Messages returns a copy of the thread in display order.
func (c *Conversation) Messages() []model.Message {
	msgs := make([]model.Message, len(c.messages))
	copy(msgs, c.messages)
	return msgs
}

func (c *Conversation) Len() int { return len(c.messages) }

func (c *Conversation) Personas() []model.Persona {
	return append([]model.Persona(nil), c.personas...)
}

// Persona looks up a persona of this conversation by id.
func (c *Conversation) Persona(id int) (model.Persona, bool) {
	for _, p := range c.personas {
		if p.ID == id {
			return p, true
		}
	}
	return model.Persona{}, false
}

// Typing lists personas whose status is typing.
func (c *Conversation) Typing() []model.Persona {
	var out []model.Persona
	for _, p := range c.personas {
		if p.Status == model.StatusTyping {
			out = append(out, p)
		}
	}
	return out
}

func (c *Conversation) nextID() int {
	c.lastID++
	return c.lastID
}

// Send appends the pending input as a user message and clears it.
// Blank input is rejected and leaves the conversation untouched.
func (c *Conversation) Send() (model.Message, bool) {
	if strings.TrimSpace(c.input) == "" {
		return model.Message{}, false
	}
	msg := model.NewUserMessage(c.nextID(), c.input, model.TimestampJustNow)
	c.messages = append(c.messages, msg)
	c.input = ""
	return msg, true
}

// Reply appends a canned answer from a persona picked uniformly at random.
// It returns false only when the conversation has no personas.
func (c *Conversation) Reply() (model.Message, bool) {
	if len(c.personas) == 0 {
		return model.Message{}, false
	}
	p := c.personas[c.rng.IntN(len(c.personas))]
	msg := model.NewPersonaMessage(c.nextID(), p.ID, c.reply, model.TimestampJustNow)
	c.messages = append(c.messages, msg)
	return msg, true
}
