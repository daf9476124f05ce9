package model

// GlowColor is the accent an arena card uses for its highlight.
type GlowColor string

const (
	GlowPurple  GlowColor = "purple"
	GlowCyan    GlowColor = "cyan"
	GlowMagenta GlowColor = "magenta"
)

// Gradient is a two stop colour ramp, hex encoded ("#RRGGBB").
type Gradient struct {
	From string
	To   string
}

// Arena represents a themed conversation room listed in the hub.
type Arena struct {
	ID          int
	Title       string
	Description string
	Gradient    Gradient
	Glow        GlowColor
	Personas    int // Persona count shown on the badge
	Theme       string
	Tags        []string
}

// PersonaStatus is the presence shown next to a persona.
type PersonaStatus string

const (
	StatusActive PersonaStatus = "active"
	StatusTyping PersonaStatus = "typing"
	StatusIdle   PersonaStatus = "idle"
)

// Persona represents a simulated participant of a room.
type Persona struct {
	ID          int
	Name        string
	Role        string
	Avatar      string
	Gradient    Gradient
	Personality []string
	Status      PersonaStatus // Display only, never transitioned
}

// Message represents one entry of a conversation thread.
type Message struct {
	ID        int
	PersonaID *int // nil when authored by the user
	Content   string
	Timestamp string // Free-form label like "Just now"
	IsUser    bool
}

// NewUserMessage creates a message authored by the user.
func NewUserMessage(id int, content, timestamp string) Message {
	return Message{ID: id, Content: content, Timestamp: timestamp, IsUser: true}
}

// NewPersonaMessage creates a message authored by a persona.
func NewPersonaMessage(id, personaID int, content, timestamp string) Message {
	pid := personaID
	return Message{ID: id, PersonaID: &pid, Content: content, Timestamp: timestamp}
}
