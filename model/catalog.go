package model

// Neon palette shared by arena and persona gradients.
const (
	NeonPurple  = "#B794F6"
	NeonCyan    = "#67E8F9"
	NeonMagenta = "#F472B6"
)

// Canned texts used by rooms.
const (
	CannedReply        = "That's a fascinating perspective. Let me explore that with you..."
	TimestampJustNow   = "Just now"
	OnboardingTitle    = "Design Arena"
	OnboardingCTALabel = "Enter the Arena"
)

var arenas = []Arena{
	{
		ID:          1,
		Title:       "Neon Philosophers",
		Description: "Deep conversations with ancient wisdom in modern times",
		Gradient:    Gradient{From: NeonPurple, To: NeonMagenta},
		Glow:        GlowPurple,
		Personas:    3,
		Theme:       "Philosophy & Wisdom",
		Tags:        []string{"Deep", "Thoughtful", "Introspective"},
	},
	{
		ID:          2,
		Title:       "Cyber Dreamers",
		Description: "Explore imaginary worlds and creative storytelling",
		Gradient:    Gradient{From: NeonCyan, To: NeonPurple},
		Glow:        GlowCyan,
		Personas:    4,
		Theme:       "Creativity & Fiction",
		Tags:        []string{"Creative", "Imaginative", "Playful"},
	},
	{
		ID:          3,
		Title:       "Future Architects",
		Description: "Build tomorrow's innovations together",
		Gradient:    Gradient{From: NeonMagenta, To: NeonCyan},
		Glow:        GlowMagenta,
		Personas:    2,
		Theme:       "Innovation & Tech",
		Tags:        []string{"Visionary", "Ambitious", "Bold"},
	},
	{
		ID:          4,
		Title:       "Midnight Confessions",
		Description: "Late night talks about life, love, and everything",
		Gradient:    Gradient{From: "#9333EA", To: "#DB2777"},
		Glow:        GlowPurple,
		Personas:    3,
		Theme:       "Life & Emotions",
		Tags:        []string{"Intimate", "Honest", "Vulnerable"},
	},
	{
		ID:          5,
		Title:       "Quantum Mysteries",
		Description: "Unravel the universe's greatest secrets",
		Gradient:    Gradient{From: "#3B82F6", To: "#9333EA"},
		Glow:        GlowCyan,
		Personas:    2,
		Theme:       "Science & Mystery",
		Tags:        []string{"Curious", "Analytical", "Mind-bending"},
	},
	{
		ID:          6,
		Title:       "Artistic Souls",
		Description: "Express yourself through art, music, and beauty",
		Gradient:    Gradient{From: "#EC4899", To: "#E11D48"},
		Glow:        GlowMagenta,
		Personas:    4,
		Theme:       "Art & Expression",
		Tags:        []string{"Aesthetic", "Emotional", "Free-spirited"},
	},
}

var personas = []Persona{
	{
		ID:          1,
		Name:        "Aria",
		Role:        "The Philosopher",
		Avatar:      "🧠",
		Gradient:    Gradient{From: NeonPurple, To: NeonMagenta},
		Personality: []string{"Wise", "Thoughtful", "Deep"},
		Status:      StatusActive,
	},
	{
		ID:          2,
		Name:        "Zephyr",
		Role:        "The Dreamer",
		Avatar:      "✨",
		Gradient:    Gradient{From: NeonCyan, To: NeonPurple},
		Personality: []string{"Creative", "Whimsical", "Inspiring"},
		Status:      StatusIdle,
	},
	{
		ID:          3,
		Name:        "Nova",
		Role:        "The Visionary",
		Avatar:      "🚀",
		Gradient:    Gradient{From: NeonMagenta, To: NeonCyan},
		Personality: []string{"Bold", "Innovative", "Future-focused"},
		Status:      StatusIdle,
	},
}

// Arenas returns the hub catalog in display order. The result is a copy.
func Arenas() []Arena {
	out := make([]Arena, len(arenas))
	for i, a := range arenas {
		a.Tags = append([]string(nil), a.Tags...)
		out[i] = a
	}
	return out
}

// FindArena looks up an arena by id.
func FindArena(id int) (Arena, bool) {
	for _, a := range Arenas() {
		if a.ID == id {
			return a, true
		}
	}
	return Arena{}, false
}

// Personas returns the persona catalog every room is seeded with.
func Personas() []Persona {
	out := make([]Persona, len(personas))
	for i, p := range personas {
		p.Personality = append([]string(nil), p.Personality...)
		out[i] = p
	}
	return out
}

// SeedMessages returns the greetings a fresh room starts with.
func SeedMessages() []Message {
	return []Message{
		NewPersonaMessage(1, 1, "Welcome to the arena. What questions weigh on your mind today?", "2m ago"),
		NewPersonaMessage(2, 2, "I sense a creative energy here... are we ready to explore new ideas?", "1m ago"),
	}
}
