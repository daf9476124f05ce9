package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/puyokura/designarena/model"
)

const (
	// CardPaddingHorizontal is the horizontal padding inside arena cards
	CardPaddingHorizontal = 2
	// CardPaddingVertical is the vertical padding inside arena cards
	CardPaddingVertical = 0
)

var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(model.NeonPurple))
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLightGray))
	SubtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray))
	TextStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite))
	TagStyle      = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorLightGray)).
			Background(lipgloss.Color(ColorDarkBg)).
			Padding(0, 1)
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(CardPaddingVertical, CardPaddingHorizontal)
	StatStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 2)
	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color("#7C3AED")).
			Padding(0, 4)
	UserBubbleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color("#5B21B6")).
			Padding(0, 1)
	PersonaBubbleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorDarkCard)).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorBorder)).
				Padding(0, 1)
)

// CardStyleFor returns the card style, highlighted with the arena glow when selected.
func CardStyleFor(a model.Arena, selected bool) lipgloss.Style {
	if !selected {
		return CardStyle
	}
	return CardStyle.BorderForeground(lipgloss.Color(GlowHex(a.Glow)))
}

// UserBubbleFor colours the user's bubble with the arena's gradient start.
func UserBubbleFor(a model.Arena) lipgloss.Style {
	return UserBubbleStyle.Background(lipgloss.Color(a.Gradient.From))
}

// Gradient renders text with a per-rune colour ramp between the two stops.
// Invalid hex stops fall back to the plain title style.
func Gradient(text string, g model.Gradient) string {
	from, err := colorful.Hex(g.From)
	if err != nil {
		return TitleStyle.Render(text)
	}
	to, err := colorful.Hex(g.To)
	if err != nil {
		return TitleStyle.Render(text)
	}

	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := from.BlendLuv(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// Dot renders a status indicator.
func Dot(s model.PersonaStatus) string {
	return lipgloss.NewStyle().Foreground(StatusColor(s)).Render("●")
}
