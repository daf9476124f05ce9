package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/puyokura/designarena/model"
)

func TestGlowHex(t *testing.T) {
	assert.Equal(t, model.NeonPurple, GlowHex(model.GlowPurple))
	assert.Equal(t, model.NeonCyan, GlowHex(model.GlowCyan))
	assert.Equal(t, model.NeonMagenta, GlowHex(model.GlowMagenta))
	assert.Equal(t, model.NeonMagenta, GlowHex("unknown"))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color(ColorActive), StatusColor(model.StatusActive))
	assert.Equal(t, lipgloss.Color(ColorTyping), StatusColor(model.StatusTyping))
	assert.Equal(t, lipgloss.Color(ColorIdle), StatusColor(model.StatusIdle))
}

func TestGradient_KeepsText(t *testing.T) {
	out := Gradient("Design Arena", model.Gradient{From: model.NeonPurple, To: model.NeonCyan})
	assert.Equal(t, 12, lipgloss.Width(out))
}

func TestGradient_InvalidStops(t *testing.T) {
	out := Gradient("Title", model.Gradient{From: "nope", To: model.NeonCyan})
	assert.Equal(t, TitleStyle.Render("Title"), out)

	out = Gradient("Title", model.Gradient{From: model.NeonCyan, To: ""})
	assert.Equal(t, TitleStyle.Render("Title"), out)
}

func TestGradient_Empty(t *testing.T) {
	assert.Empty(t, Gradient("", model.Gradient{From: model.NeonPurple, To: model.NeonCyan}))
}

func TestCardStyleFor(t *testing.T) {
	a, _ := model.FindArena(2)
	assert.Equal(t, lipgloss.Color(ColorBorder), CardStyleFor(a, false).GetBorderTopForeground())
	assert.Equal(t, lipgloss.Color(model.NeonCyan), CardStyleFor(a, true).GetBorderTopForeground())
}

func TestPersonaBubbleBackground(t *testing.T) {
	assert.Equal(t, lipgloss.Color(ColorDarkCard), PersonaBubbleStyle.GetBackground())
}

func TestUserBubbleFor(t *testing.T) {
	a, _ := model.FindArena(4)
	assert.Equal(t, lipgloss.Color("#9333EA"), UserBubbleFor(a).GetBackground())
}
