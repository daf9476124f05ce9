// Package theme provides centralized styling, colors, and formatting for the TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/puyokura/designarena/model"
)

// Color palette for the TUI
const (
	// ColorDarkBg is the page background
	ColorDarkBg = "#0A0A0F"
	// ColorDarkCard is the card background
	ColorDarkCard = "#13131A"
	// ColorBorder is the default card border
	ColorBorder = "#2A2A35"
	// ColorGray is used for secondary text
	ColorGray = "#6B7280"
	// ColorLightGray is used for descriptions
	ColorLightGray = "#9CA3AF"
	// ColorWhite is used for primary text
	ColorWhite = "#F3F4F6"
	// ColorActive marks an active persona
	ColorActive = "#22C55E"
	// ColorTyping marks a typing persona
	ColorTyping = "#EAB308"
	// ColorIdle marks an idle persona
	ColorIdle = "#4B5563"
)

// GlowHex maps an arena glow to its accent colour.
func GlowHex(g model.GlowColor) string {
	switch g {
	case model.GlowPurple:
		return model.NeonPurple
	case model.GlowCyan:
		return model.NeonCyan
	default:
		return model.NeonMagenta
	}
}

// StatusColor returns the dot colour for a persona status.
func StatusColor(s model.PersonaStatus) lipgloss.Color {
	switch s {
	case model.StatusActive:
		return lipgloss.Color(ColorActive)
	case model.StatusTyping:
		return lipgloss.Color(ColorTyping)
	default:
		return lipgloss.Color(ColorIdle)
	}
}
