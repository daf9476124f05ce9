package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/puyokura/designarena/model"
	"github.com/puyokura/designarena/theme"
)

// onboardingView renders the splash screen. It holds no state; the root
// model turns the call to action into flow.Complete.
func onboardingView(width, height int) string {
	title := theme.Gradient(model.OnboardingTitle, model.Gradient{From: model.NeonPurple, To: model.NeonCyan})
	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		theme.SubtitleStyle.Render("Enter the Arena."),
		theme.SubtitleStyle.Render("Create your narrative."),
		"",
		"",
		theme.ButtonStyle.Render(model.OnboardingCTALabel),
	)
	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
