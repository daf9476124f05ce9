package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/puyokura/designarena/model"
	"github.com/puyokura/designarena/theme"
)

const (
	maxCardWidth      = 76
	defaultViewWidth  = 80
	defaultViewHeight = 24
)

// hubModel lists the arena catalog and tracks the highlighted card.
type hubModel struct {
	arenas   []model.Arena
	cursor   int
	viewport viewport.Model
	width    int
	height   int
}

func newHubModel() *hubModel {
	h := &hubModel{arenas: model.Arenas()}
	h.SetSize(defaultViewWidth, defaultViewHeight)
	return h
}

func (h *hubModel) Arenas() []model.Arena { return h.arenas }

func (h *hubModel) Selected() model.Arena { return h.arenas[h.cursor] }

// ArenaAt returns the arena shown at card index i.
func (h *hubModel) ArenaAt(i int) (model.Arena, bool) {
	if i < 0 || i >= len(h.arenas) {
		return model.Arena{}, false
	}
	return h.arenas[i], true
}

func (h *hubModel) SetSize(width, height int) {
	width = max(width, 1)
	h.width, h.height = width, height
	vpHeight := height - lipgloss.Height(h.header())
	if vpHeight < 1 {
		vpHeight = 1
	}
	h.viewport = viewport.New(width, vpHeight)
	h.refresh()
}

func (h *hubModel) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Up):
			if h.cursor > 0 {
				h.cursor--
			}
			h.refresh()
			return nil
		case key.Matches(msg, keys.Down):
			if h.cursor < len(h.arenas)-1 {
				h.cursor++
			}
			h.refresh()
			return nil
		}
	}
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return cmd
}

func (h *hubModel) cardWidth() int {
	w := h.width - 2
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < 30 {
		w = 30
	}
	return w
}

// refresh re-renders the cards and scrolls the highlighted one into view.
func (h *hubModel) refresh() {
	var (
		cards       []string
		start, stop int
		line        int
	)
	for i, a := range h.arenas {
		card := renderArenaCard(a, i == h.cursor, h.cardWidth())
		height := lipgloss.Height(card)
		if i == h.cursor {
			start, stop = line, line+height
		}
		line += height
		cards = append(cards, card)
	}
	h.viewport.SetContent(strings.Join(cards, "\n"))

	switch {
	case start < h.viewport.YOffset:
		h.viewport.SetYOffset(start)
	case stop > h.viewport.YOffset+h.viewport.Height:
		h.viewport.SetYOffset(stop - h.viewport.Height)
	}
}

func (h *hubModel) header() string {
	title := theme.Gradient("Arena Hub", model.Gradient{From: model.NeonPurple, To: model.NeonMagenta})
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		renderStat("12", "Active Arenas", model.NeonCyan),
		" ",
		renderStat("24", "AI Personas", model.NeonPurple),
		" ",
		renderStat("∞", "Stories", model.NeonMagenta),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		theme.SubtitleStyle.Render("Choose your conversation"),
		stats,
	)
}

func (h *hubModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, h.header(), h.viewport.View())
}

func renderStat(value, label, color string) string {
	v := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(value)
	return theme.StatStyle.Render(lipgloss.JoinVertical(lipgloss.Left, v, theme.SubtleStyle.Render(label)))
}

func renderArenaCard(a model.Arena, selected bool, width int) string {
	style := theme.CardStyleFor(a, selected)
	inner := width - style.GetHorizontalFrameSize()

	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ColorDarkBg)).
		Background(lipgloss.Color(a.Gradient.From)).
		Padding(0, 1).
		Render(fmt.Sprintf("%d", a.Personas))

	textWidth := inner - lipgloss.Width(badge) - 1
	if textWidth < 10 {
		textWidth = 10
	}
	text := lipgloss.JoinVertical(lipgloss.Left,
		theme.Gradient(a.Title, a.Gradient),
		lipgloss.NewStyle().Width(textWidth).Foreground(lipgloss.Color(theme.ColorLightGray)).Render(a.Description),
		theme.SubtleStyle.Render(a.Theme),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(textWidth+1).Render(text),
		badge,
	)

	tags := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		tags = append(tags, theme.TagStyle.Render(t))
	}

	hint := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Gradient.From)).Render("●") +
		theme.SubtleStyle.Render(" Active now")
	arrow := theme.SubtleStyle.Render("→")
	gap := inner - lipgloss.Width(hint) - lipgloss.Width(arrow)
	if gap < 1 {
		gap = 1
	}
	footer := hint + strings.Repeat(" ", gap) + arrow

	return style.Width(width - style.GetHorizontalBorderSize()).Render(lipgloss.JoinVertical(lipgloss.Left,
		top,
		strings.Join(tags, " "),
		footer,
	))
}
