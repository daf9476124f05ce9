package main

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/puyokura/designarena/conversation"
	"github.com/puyokura/designarena/flow"
	"github.com/puyokura/designarena/model"
)

// appModel is the root bubbletea model. It owns the flow state and the
// view model of whichever screen that state selects.
type appModel struct {
	state     flow.State
	config    *Config
	logger    *slog.Logger
	responder *Responder
	rng       *rand.Rand
	hub       *hubModel
	room      *roomModel
	help      help.Model
	width     int
	height    int
	ready     bool
}

func initialModel(cfg *Config, logger *slog.Logger) *appModel {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &appModel{
		state:     flow.Initial(),
		config:    cfg,
		logger:    logger,
		responder: NewResponder(cfg.ReplyDelay()),
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		help:      help.New(),
	}
}

func (m *appModel) Init() tea.Cmd {
	return nil
}

func (m *appModel) State() flow.State { return m.state }

func (m *appModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	// Panic recovery to catch crashes
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			m.logger.Error("panic in Update", "panic", r, "stack", string(buf[:n]))
			next, cmd = m, nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.help.Width = msg.Width
		if m.hub != nil {
			m.hub.SetSize(m.width, m.bodyHeight())
		}
		if m.room != nil {
			m.room.SetSize(m.width, m.bodyHeight())
		}
		return m, nil

	case replyDueMsg:
		m.handleReplyDue(msg)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.closeRoom()
			return m, tea.Quit
		}
		return m, m.handleKey(msg)
	}

	if m.room != nil {
		return m, m.room.Update(msg)
	}
	if m.hub != nil {
		return m, m.hub.Update(msg)
	}
	return m, nil
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.state.(type) {
	case flow.Onboarding:
		if key.Matches(msg, keys.Start) {
			return m.apply(flow.Complete{})
		}
		return nil

	case flow.Hub:
		switch {
		case key.Matches(msg, keys.HubQuit):
			return tea.Quit
		case key.Matches(msg, keys.Open):
			return m.apply(flow.Select{ArenaID: m.hub.Selected().ID})
		}
		if i, ok := jumpIndex(msg); ok {
			if a, found := m.hub.ArenaAt(i); found {
				return m.apply(flow.Select{ArenaID: a.ID})
			}
			return nil
		}
		return m.hub.Update(msg)

	case flow.Room:
		if key.Matches(msg, keys.Back) {
			return m.apply(flow.Back{})
		}
		return m.room.Update(msg)
	}
	return nil
}

// apply runs e through the flow state machine and swaps view models to match.
func (m *appModel) apply(e flow.Event) tea.Cmd {
	prev := m.state
	next, err := flow.Transition(prev, e)
	if err != nil {
		m.logger.Debug("transition rejected", "state", prev.String(), "err", err,
			"unknown_arena", errors.Is(err, flow.ErrUnknownArena))
		return nil
	}
	m.state = next
	m.logger.Info("view changed", "from", prev.String(), "to", next.String())

	switch s := next.(type) {
	case flow.Hub:
		m.closeRoom()
		if m.hub == nil {
			m.hub = newHubModel()
			m.sizeHub()
		}
	case flow.Room:
		return m.openRoom(s.ArenaID)
	}
	return nil
}

func (m *appModel) openRoom(arenaID int) tea.Cmd {
	m.closeRoom()
	arena, _ := model.FindArena(arenaID)
	conv := conversation.NewRoom(
		conversation.WithRand(m.rng),
		conversation.WithReply(m.config.CannedReply),
	)
	m.room = newRoomModel(arena, conv, m.responder, m.config.InputCharLimit, m.logger)
	if m.ready {
		m.room.SetSize(m.width, m.bodyHeight())
	}
	m.logger.Debug("room opened", "arena", arenaID, "session", m.room.Session())
	return m.room.Init()
}

func (m *appModel) closeRoom() {
	if m.room == nil {
		return
	}
	m.room.Close()
	m.logger.Debug("room closed", "arena", m.room.arena.ID, "session", m.room.Session(),
		"cancelled_replies", m.room.Pending())
	m.room = nil
}

// handleReplyDue delivers a reply only to the room session that asked for it.
func (m *appModel) handleReplyDue(msg replyDueMsg) {
	if m.room == nil || m.room.Session() != msg.session {
		m.logger.Debug("stale reply dropped", "session", msg.session)
		return
	}
	m.room.deliverReply()
}

func (m *appModel) sizeHub() {
	if m.ready {
		m.hub.SetSize(m.width, m.bodyHeight())
	}
}

// bodyHeight leaves one line for the help bar.
func (m *appModel) bodyHeight() int {
	h := m.height - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (m *appModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var (
		body     string
		bindings []key.Binding
	)
	switch m.state.(type) {
	case flow.Onboarding:
		body = onboardingView(m.width, m.bodyHeight())
		bindings = keys.onboardingHelp()
	case flow.Hub:
		body = m.hub.View()
		bindings = keys.hubHelp()
	case flow.Room:
		body = m.room.View()
		bindings = keys.roomHelp()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.ShortHelpView(bindings))
}
