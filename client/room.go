package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/puyokura/designarena/conversation"
	"github.com/puyokura/designarena/model"
	"github.com/puyokura/designarena/theme"
)

// roomModel is one visit to an arena. Its pending replies are bound to ctx
// and session; Close cancels them.
type roomModel struct {
	arena     model.Arena
	conv      *conversation.Conversation
	session   uuid.UUID
	ctx       context.Context
	cancel    context.CancelFunc
	responder *Responder
	logger    *slog.Logger
	viewport  viewport.Model
	textInput textinput.Model
	width     int
	height    int
	pending   int
}

func newRoomModel(arena model.Arena, conv *conversation.Conversation, responder *Responder, charLimit int, logger *slog.Logger) *roomModel {
	ti := textinput.New()
	ti.Placeholder = "Share your thoughts..."
	ti.Focus()
	ti.CharLimit = charLimit

	ctx, cancel := context.WithCancel(context.Background())
	r := &roomModel{
		arena:     arena,
		conv:      conv,
		session:   uuid.New(),
		ctx:       ctx,
		cancel:    cancel,
		responder: responder,
		logger:    logger,
		textInput: ti,
	}
	r.SetSize(defaultViewWidth, defaultViewHeight)
	return r
}

func (r *roomModel) Init() tea.Cmd {
	return textinput.Blink
}

func (r *roomModel) Session() uuid.UUID { return r.session }

func (r *roomModel) Conversation() *conversation.Conversation { return r.conv }

// Pending is the number of replies scheduled but not yet delivered.
func (r *roomModel) Pending() int { return r.pending }

// Close cancels every reply still waiting on this room.
func (r *roomModel) Close() {
	r.cancel()
}

func (r *roomModel) SetSize(width, height int) {
	width = max(width, 1)
	r.width, r.height = width, height
	// textinput panics on a negative width.
	r.textInput.Width = max(width-4, 1)

	vpHeight := height - lipgloss.Height(r.header()) - lipgloss.Height(r.footer())
	if vpHeight < 1 {
		vpHeight = 1
	}
	r.viewport = viewport.New(width, vpHeight)
	r.refresh()
}

func (r *roomModel) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keys.Send) {
			return r.send()
		}
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)
	r.textInput, tiCmd = r.textInput.Update(msg)
	r.conv.SetInput(r.textInput.Value())

	// Printable keys belong to the composer, not the scroll bindings.
	if km, ok := msg.(tea.KeyMsg); !ok || (km.Type != tea.KeyRunes && km.Type != tea.KeySpace) {
		r.viewport, vpCmd = r.viewport.Update(msg)
	}
	return tea.Batch(tiCmd, vpCmd)
}

// send posts the composed text and schedules one reply for it.
func (r *roomModel) send() tea.Cmd {
	r.conv.SetInput(r.textInput.Value())
	msg, ok := r.conv.Send()
	if !ok {
		return nil
	}
	r.textInput.SetValue("")
	r.pending++
	r.refresh()

	r.logger.Debug("message sent",
		"arena", r.arena.ID,
		"session", r.session,
		"message_id", msg.ID,
		"reply_in", r.responder.Delay())
	return r.responder.Schedule(r.ctx, r.session)
}

// deliverReply appends one persona reply to the thread as it is now.
func (r *roomModel) deliverReply() {
	if r.pending > 0 {
		r.pending--
	}
	msg, ok := r.conv.Reply()
	if !ok {
		return
	}
	r.logger.Debug("reply delivered",
		"arena", r.arena.ID,
		"session", r.session,
		"message_id", msg.ID,
		"persona", *msg.PersonaID)
	r.refresh()
}

func (r *roomModel) refresh() {
	var b strings.Builder
	for _, m := range r.conv.Messages() {
		b.WriteString(r.formatMessage(m))
		b.WriteString("\n")
	}
	r.viewport.SetContent(b.String())
	r.viewport.GotoBottom()
}

func (r *roomModel) header() string {
	back := theme.SubtleStyle.Render("← Back")
	title := lipgloss.JoinVertical(lipgloss.Left,
		theme.TextStyle.Bold(true).Render(r.arena.Title),
		theme.SubtleStyle.Render(r.arena.Theme),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Top, back, "   ", title)

	pills := make([]string, 0, len(r.conv.Personas()))
	for _, p := range r.conv.Personas() {
		pills = append(pills, renderPersonaPill(p))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		lipgloss.JoinHorizontal(lipgloss.Top, pills...),
		theme.SubtleStyle.Render(strings.Repeat("─", max(r.width, 1))),
	)
}

func (r *roomModel) footer() string {
	lines := []string{}
	for _, p := range r.conv.Typing() {
		lines = append(lines, theme.SubtleStyle.Render(p.Avatar+" "+p.Name+" is typing..."))
	}
	lines = append(lines,
		theme.SubtleStyle.Render(strings.Repeat("─", max(r.width, 1))),
		renderQuickActions(),
		r.textInput.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *roomModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.header(),
		r.viewport.View(),
		r.footer(),
	)
}

// quickActions are shown above the composer. They have no bindings.
var quickActions = []string{"🎤 Voice", "📷 Image", "✨ Inspire me"}

func renderQuickActions() string {
	chips := make([]string, 0, len(quickActions))
	for _, a := range quickActions {
		chips = append(chips, theme.TagStyle.Render(a))
	}
	return strings.Join(chips, " ")
}

const userAvatar = "👤"

func renderPersonaPill(p model.Persona) string {
	name := theme.Gradient(p.Name, p.Gradient)
	body := lipgloss.JoinVertical(lipgloss.Left,
		p.Avatar+" "+name+" "+theme.Dot(p.Status),
		theme.SubtleStyle.Render(p.Role),
	)
	return theme.PersonaBubbleStyle.MarginRight(1).Render(body)
}

// formatMessage renders one message as a chat bubble. User messages are
// right aligned, persona messages carry the persona's name and avatar.
func (r *roomModel) formatMessage(m model.Message) string {
	width := r.width
	if width < 20 {
		width = defaultViewWidth
	}
	bubbleWidth := width * 3 / 4

	if m.IsUser {
		bubble := theme.UserBubbleFor(r.arena).Render(wrap(m.Content, bubbleWidth-2))
		stamp := theme.SubtleStyle.Render(m.Timestamp)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right,
			lipgloss.JoinVertical(lipgloss.Right,
				lipgloss.JoinHorizontal(lipgloss.Top, bubble, " "+userAvatar),
				stamp))
	}

	author := "Unknown"
	if m.PersonaID != nil {
		if p, ok := r.conv.Persona(*m.PersonaID); ok {
			author = p.Avatar + " " + theme.Gradient(p.Name, p.Gradient)
		}
	}
	head := author + " " + theme.SubtleStyle.Render(m.Timestamp)
	bubble := theme.PersonaBubbleStyle.Render(wrap(m.Content, bubbleWidth-4))
	return lipgloss.JoinVertical(lipgloss.Left, head, bubble)
}

func wrap(s string, width int) string {
	if width < 10 {
		width = 10
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
