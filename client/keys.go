package main

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Quit    key.Binding
	HubQuit key.Binding
	Start   key.Binding
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Jump    key.Binding
	Send    key.Binding
	Back    key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	HubQuit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Start:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "enter the arena")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Jump:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-6", "jump")),
	Send:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

func (k keyMap) onboardingHelp() []key.Binding { return []key.Binding{k.Start, k.Quit} }

func (k keyMap) hubHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Jump, k.HubQuit}
}

func (k keyMap) roomHelp() []key.Binding { return []key.Binding{k.Send, k.Back, k.Quit} }

// jumpIndex returns the zero based card index of a digit key.
func jumpIndex(msg tea.KeyMsg) (int, bool) {
	if !key.Matches(msg, keys.Jump) {
		return 0, false
	}
	n, err := strconv.Atoi(msg.String())
	if err != nil {
		return 0, false
	}
	return n - 1, true
}
