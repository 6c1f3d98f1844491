package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"offscreen/internal/celebrate"
	"offscreen/internal/session"
)

// SplashDoneMsg replaces the splash with the home screen.
type SplashDoneMsg struct{}

// OpenCategoryMsg is sent when the player picks a category on the home screen.
type OpenCategoryMsg struct {
	Key string
}

// CloseCardMsg ends the running session and returns home (esc on the card).
type CloseCardMsg struct{}

// ShowCelebrationMsg replaces the card once the daily quota is met.
type ShowCelebrationMsg struct {
	Summary session.Summary
}

// ShowReflectionMsg replaces the celebration with the mood picker.
type ShowReflectionMsg struct{}

// GoHomeMsg unwinds the stack to the home screen.
type GoHomeMsg struct{}

// ShowCharacterPickerMsg opens the character picker over the home screen.
type ShowCharacterPickerMsg struct{}

// CharacterSelectedMsg is sent when the picker confirms a character.
type CharacterSelectedMsg struct {
	Character celebrate.Character
}

// ShowHistoryMsg opens the session history over the card screen (SPC h).
type ShowHistoryMsg struct{}

// DismissModalMsg closes the top overlay.
type DismissModalMsg struct{}

// send wraps msg in a command.
func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
