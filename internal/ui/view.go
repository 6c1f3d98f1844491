package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// ScreenView is a View that can sit on the ViewStack. Modals are plain Views.
type ScreenView interface {
	View
	Screen() Screen
}
