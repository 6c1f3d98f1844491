package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const splashArt = `        __  __
  ___  / _|/ _|___  ___ _ __ ___  ___ _ __
 / _ \| |_| |_/ __|/ __| '__/ _ \/ _ \ '_ \
| (_) |  _|  _\__ \ (__| | |  __/  __/ | | |
 \___/|_| |_| |___/\___|_|  \___|\___|_| |_|`

// SplashView shows the title until its delay runs out or any key is pressed.
type SplashView struct {
	delay   time.Duration
	spinner spinner.Model
	width   int
	height  int
}

var _ ScreenView = (*SplashView)(nil)

// NewSplashView creates a splash that advances after delay.
func NewSplashView(delay time.Duration) *SplashView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Subtitle
	return &SplashView{delay: delay, spinner: s}
}

// Screen implements ScreenView.
func (v *SplashView) Screen() Screen { return ScreenSplash }

// Init implements View.
func (v *SplashView) Init() tea.Cmd {
	done := tea.Tick(v.delay, func(time.Time) tea.Msg { return SplashDoneMsg{} })
	return tea.Batch(v.spinner.Tick, done)
}

// Update implements View.
func (v *SplashView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v, send(SplashDoneMsg{})
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		return v, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}
	return v, nil
}

// View implements View.
func (v *SplashView) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		Styles.Title.Render(splashArt),
		"",
		Styles.Subtitle.Render("Off the screen?"),
		"",
		v.spinner.View()+Styles.Hint.Render(" press any key"),
	)
	if v.width == 0 || v.height == 0 {
		return body
	}
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, body)
}
