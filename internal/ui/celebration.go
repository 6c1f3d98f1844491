package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offscreen/internal/celebrate"
	"offscreen/internal/session"
)

const celebrationFrameDelay = 400 * time.Millisecond

var sparkle = spinner.Spinner{
	Frames: []string{"✦", "✧", "★", "☆"},
	FPS:    time.Second / 6,
}

type celebrationFrameMsg struct{ id int }

// CelebrationView loops the character's animation after the quota is met.
// Enter moves on to the reflection.
type CelebrationView struct {
	id      int
	asset   string
	frames  []string
	frame   int
	summary session.Summary
	spinner spinner.Model
}

var _ ScreenView = (*CelebrationView)(nil)

var celebrationSeq int

// NewCelebrationView plays character's asset for a finished session.
func NewCelebrationView(character celebrate.Character, summary session.Summary) *CelebrationView {
	celebrationSeq++
	asset := celebrate.AssetFor(character)
	s := spinner.New()
	s.Spinner = sparkle
	s.Style = Styles.Party
	return &CelebrationView{
		id:      celebrationSeq,
		asset:   asset,
		frames:  celebrate.Frames(asset),
		summary: summary,
		spinner: s,
	}
}

// Screen implements ScreenView.
func (v *CelebrationView) Screen() Screen { return ScreenCelebration }

// Asset returns the animation being played.
func (v *CelebrationView) Asset() string { return v.asset }

// Init implements View.
func (v *CelebrationView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.nextFrame())
}

func (v *CelebrationView) nextFrame() tea.Cmd {
	id := v.id
	return tea.Tick(celebrationFrameDelay, func(time.Time) tea.Msg { return celebrationFrameMsg{id: id} })
}

// Update implements View.
func (v *CelebrationView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case celebrationFrameMsg:
		if msg.id != v.id {
			return v, nil
		}
		v.frame = (v.frame + 1) % len(v.frames)
		return v, v.nextFrame()
	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return v, send(ShowReflectionMsg{})
		}
	}
	return v, nil
}

// View implements View.
func (v *CelebrationView) View() string {
	star := v.spinner.View()
	title := star + " " + Styles.Party.Render("Yay! You did it!") + " " + star
	stats := fmt.Sprintf("%d of %d tasks in %s", v.summary.Completed, v.summary.Limit, v.summary.Category)
	if d := v.summary.Duration(); d > 0 {
		stats += fmt.Sprintf(", %s", d.Round(time.Second))
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		Styles.Subtitle.Render(v.frames[v.frame]),
		"",
		Styles.Muted.Render(stats),
		"",
		Styles.Hint.Render("enter: continue"),
	)
}
