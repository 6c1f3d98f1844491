package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offscreen/internal/celebrate"
)

// ReflectionView asks how the player feels now. The answer is shown back and
// not stored. Enter on the thank-you (or esc at any time) goes home.
type ReflectionView struct {
	moods    []celebrate.Mood
	selected int
	answered bool
}

var _ ScreenView = (*ReflectionView)(nil)

func NewReflectionView() *ReflectionView {
	return &ReflectionView{moods: celebrate.Moods()}
}

// Screen implements ScreenView.
func (v *ReflectionView) Screen() Screen { return ScreenReflection }

// Selected returns the highlighted mood.
func (v *ReflectionView) Selected() celebrate.Mood { return v.moods[v.selected] }

// Answered reports whether a mood was confirmed.
func (v *ReflectionView) Answered() bool { return v.answered }

// Init implements View.
func (v *ReflectionView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *ReflectionView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch km.String() {
	case "esc":
		return v, send(GoHomeMsg{})
	case "enter":
		if v.answered {
			return v, send(GoHomeMsg{})
		}
		v.answered = true
	case "left", "h":
		if !v.answered && v.selected > 0 {
			v.selected--
		}
	case "right", "l":
		if !v.answered && v.selected < len(v.moods)-1 {
			v.selected++
		}
	}
	return v, nil
}

// View implements View.
func (v *ReflectionView) View() string {
	if v.answered {
		mood := v.Selected()
		return lipgloss.JoinVertical(lipgloss.Center,
			Styles.Title.Render("Thanks for sharing"),
			"",
			mood.Emoji()+"  "+Styles.Subtitle.Render(mood.Label()),
			"",
			Styles.Hint.Render("enter: home"),
		)
	}

	opts := make([]string, len(v.moods))
	for i, m := range v.moods {
		label := m.Emoji() + " " + m.Label()
		if i == v.selected {
			opts[i] = Styles.Selected.Render("[" + label + "]")
		} else {
			opts[i] = Styles.Muted.Render(" " + label + " ")
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		Styles.Title.Render("How do you feel now?"),
		"",
		strings.Join(opts, "   "),
		"",
		Styles.Hint.Render("←/→ choose  enter: confirm  esc: skip"),
	)
}
