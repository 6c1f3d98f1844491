package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offscreen/internal/progress"
	"offscreen/internal/ui/textutil"
)

// HistoryWindow lists the running session's events with scrollback.
// Shown over the card screen with SPC h; Esc dismisses.
type HistoryWindow struct {
	sessionID string
	events    []progress.Event
	viewport  viewport.Model
}

var _ View = (*HistoryWindow)(nil)

const (
	defaultHistoryWidth  = 56
	defaultHistoryHeight = 12
)

// NewHistoryWindow opens with the events seen so far for sessionID.
func NewHistoryWindow(sessionID string, events []progress.Event) *HistoryWindow {
	vp := viewport.New(defaultHistoryWidth, defaultHistoryHeight)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1)
	h := &HistoryWindow{
		sessionID: sessionID,
		events:    append([]progress.Event(nil), events...),
		viewport:  vp,
	}
	h.refreshContent()
	return h
}

// Len returns the number of events shown.
func (h *HistoryWindow) Len() int { return len(h.events) }

// Init implements View.
func (h *HistoryWindow) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (h *HistoryWindow) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case progress.Event:
		if msg.SessionID != h.sessionID {
			return h, nil
		}
		h.events = append(h.events, msg)
		h.refreshContent()
		return h, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return h, send(DismissModalMsg{})
		}
	case tea.WindowSizeMsg:
		h.viewport.Width = max(msg.Width-4, 40)
		h.viewport.Height = max(msg.Height/2, 8)
		h.refreshContent()
		return h, nil
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements View.
func (h *HistoryWindow) View() string {
	header := Styles.Title.Render("This session") + Styles.Hint.Render("  Esc: close")
	return header + "\n" + h.viewport.View()
}

func (h *HistoryWindow) refreshContent() {
	width := max(h.viewport.Width-4, 10)
	var lines []string
	for _, ev := range h.events {
		line := fmt.Sprintf("%s %s %s",
			ev.Timestamp.Format("15:04:05"),
			kindIcon(ev.Kind),
			describeEvent(ev))
		lines = append(lines, textutil.Truncate(line, width))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = Styles.Empty.Render("Nothing yet.")
	}
	h.viewport.SetContent(content)
	h.viewport.GotoBottom()
}

func describeEvent(ev progress.Event) string {
	switch ev.Kind {
	case progress.KindStarted:
		return fmt.Sprintf("drew %d cards", ev.Remaining)
	case progress.KindCompleted:
		return fmt.Sprintf("done: %s (%d/%d)", ev.Metadata["task"], ev.Completed, ev.Limit)
	case progress.KindDeferred:
		return "later: " + ev.Metadata["task"]
	case progress.KindSettled:
		if ev.Current == "" {
			return "no cards left"
		}
		return "next: " + ev.Current
	case progress.KindClosed:
		return "closed, " + ev.Metadata["outcome"]
	default:
		return string(ev.Kind)
	}
}

func kindIcon(k progress.Kind) string {
	switch k {
	case progress.KindCompleted:
		return "✓"
	case progress.KindDeferred:
		return "↻"
	case progress.KindClosed:
		return "■"
	default:
		return "•"
	}
}
