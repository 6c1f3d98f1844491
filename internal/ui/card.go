package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	bprogress "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offscreen/internal/deck"
	"offscreen/internal/progress"
	"offscreen/internal/session"
	"offscreen/internal/ui/textutil"
)

const (
	cardWidth   = 36
	eventBuffer = 32
)

// flipPhase tracks where the card animation is. The deck only changes between
// faceHiding and faceRevealing, when neither face is visible.
type flipPhase int

const (
	faceUp flipPhase = iota
	faceHiding
	faceRevealing
)

type flipMidMsg struct{ sessionID string }

type flipEndMsg struct{ sessionID string }

// CardView is the deck screen for one category. It owns a session.Controller
// and the channel the controller publishes to; both end in Close.
type CardView struct {
	ctrl      *session.Controller
	title     string
	events    chan progress.Event
	history   []progress.Event
	bar       bprogress.Model
	flip      *session.Transition
	phase     flipPhase
	flipDelay time.Duration
	closed    bool
}

var _ ScreenView = (*CardView)(nil)

// NewCardView starts a session with opts (its Emitter is replaced) and shows
// the first card.
func NewCardView(ctx context.Context, title string, opts session.Options, flipDelay time.Duration) *CardView {
	events := make(chan progress.Event, eventBuffer)
	opts.Emitter = &progress.ChanEmitter{Ch: events}
	if title == "" {
		title = opts.Category
	}
	bar := bprogress.New(
		bprogress.WithGradient(ColorPrimary, ColorSecondary),
		bprogress.WithoutPercentage(),
		bprogress.WithWidth(cardWidth),
	)
	return &CardView{
		ctrl:      session.New(ctx, opts),
		title:     title,
		events:    events,
		bar:       bar,
		flipDelay: flipDelay,
	}
}

// Screen implements ScreenView.
func (v *CardView) Screen() Screen { return ScreenCard }

// Controller exposes the running session.
func (v *CardView) Controller() *session.Controller { return v.ctrl }

// History returns the events seen so far, oldest first.
func (v *CardView) History() []progress.Event { return v.history }

// Flipping reports whether a flip animation is running.
func (v *CardView) Flipping() bool { return v.phase != faceUp }

// Close ends the session and its event stream. Safe to call more than once.
func (v *CardView) Close() session.Summary {
	if v.closed {
		return v.ctrl.Summary()
	}
	v.closed = true
	v.flip = nil
	v.phase = faceUp
	sum := v.ctrl.Close()
	close(v.events)
	return sum
}

// Init implements View.
func (v *CardView) Init() tea.Cmd {
	return v.waitForEvent()
}

// Update implements View.
func (v *CardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case progress.Event:
		if msg.SessionID != v.ctrl.ID() {
			return v, nil
		}
		v.history = append(v.history, msg)
		return v, tea.Batch(
			v.waitForEvent(),
			v.bar.SetPercent(progress.Fraction(msg.Completed, msg.Limit)),
		)
	case bprogress.FrameMsg:
		m, cmd := v.bar.Update(msg)
		if bar, ok := m.(bprogress.Model); ok {
			v.bar = bar
		}
		return v, cmd
	case tea.WindowSizeMsg:
		v.bar.Width = min(max(msg.Width-8, 10), cardWidth)
		return v, nil
	case flipMidMsg:
		if msg.sessionID != v.ctrl.ID() || v.flip == nil || v.phase != faceHiding {
			return v, nil
		}
		v.flip.Commit()
		v.phase = faceRevealing
		return v, v.tick(flipEndMsg{sessionID: v.ctrl.ID()})
	case flipEndMsg:
		if msg.sessionID != v.ctrl.ID() || v.flip == nil || v.phase != faceRevealing {
			return v, nil
		}
		v.flip.Finish()
		v.flip = nil
		v.phase = faceUp
		if v.ctrl.State() == deck.StateQuotaMet {
			return v, send(ShowCelebrationMsg{Summary: v.Close()})
		}
		return v, nil
	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *CardView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "enter", "d":
		t, ok := v.ctrl.Begin(session.ActionComplete)
		if !ok {
			return v, nil
		}
		v.flip = t
		v.phase = faceHiding
		return v, v.tick(flipMidMsg{sessionID: v.ctrl.ID()})
	case "l", "tab":
		v.ctrl.Defer()
		return v, nil
	case "esc":
		return v, send(CloseCardMsg{})
	}
	return v, nil
}

func (v *CardView) tick(msg tea.Msg) tea.Cmd {
	return tea.Tick(v.flipDelay, func(time.Time) tea.Msg { return msg })
}

// waitForEvent reads the next session event. A closed channel yields nil,
// which Bubble Tea drops.
func (v *CardView) waitForEvent() tea.Cmd {
	if v.closed {
		return nil
	}
	ch := v.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ev
	}
}

// View implements View.
func (v *CardView) View() string {
	snap := v.ctrl.Snapshot()

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		Styles.Title.Render(v.title),
		"  ",
		Styles.Counter.Render(fmt.Sprintf("%d/%d", snap.Completed, snap.Limit)),
	)

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(v.bar.View() + "\n\n")
	b.WriteString(v.renderFace(snap) + "\n")

	switch {
	case v.phase != faceUp || snap.State == deck.StateActive:
		left := snap.Remaining()
		if v.phase == faceHiding && v.flip != nil && v.flip.Action() == session.ActionComplete {
			left--
		}
		b.WriteString(Styles.Muted.Render(cardsLeft(left)) + "\n\n")
		b.WriteString(Styles.Hint.Render("enter/d: done  l/tab: later  esc: home  SPC h: history"))
	default:
		b.WriteString("\n" + Styles.Hint.Render("esc: home"))
	}
	return b.String()
}

func (v *CardView) renderFace(snap deck.Snapshot) string {
	switch v.phase {
	case faceHiding:
		return Styles.CardHidden.Width(cardWidth / 2).Render(wrapFace(v.flip.Task(), cardWidth/2-2))
	case faceRevealing:
		text := "✓"
		if snap.Current != "" {
			text = snap.Current
		}
		return Styles.CardHidden.Width(cardWidth / 2).Render(wrapFace(text, cardWidth/2-2))
	}

	switch snap.State {
	case deck.StateActive:
		return Styles.Card.Width(cardWidth).Render(wrapFace(snap.Current, cardWidth-6))
	case deck.StateQuotaMet:
		return Styles.Card.Width(cardWidth).Render(Styles.Party.Render("All done for today!"))
	default:
		return Styles.CardHidden.Width(cardWidth).Render(Styles.Empty.Render(emptyCopy(snap)))
	}
}

// emptyCopy distinguishes a category with no tasks from a deck that ran out
// before the quota.
func emptyCopy(snap deck.Snapshot) string {
	if snap.Outcome == deck.OutcomeNoTasks {
		return "No tasks here yet.\nTry another category."
	}
	return fmt.Sprintf("You went through every card.\n%d of %d done today.", snap.Completed, snap.Limit)
}

func cardsLeft(n int) string {
	if n == 1 {
		return "1 card left"
	}
	return fmt.Sprintf("%d cards left", n)
}

func wrapFace(s string, width int) string {
	return strings.Join(textutil.Wrap(s, width), "\n")
}
