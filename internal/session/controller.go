// Package session runs one visit to a category's card screen: it owns the
// deck, serializes transitions behind a single in-flight guard, and publishes
// every change to an observer.
//
// A transition has two phases driven by the caller. Begin takes the guard and
// hands back a Transition; Commit mutates the deck at the logical midpoint
// (old face hidden, new face not yet shown); Finish releases the guard. The
// controller never schedules anything itself, so the presentation layer picks
// its own timing.
package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"offscreen/internal/deck"
	"offscreen/internal/progress"
	"offscreen/internal/trace"
)

// Options configures a new Controller. Only Category is required.
type Options struct {
	ID       string // generated when empty
	Category string
	Pools    deck.PoolSource
	Limit    int
	Shuffler deck.Shuffler
	Emitter  progress.Emitter
	Recorder *trace.Recorder
	Clock    Clock
}

// Controller is not safe for concurrent use; it lives on the UI goroutine.
type Controller struct {
	id        string
	category  string
	deck      *deck.Deck
	inFlight  *Transition
	emitter   progress.Emitter
	span      *trace.SessionSpan
	clock     Clock
	startedAt time.Time
	endedAt   time.Time
	closed    bool
}

// New draws a fresh deck for opts.Category and announces the session.
func New(ctx context.Context, opts Options) *Controller {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.Emitter == nil {
		opts.Emitter = progress.Discard
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}

	d := deck.New(opts.Limit)
	d.Initialize(opts.Category, opts.Pools, opts.Shuffler)

	c := &Controller{
		id:        opts.ID,
		category:  opts.Category,
		deck:      d,
		emitter:   opts.Emitter,
		clock:     opts.Clock,
		startedAt: opts.Clock.Now(),
	}
	c.span = opts.Recorder.StartSession(ctx, c.id, c.category, d.Limit(), d.Drawn())
	c.emit(progress.KindStarted, nil)
	return c
}

// ID returns the session id.
func (c *Controller) ID() string { return c.id }

// Category returns the category key the deck was drawn from.
func (c *Controller) Category() string { return c.category }

// Snapshot returns the current deck state.
func (c *Controller) Snapshot() deck.Snapshot { return c.deck.Snapshot() }

// State returns the deck state.
func (c *Controller) State() deck.State { return c.deck.State() }

// InFlight reports whether a transition holds the guard.
func (c *Controller) InFlight() bool { return c.inFlight != nil }

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool { return c.closed }

// Begin starts a transition. It refuses, without side effects, when another
// transition is in flight, the session is closed, or the deck would not
// accept the action.
func (c *Controller) Begin(action Action) (*Transition, bool) {
	if c.closed || c.inFlight != nil {
		return nil, false
	}
	switch action {
	case ActionComplete:
		if !c.deck.CanComplete() {
			return nil, false
		}
	case ActionDefer:
		if !c.deck.CanDefer() {
			return nil, false
		}
	default:
		return nil, false
	}
	task, _ := c.deck.Current()
	t := &Transition{c: c, action: action, task: task}
	c.inFlight = t
	return t, true
}

// Complete runs a whole complete transition at once.
func (c *Controller) Complete() bool { return c.run(ActionComplete) }

// Defer runs a whole defer transition at once. Ignored while a flip is in flight.
func (c *Controller) Defer() bool { return c.run(ActionDefer) }

func (c *Controller) run(action Action) bool {
	t, ok := c.Begin(action)
	if !ok {
		return false
	}
	applied := t.Commit()
	t.Finish()
	return applied
}

// Close ends the session. Later calls and any in-flight transition become no-ops.
func (c *Controller) Close() Summary {
	if c.closed {
		return c.Summary()
	}
	c.closed = true
	c.inFlight = nil
	c.endedAt = c.clock.Now()

	outcome := c.deck.Outcome()
	c.span.End(outcome.String(), c.deck.Completed())
	c.emit(progress.KindClosed, map[string]string{"outcome": outcome.String()})
	log.Printf("session.Close: %s category=%s completed=%d/%d outcome=%s",
		c.id, c.category, c.deck.Completed(), c.deck.Limit(), outcome)
	return c.Summary()
}

// Summary reports the session result so far.
func (c *Controller) Summary() Summary {
	return Summary{
		ID:        c.id,
		Category:  c.category,
		Completed: c.deck.Completed(),
		Limit:     c.deck.Limit(),
		Drawn:     c.deck.Drawn(),
		Outcome:   c.deck.Outcome(),
		StartedAt: c.startedAt,
		EndedAt:   c.endedAt,
	}
}

func (c *Controller) emit(kind progress.Kind, meta map[string]string) {
	snap := c.deck.Snapshot()
	c.emitter.Emit(progress.Event{
		SessionID: c.id,
		Category:  c.category,
		Kind:      kind,
		State:     snap.State.String(),
		Current:   snap.Current,
		Completed: snap.Completed,
		Limit:     snap.Limit,
		Remaining: snap.Remaining(),
		Timestamp: c.clock.Now(),
		Metadata:  meta,
	})
}

// Summary is the result of a session. Nothing persists it.
type Summary struct {
	ID        string
	Category  string
	Completed int
	Limit     int
	Drawn     int
	Outcome   deck.Outcome
	StartedAt time.Time
	EndedAt   time.Time // zero until closed
}

// Duration returns how long the session ran, or zero while it is open.
func (s Summary) Duration() time.Duration {
	if s.EndedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// String formats the summary for logs and the CLI.
func (s Summary) String() string {
	return fmt.Sprintf("%s %d/%d (%s)", s.Category, s.Completed, s.Limit, s.Outcome)
}
