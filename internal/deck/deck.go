// Package deck implements the daily task deck: a small sample of tasks drawn
// from a category pool, worked through one card at a time.
//
// A Deck is a plain state machine with no timers and no locking. Callers own
// sequencing (see package session for the two-phase flip) and gate their
// affordances on State; operations that violate a precondition are no-ops
// and report false.
package deck

import (
	"math/rand"
	"slices"
)

// DefaultDailyLimit is the number of completions that finishes a session.
const DefaultDailyLimit = 5

// PoolSource resolves a category key to its pool of candidate tasks.
// Implementations must not retain or mutate the returned slice's caller copy.
type PoolSource interface {
	Tasks(category string) []string
}

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Deck is the session-scoped ordered sequence of tasks drawn from a pool.
type Deck struct {
	category  string
	tasks     []string
	current   int
	completed int
	limit     int
	drawn     int
	state     State
}

// New returns a deck in StateLoading. A limit below 1 uses DefaultDailyLimit.
func New(limit int) *Deck {
	if limit < 1 {
		limit = DefaultDailyLimit
	}
	return &Deck{limit: limit, state: StateLoading}
}

// Initialize draws min(limit, |pool|) tasks from the category's pool without
// replacement, in random order, and resets progress. An empty pool leaves the
// deck in StateEmpty. Calling it again discards the current draw.
func (d *Deck) Initialize(category string, src PoolSource, shuffler Shuffler) {
	if shuffler == nil {
		shuffler = globalShuffler{}
	}
	var pool []string
	if src != nil {
		pool = slices.Clone(src.Tasks(category))
	}

	d.category = category
	d.current = 0
	d.completed = 0

	if len(pool) == 0 {
		d.tasks = nil
		d.drawn = 0
		d.state = StateEmpty
		return
	}

	shuffler.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	n := min(d.limit, len(pool))
	d.tasks = pool[:n:n]
	d.drawn = n
	d.state = StateActive
}

// Complete marks the current task done and removes it from the deck.
// Returns false without changing anything unless the deck is active.
func (d *Deck) Complete() bool {
	if !d.canComplete() {
		return false
	}
	d.completed++
	d.tasks = slices.Delete(d.tasks, d.current, d.current+1)
	d.clampCurrent()

	switch {
	case d.completed == d.limit:
		d.state = StateQuotaMet
	case len(d.tasks) == 0:
		d.state = StateEmpty
	}
	return true
}

// Defer moves the current task to the end of the deck. Progress is unchanged.
// Returns false unless the deck is active.
func (d *Deck) Defer() bool {
	if d.state != StateActive || len(d.tasks) == 0 {
		return false
	}
	t := d.tasks[d.current]
	d.tasks = append(slices.Delete(d.tasks, d.current, d.current+1), t)
	d.clampCurrent()
	return true
}

// CanComplete reports whether Complete would apply.
func (d *Deck) CanComplete() bool { return d.canComplete() }

// CanDefer reports whether Defer would apply.
func (d *Deck) CanDefer() bool { return d.state == StateActive && len(d.tasks) > 0 }

func (d *Deck) canComplete() bool {
	return d.state == StateActive && len(d.tasks) > 0 && d.completed < d.limit
}

func (d *Deck) clampCurrent() {
	if d.current >= len(d.tasks) {
		d.current = 0
	}
}

// Current returns the task on display.
func (d *Deck) Current() (string, bool) {
	if len(d.tasks) == 0 || d.current >= len(d.tasks) {
		return "", false
	}
	return d.tasks[d.current], true
}

// Category returns the key the deck was drawn from.
func (d *Deck) Category() string { return d.category }

// State returns the current lifecycle state.
func (d *Deck) State() State { return d.state }

// Completed returns the number of tasks marked done this session.
func (d *Deck) Completed() int { return d.completed }

// Limit returns the daily quota.
func (d *Deck) Limit() int { return d.limit }

// Remaining returns the number of tasks still in the deck.
func (d *Deck) Remaining() int { return len(d.tasks) }

// Drawn returns the size of the initial sample.
func (d *Deck) Drawn() int { return d.drawn }

// Outcome classifies how the session ended, or OutcomeNone while it is still running.
func (d *Deck) Outcome() Outcome {
	switch d.state {
	case StateQuotaMet:
		return OutcomeQuotaMet
	case StateEmpty:
		if d.drawn == 0 {
			return OutcomeNoTasks
		}
		return OutcomeRanOut
	default:
		return OutcomeNone
	}
}

// Snapshot returns a copy of the deck safe to hand to observers.
func (d *Deck) Snapshot() Snapshot {
	cur, _ := d.Current()
	return Snapshot{
		Category:     d.category,
		State:        d.state,
		Outcome:      d.Outcome(),
		Tasks:        slices.Clone(d.tasks),
		Current:      cur,
		CurrentIndex: d.current,
		Completed:    d.completed,
		Limit:        d.limit,
		Drawn:        d.drawn,
	}
}
