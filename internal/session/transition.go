package session

import "offscreen/internal/progress"

// Action is what a transition does to the deck.
type Action int

const (
	ActionComplete Action = iota
	ActionDefer
)

func (a Action) String() string {
	switch a {
	case ActionComplete:
		return "complete"
	case ActionDefer:
		return "defer"
	default:
		return "unknown"
	}
}

// Transition is the handle returned by Controller.Begin.
type Transition struct {
	c         *Controller
	action    Action
	task      string
	committed bool
	applied   bool
	finished  bool
}

// Action returns what the transition does.
func (t *Transition) Action() Action { return t.action }

// Task returns the card that was showing when the transition began.
func (t *Transition) Task() string { return t.task }

// Committed reports whether Commit has run.
func (t *Transition) Committed() bool { return t.committed }

// Applied reports whether Commit changed the deck.
func (t *Transition) Applied() bool { return t.applied }

// Finished reports whether Finish has run.
func (t *Transition) Finished() bool { return t.finished }

// Commit applies the deck mutation. Only the first call has an effect, and
// none once the transition is finished or the session closed.
func (t *Transition) Commit() bool {
	if t.committed || t.finished || t.c.closed || t.c.inFlight != t {
		return false
	}
	t.committed = true

	d := t.c.deck
	var kind progress.Kind
	switch t.action {
	case ActionComplete:
		t.applied = d.Complete()
		kind = progress.KindCompleted
	case ActionDefer:
		t.applied = d.Defer()
		kind = progress.KindDeferred
	}
	if !t.applied {
		return false
	}

	t.c.span.TaskEvent("task."+t.action.String(), t.task, d.Completed(), d.Remaining())
	t.c.emit(kind, map[string]string{"task": t.task})
	return true
}

// Finish releases the in-flight guard. Safe to call more than once.
func (t *Transition) Finish() {
	if t.finished {
		return
	}
	t.finished = true
	if t.c.inFlight != t {
		return
	}
	t.c.inFlight = nil
	t.c.emit(progress.KindSettled, map[string]string{"action": t.action.String()})
}
