package progress

import "time"

// Kind identifies what changed in a session.
type Kind string

const (
	KindStarted   Kind = "started"
	KindCompleted Kind = "completed"
	KindDeferred  Kind = "deferred"
	KindSettled   Kind = "settled" // in-flight transition finished
	KindClosed    Kind = "closed"
)

// Event is the contract between a running session and whatever displays it.
// Emitted on every state change; the card screen and its history overlay consume it.
type Event struct {
	SessionID string
	Category  string
	Kind      Kind
	State     string
	Current   string
	Completed int
	Limit     int
	Remaining int
	Timestamp time.Time
	Metadata  map[string]string // optional: task, outcome, etc.
}

// Emitter receives session events.
type Emitter interface {
	Emit(Event)
}

// ChanEmitter emits events to a channel for the UI to consume.
type ChanEmitter struct {
	Ch chan<- Event
}

// Emit sends the event to the channel (non-blocking; drops if full).
func (e *ChanEmitter) Emit(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	select {
	case e.Ch <- ev:
	default:
		// Channel full; a slow view must not stall the session
	}
}

type discard struct{}

func (discard) Emit(Event) {}

// Discard drops every event.
var Discard Emitter = discard{}

// Fraction returns the progress bar position for completed out of limit.
// The bar reaches its end one step before the quota and stays there, so the
// marker sits at the finish line while the last card is on the table.
func Fraction(completed, limit int) float64 {
	if limit <= 1 {
		if completed >= limit {
			return 1
		}
		return 0
	}
	c := min(max(completed, 0), limit-1)
	return float64(c) / float64(limit-1)
}
