package deck

// State is the deck lifecycle.
//
//	Loading -> Active | Empty
//	Active  -> Active (complete/defer) | Empty (ran out) | QuotaMet
//
// Empty and QuotaMet are terminal until the deck is initialized again.
type State int

const (
	StateLoading State = iota
	StateEmpty
	StateActive
	StateQuotaMet
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	case StateActive:
		return "active"
	case StateQuotaMet:
		return "quota_met"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further complete or defer can apply.
func (s State) Terminal() bool {
	return s == StateEmpty || s == StateQuotaMet
}

// Outcome separates the two ways a deck can end up empty.
type Outcome int

const (
	// OutcomeNone means the session is still loading or active.
	OutcomeNone Outcome = iota
	// OutcomeNoTasks means the category pool was empty.
	OutcomeNoTasks
	// OutcomeRanOut means every drawn task was completed before the quota.
	OutcomeRanOut
	// OutcomeQuotaMet means completed reached the daily limit.
	OutcomeQuotaMet
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeNoTasks:
		return "no_tasks"
	case OutcomeRanOut:
		return "ran_out"
	case OutcomeQuotaMet:
		return "quota_met"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of a deck.
type Snapshot struct {
	Category     string
	State        State
	Outcome      Outcome
	Tasks        []string
	Current      string
	CurrentIndex int
	Completed    int
	Limit        int
	Drawn        int
}

// Remaining returns the number of tasks left in the snapshot.
func (s Snapshot) Remaining() int { return len(s.Tasks) }
