package celebrate

// Mood is the answer to "how do you feel?" after a finished session.
type Mood int

const (
	MoodBetter Mood = iota
	MoodSame
	MoodWorse
)

// Moods returns the choices in display order.
func Moods() []Mood { return []Mood{MoodBetter, MoodSame, MoodWorse} }

func (m Mood) Emoji() string {
	switch m {
	case MoodBetter:
		return "😊"
	case MoodSame:
		return "😐"
	case MoodWorse:
		return "😔"
	default:
		return "?"
	}
}

func (m Mood) Label() string {
	switch m {
	case MoodBetter:
		return "Better"
	case MoodSame:
		return "Same"
	case MoodWorse:
		return "Worse"
	default:
		return "Unknown"
	}
}

func (m Mood) String() string { return m.Label() }
