package ui

// Screen names what is on top of the ViewStack. Keybind hints are filtered by it.
type Screen int

const (
	ScreenNone Screen = iota
	ScreenSplash
	ScreenHome
	ScreenCard
	ScreenCelebration
	ScreenReflection
)

func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "Splash"
	case ScreenHome:
		return "Home"
	case ScreenCard:
		return "Card"
	case ScreenCelebration:
		return "Celebration"
	case ScreenReflection:
		return "Reflection"
	default:
		return "None"
	}
}
