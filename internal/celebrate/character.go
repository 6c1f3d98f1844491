// Package celebrate maps the player's chosen character to the celebration
// shown after the daily quota, and holds the reflection moods offered after it.
package celebrate

// Character identifies the avatar picked on the home screen.
type Character string

const (
	Character1 Character = "character1"
	Character2 Character = "character2"
	Character3 Character = "character3"
	Character4 Character = "character4"
)

// DefaultCharacter is shown until the player picks one.
const DefaultCharacter = Character1

// DefaultAsset is played for characters without their own celebration.
const DefaultAsset = "cat"

var assets = map[Character]string{
	Character1: "cat",
	Character2: "dog",
	Character3: "bunny",
	Character4: "owl",
}

// Characters returns the selectable characters in picker order.
func Characters() []Character {
	return []Character{Character1, Character2, Character3, Character4}
}

// AssetFor returns the celebration asset name for c, or DefaultAsset.
func AssetFor(c Character) string {
	if a, ok := assets[c]; ok {
		return a
	}
	return DefaultAsset
}

// Known reports whether c is one of the four selectable characters.
func Known(c Character) bool {
	_, ok := assets[c]
	return ok
}

// Frames returns the looping text animation for an asset. Unknown assets
// get the default animation.
func Frames(asset string) []string {
	if f, ok := frames[asset]; ok {
		return f
	}
	return frames[DefaultAsset]
}

var frames = map[string][]string{
	"cat": {
		" /\\_/\\ \n( o.o )\n > ^ < ",
		" /\\_/\\ \n( -.- )\n > ^ < ",
		" /\\_/\\ \n( ^.^ )\n > ^ < ",
	},
	"dog": {
		" / \\__\n(    @\\___\n /         O",
		" / \\__\n(    -\\___\n /         O",
	},
	"bunny": {
		" (\\_/)\n (o.o)\n (> <)",
		" (\\_/)\n (^.^)\n (> <)",
		" (\\(\\ \n (-.-)\n o(\")(\")",
	},
	"owl": {
		" ,_,\n(O,O)\n(   )\n-\"-\"-",
		" ,_,\n(-,O)\n(   )\n-\"-\"-",
		" ,_,\n(O,-)\n(   )\n-\"-\"-",
	},
}
