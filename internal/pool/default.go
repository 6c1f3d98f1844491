package pool

// Category keys of the built-in catalog.
const (
	Literature = "literature"
	Arts       = "arts"
	Cooking    = "cooking"
	Adventures = "adventures"
	Random     = "random"
)

var defaultCategories = []Category{
	{
		Key:   Literature,
		Title: "Literature",
		Tasks: []string{
			"Read ten pages of a book you started and never finished",
			"Write a four-line poem about your street",
			"Copy out a sentence you love by hand",
			"Read a short story aloud to yourself",
			"Write a letter to your future self",
			"Look up the meaning of a word you keep skipping",
			"Describe the view from your window in one paragraph",
			"Read a poem in a language you are learning",
		},
	},
	{
		Key:   Arts,
		Title: "Arts",
		Tasks: []string{
			"Sketch the nearest cup without lifting your pen",
			"Take three photos of shadows",
			"Fold a paper crane",
			"Paint something using only two colours",
			"Doodle your mood as a pattern",
			"Draw a map of your neighbourhood from memory",
			"Build a tiny sculpture from things on your desk",
		},
	},
	{
		Key:   Cooking,
		Title: "Cooking",
		Tasks: []string{
			"Make tea the slow way and drink it away from screens",
			"Cook an egg in a way you never have",
			"Try a spice you have not used this month",
			"Make a salad with five colours",
			"Bake something small for a neighbour",
			"Write down a family recipe before it gets lost",
			"Cook one meal without a recipe",
		},
	},
	{
		Key:   Adventures,
		Title: "Adventures",
		Tasks: []string{
			"Walk a street you have never walked",
			"Watch the sunset without your phone",
			"Find the oldest tree nearby",
			"Take the stairs all day",
			"Visit a shop you always pass by",
			"Go outside and count five different birds",
			"Sit in a park for fifteen minutes",
			"Plan a day trip for next weekend",
		},
	},
	{
		Key:    Random,
		Title:  "Surprise me",
		Random: true,
	},
}

// Default returns the built-in catalog of the five interests.
func Default() *Catalog {
	c, err := NewCatalog(defaultCategories)
	if err != nil {
		panic("pool: invalid default catalog: " + err.Error())
	}
	return c
}
