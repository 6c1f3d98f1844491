// Package ui is the Bubble Tea front end: a stack of screens (splash, home,
// card, celebration, reflection), modal overlays on top of them, and a
// leader-key registry for SPC sequences.
//
// Screens never touch the deck directly. The card screen drives a
// session.Controller and repaints from the progress events it publishes.
package ui
