package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offscreen/internal/celebrate"
)

// CharacterPicker is a modal with the four characters side by side.
// left/right (or h/l, 1-4) move; enter picks; esc cancels.
type CharacterPicker struct {
	characters []celebrate.Character
	selected   int
}

var _ View = (*CharacterPicker)(nil)

// NewCharacterPicker opens with current highlighted.
func NewCharacterPicker(current celebrate.Character) *CharacterPicker {
	chars := celebrate.Characters()
	p := &CharacterPicker{characters: chars}
	for i, c := range chars {
		if c == current {
			p.selected = i
		}
	}
	return p
}

// Selected returns the highlighted character.
func (p *CharacterPicker) Selected() celebrate.Character {
	return p.characters[p.selected]
}

// Init implements View.
func (p *CharacterPicker) Init() tea.Cmd { return nil }

// Update implements View.
func (p *CharacterPicker) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch s := km.String(); s {
	case "left", "h":
		if p.selected > 0 {
			p.selected--
		}
	case "right", "l":
		if p.selected < len(p.characters)-1 {
			p.selected++
		}
	case "1", "2", "3", "4":
		n, _ := strconv.Atoi(s)
		if n <= len(p.characters) {
			p.selected = n - 1
		}
	case "enter":
		return p, send(CharacterSelectedMsg{Character: p.Selected()})
	case "esc":
		return p, send(DismissModalMsg{})
	}
	return p, nil
}

// View implements View.
func (p *CharacterPicker) View() string {
	cells := make([]string, 0, len(p.characters))
	for i, c := range p.characters {
		frame := celebrate.Frames(celebrate.AssetFor(c))[0]
		label := strconv.Itoa(i+1) + " " + celebrate.AssetFor(c)
		style := Styles.Muted
		border := lipgloss.HiddenBorder()
		if i == p.selected {
			style = Styles.Selected
			border = lipgloss.RoundedBorder()
		}
		cell := lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(ColorAccent)).
			Padding(0, 1).
			Render(lipgloss.JoinVertical(lipgloss.Center, style.Render(frame), style.Render(label)))
		cells = append(cells, cell)
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("Choose your character"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		"",
		Styles.Hint.Render("←/→ move  enter: pick  esc: cancel"),
	)
	return Styles.Box.Render(content)
}
