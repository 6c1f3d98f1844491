package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offscreen/internal/celebrate"
	"offscreen/internal/pool"
)

// categoryItem implements list.DefaultItem for one pool category.
type categoryItem struct {
	key    string
	title  string
	size   int
	random bool
}

func (c categoryItem) FilterValue() string { return c.title }
func (c categoryItem) Title() string       { return c.title }
func (c categoryItem) Description() string {
	if c.random {
		return fmt.Sprintf("a mix of all %d tasks", c.size)
	}
	if c.size == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", c.size)
}

// HomeView shows the chosen character and the category list.
type HomeView struct {
	list      list.Model
	character celebrate.Character
	limit     int
}

var _ ScreenView = (*HomeView)(nil)

// NewHomeView lists the catalog's categories in order.
func NewHomeView(catalog *pool.Catalog, character celebrate.Character, limit int) *HomeView {
	var items []list.Item
	if catalog != nil {
		for _, c := range catalog.Categories() {
			items = append(items, categoryItem{
				key:    c.Key,
				title:  c.Title,
				size:   catalog.Size(c.Key),
				random: c.Random,
			})
		}
	}

	l := list.New(items, NewCategoryDelegate(), 0, 0)
	l.Title = "What do you feel like today?"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	return &HomeView{list: l, character: character, limit: limit}
}

// Screen implements ScreenView.
func (h *HomeView) Screen() Screen { return ScreenHome }

// Character returns the character shown on the home screen.
func (h *HomeView) Character() celebrate.Character { return h.character }

// SetCharacter changes the displayed character.
func (h *HomeView) SetCharacter(c celebrate.Character) { h.character = c }

// SelectedKey returns the highlighted category key, or "" for an empty list.
func (h *HomeView) SelectedKey() string {
	if item, ok := h.list.SelectedItem().(categoryItem); ok {
		return item.key
	}
	return ""
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd { return nil }

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.list.SetSize(msg.Width, msg.Height-10) // character and hint above
		return h, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if key := h.SelectedKey(); key != "" {
				return h, send(OpenCategoryMsg{Key: key})
			}
			return h, nil
		case "c":
			return h, send(ShowCharacterPickerMsg{})
		}
	}

	var cmd tea.Cmd
	h.list, cmd = h.list.Update(msg)
	return h, cmd
}

// View implements View.
func (h *HomeView) View() string {
	// Default dimensions for tests and the first frame
	if h.list.Width() == 0 {
		h.list.SetWidth(60)
	}
	if h.list.Height() == 0 {
		h.list.SetHeight(16)
	}

	frames := celebrate.Frames(celebrate.AssetFor(h.character))
	avatar := Styles.Subtitle.Render(frames[0])
	greeting := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("offscreen"),
		Styles.Muted.Render(fmt.Sprintf("%d small things, away from the screen", h.limit)),
		Styles.Hint.Render("c: change character"),
	)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, avatar, "   ", greeting))
	b.WriteString("\n\n")
	if len(h.list.Items()) == 0 {
		b.WriteString(Styles.Empty.Render("No categories loaded."))
	} else {
		b.WriteString(h.list.View())
	}
	b.WriteString("\n" + Styles.Hint.Render("enter: open  j/k: move  SPC: commands  q: quit"))
	return b.String()
}
