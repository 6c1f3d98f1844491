package ui

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offscreen/internal/celebrate"
	"offscreen/internal/config"
	"offscreen/internal/deck"
	"offscreen/internal/pool"
	"offscreen/internal/progress"
	"offscreen/internal/session"
	"offscreen/internal/trace"
)

// Deps are what the screens need from the outside. Zero values get defaults:
// the built-in catalog, config.Default, the global shuffler and the real clock.
type Deps struct {
	Catalog   *pool.Catalog
	Config    config.Config
	Recorder  *trace.Recorder
	Shuffler  deck.Shuffler
	Clock     session.Clock
	Character celebrate.Character
}

// AppModel is the root model: a stack of screens with overlays on top.
type AppModel struct {
	Stack      ViewStack
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Character  celebrate.Character

	ctx    context.Context
	deps   Deps
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model, starting on the splash unless its
// delay is zero.
func NewAppModel(ctx context.Context, deps Deps) *AppModel {
	if deps.Catalog == nil {
		deps.Catalog = pool.Default()
	}
	if deps.Config == (config.Config{}) {
		deps.Config = config.Default()
	}
	character := deps.Character
	if !celebrate.Known(character) {
		character = celebrate.DefaultCharacter
	}

	reg := NewKeybindRegistry()
	reg.BindOn("q", tea.Quit, "Quit")
	reg.BindOn("ctrl+c", tea.Quit, "Quit")
	reg.BindOn("SPC q", tea.Quit, "Quit")
	reg.BindOn("SPC c", send(ShowCharacterPickerMsg{}), "Character", ScreenHome)
	reg.BindOn("SPC h", send(ShowHistoryMsg{}), "History", ScreenCard)
	reg.BindOn("SPC g", send(GoHomeMsg{}), "Home", ScreenCard, ScreenCelebration, ScreenReflection)

	a := &AppModel{
		KeyHandler: NewKeyHandler(reg),
		Character:  character,
		ctx:        ctx,
		deps:       deps,
	}
	if deps.Config.SplashDelay > 0 {
		a.Stack.Push(NewSplashView(deps.Config.SplashDelay))
	} else {
		a.Stack.Push(a.newHome())
	}
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Close ends any session still on the stack, e.g. after quitting from a card.
func (a *AppModel) Close() {
	for _, v := range a.Stack.Stack {
		if card, ok := v.(*CardView); ok {
			card.Close()
		}
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if top := a.Stack.Peek(); top != nil {
		return top.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, tea.Batch(a.updateTop(msg), cmd)
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case SplashDoneMsg:
		return a, a.handleSplashDone()
	case OpenCategoryMsg:
		return a, a.handleOpenCategory(msg.Key)
	case CloseCardMsg:
		a.handleCloseCard()
		return a, nil
	case ShowCelebrationMsg:
		return a, a.handleShowCelebration(msg.Summary)
	case ShowReflectionMsg:
		return a, a.handleShowReflection()
	case GoHomeMsg:
		a.handleGoHome()
		return a, nil
	case ShowCharacterPickerMsg:
		if a.Stack.Current() == ScreenHome && a.Overlays.Len() == 0 {
			a.Overlays.Push(Overlay{View: NewCharacterPicker(a.Character), Dismiss: "esc"})
		}
		return a, nil
	case CharacterSelectedMsg:
		a.handleCharacterSelected(msg.Character)
		return a, nil
	case ShowHistoryMsg:
		if card, ok := a.Stack.Peek().(*CardView); ok && a.Overlays.Len() == 0 {
			a.Overlays.Push(Overlay{View: NewHistoryWindow(card.Controller().ID(), card.History()), Dismiss: "esc"})
		}
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case progress.Event:
		// The history overlay follows along; the card still gets the event.
		var cmd tea.Cmd
		if top, ok := a.Overlays.Peek(); ok {
			if _, isHistory := top.View.(*HistoryWindow); isHistory {
				cmd, _ = a.Overlays.UpdateTop(msg)
			}
		}
		return a, tea.Batch(a.updateTop(msg), cmd)
	}
	return a, a.updateTop(msg)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	top := a.Stack.Peek()
	if top == nil {
		return ""
	}
	base := top.View()
	if o, ok := a.Overlays.Peek(); ok {
		base = o.View.View()
		if a.width > 0 && a.height > 0 {
			base = lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, base)
		}
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Stack.Current())
	}
	return base
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	// q and ctrl+c quit from anywhere, overlays included
	if s := msg.String(); s == "ctrl+c" || s == "q" {
		return tea.Quit
	}
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Stack.Current()); consumed {
			return cmd
		}
	}
	return a.updateTop(msg)
}

func (a *AppModel) updateTop(msg tea.Msg) tea.Cmd {
	top := a.Stack.Peek()
	if top == nil {
		return nil
	}
	v, cmd := top.Update(msg)
	if sv, ok := v.(ScreenView); ok {
		a.Stack.SetTop(sv)
	}
	return cmd
}

// show sizes v for the current window and returns its Init.
func (a *AppModel) show(v ScreenView) tea.Cmd {
	if a.width > 0 {
		v.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	return v.Init()
}

func (a *AppModel) newHome() *HomeView {
	return NewHomeView(a.deps.Catalog, a.Character, a.deps.Config.DailyLimit)
}

func (a *AppModel) handleSplashDone() tea.Cmd {
	// The timer still fires after a key skipped the splash
	if a.Stack.Current() != ScreenSplash {
		return nil
	}
	home := a.newHome()
	a.Stack.Replace(home)
	return a.show(home)
}

func (a *AppModel) handleOpenCategory(key string) tea.Cmd {
	if a.Stack.Current() != ScreenHome {
		return nil
	}
	cat, err := a.deps.Catalog.Require(key)
	if err != nil {
		log.Printf("ui.handleOpenCategory: %v", err)
		return nil
	}
	card := NewCardView(a.ctx, cat.Title, session.Options{
		Category: cat.Key,
		Pools:    a.deps.Catalog,
		Limit:    a.deps.Config.DailyLimit,
		Shuffler: a.deps.Shuffler,
		Recorder: a.deps.Recorder,
		Clock:    a.deps.Clock,
	}, a.deps.Config.FlipDelay)
	a.Stack.Push(card)
	return a.show(card)
}

func (a *AppModel) handleCloseCard() {
	card, ok := a.Stack.Peek().(*CardView)
	if !ok {
		return
	}
	card.Close()
	a.Overlays.Clear()
	a.Stack.Pop()
}

func (a *AppModel) handleShowCelebration(sum session.Summary) tea.Cmd {
	card, ok := a.Stack.Peek().(*CardView)
	if !ok {
		return nil
	}
	card.Close()
	a.Overlays.Clear()
	v := NewCelebrationView(a.Character, sum)
	a.Stack.Replace(v)
	return a.show(v)
}

func (a *AppModel) handleShowReflection() tea.Cmd {
	if a.Stack.Current() != ScreenCelebration {
		return nil
	}
	v := NewReflectionView()
	a.Stack.Replace(v)
	return a.show(v)
}

func (a *AppModel) handleGoHome() {
	for _, v := range a.Stack.Unwind() {
		if card, ok := v.(*CardView); ok {
			card.Close()
		}
	}
	a.Overlays.Clear()
}

func (a *AppModel) handleCharacterSelected(c celebrate.Character) {
	if !celebrate.Known(c) {
		return
	}
	a.Character = c
	if len(a.Stack.Stack) > 0 {
		if home, ok := a.Stack.Stack[0].(*HomeView); ok {
			home.SetCharacter(c)
		}
	}
	if top, ok := a.Overlays.Peek(); ok {
		if _, isPicker := top.View.(*CharacterPicker); isPicker {
			a.Overlays.Pop()
		}
	}
}
