package ui

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"offscreen/internal/celebrate"
	"offscreen/internal/config"
	"offscreen/internal/progress"
	"offscreen/internal/session"
)

func newTestApp(t *testing.T) (*AppModel, tea.Model) {
	t.Helper()
	cfg := config.Default()
	cfg.SplashDelay = 0
	cfg.FlipDelay = time.Millisecond
	a := NewAppModel(context.Background(), Deps{
		Catalog:  testCatalog(t),
		Config:   cfg,
		Shuffler: rand.New(rand.NewSource(1)),
		Clock:    session.NewFakeClock(time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)),
	})
	return a, a.AsTeaModel()
}

// runCmd executes cmd and feeds its message back into m.
func runCmd(m tea.Model, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	_, next := m.Update(cmd())
	return next
}

func openCard(t *testing.T, a *AppModel, m tea.Model, key string) *CardView {
	t.Helper()
	m.Update(OpenCategoryMsg{Key: key})
	card, ok := a.Stack.Peek().(*CardView)
	if !ok {
		t.Fatalf("OpenCategoryMsg: expected CardView on top, got %T", a.Stack.Peek())
	}
	return card
}

func flip(m tea.Model, card *CardView) tea.Cmd {
	id := card.Controller().ID()
	m.Update(keyMsg("d"))
	m.Update(flipMidMsg{sessionID: id})
	_, cmd := m.Update(flipEndMsg{sessionID: id})
	return cmd
}

func TestNewAppModel_Splash(t *testing.T) {
	cfg := config.Default()
	a := NewAppModel(context.Background(), Deps{Config: cfg})
	if a.Stack.Current() != ScreenSplash {
		t.Fatalf("expected splash, got %s", a.Stack.Current())
	}
	m := a.AsTeaModel()

	_, cmd := m.Update(keyMsg("x"))
	if cmd == nil {
		t.Fatal("key on splash: expected a command")
	}
	runCmd(m, cmd)
	if a.Stack.Current() != ScreenHome {
		t.Errorf("expected home after splash, got %s", a.Stack.Current())
	}
	if a.Stack.Len() != 1 {
		t.Errorf("splash should be replaced, stack len %d", a.Stack.Len())
	}

	// The delayed tick arrives after the key skipped the splash
	m.Update(SplashDoneMsg{})
	if a.Stack.Len() != 1 || a.Stack.Current() != ScreenHome {
		t.Error("late SplashDoneMsg should be ignored")
	}
}

func TestNewAppModel_Defaults(t *testing.T) {
	a := NewAppModel(context.Background(), Deps{Character: "nobody"})
	if a.Character != celebrate.DefaultCharacter {
		t.Errorf("unknown character: expected default, got %s", a.Character)
	}
	if a.deps.Catalog == nil || len(a.deps.Catalog.Categories()) == 0 {
		t.Error("expected the built-in catalog")
	}
	if a.deps.Config.DailyLimit != 5 {
		t.Errorf("expected default limit 5, got %d", a.deps.Config.DailyLimit)
	}
}

func TestApp_OpenAndCloseCard(t *testing.T) {
	a, m := newTestApp(t)
	card := openCard(t, a, m, "six")
	if a.Stack.Current() != ScreenCard {
		t.Fatalf("expected card screen, got %s", a.Stack.Current())
	}

	_, cmd := m.Update(keyMsg("esc"))
	runCmd(m, cmd)
	if a.Stack.Current() != ScreenHome {
		t.Errorf("esc: expected home, got %s", a.Stack.Current())
	}
	if !card.Controller().Closed() {
		t.Error("leaving the card should close its session")
	}

	again := openCard(t, a, m, "six")
	if again.Controller().ID() == card.Controller().ID() {
		t.Error("re-entering should start a new session")
	}
}

func TestApp_OpenUnknownCategory(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(OpenCategoryMsg{Key: "missing"})
	if a.Stack.Current() != ScreenHome {
		t.Errorf("unknown category: expected to stay home, got %s", a.Stack.Current())
	}
}

func TestApp_QuotaFlow(t *testing.T) {
	a, m := newTestApp(t)
	card := openCard(t, a, m, "six")

	var cmd tea.Cmd
	for i := 0; i < 5; i++ {
		cmd = flip(m, card)
	}
	if cmd == nil {
		t.Fatal("fifth flip: expected navigation")
	}
	runCmd(m, cmd)
	celebration, ok := a.Stack.Peek().(*CelebrationView)
	if !ok {
		t.Fatalf("expected celebration, got %T", a.Stack.Peek())
	}
	if celebration.Asset() != "cat" {
		t.Errorf("expected default asset cat, got %s", celebration.Asset())
	}
	if a.Stack.Len() != 2 {
		t.Errorf("celebration should replace the card, stack len %d", a.Stack.Len())
	}

	_, cmd = m.Update(keyMsg("enter"))
	runCmd(m, cmd)
	if a.Stack.Current() != ScreenReflection {
		t.Fatalf("expected reflection, got %s", a.Stack.Current())
	}

	m.Update(keyMsg("enter"))
	_, cmd = m.Update(keyMsg("enter"))
	runCmd(m, cmd)
	if a.Stack.Current() != ScreenHome || a.Stack.Len() != 1 {
		t.Errorf("expected back home, got %s (len %d)", a.Stack.Current(), a.Stack.Len())
	}
}

func TestApp_CharacterPicker(t *testing.T) {
	a, m := newTestApp(t)

	_, cmd := m.Update(keyMsg("c"))
	runCmd(m, cmd)
	if a.Overlays.Len() != 1 {
		t.Fatalf("expected picker overlay, got %d overlays", a.Overlays.Len())
	}

	m.Update(keyMsg("right"))
	_, cmd = m.Update(keyMsg("enter"))
	runCmd(m, cmd)
	if a.Overlays.Len() != 0 {
		t.Error("picking should close the overlay")
	}
	if a.Character != celebrate.Character2 {
		t.Errorf("expected character2, got %s", a.Character)
	}
	home := a.Stack.Peek().(*HomeView)
	if home.Character() != celebrate.Character2 {
		t.Errorf("home: expected character2, got %s", home.Character())
	}
}

func TestApp_PickerDismissedWithEsc(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(ShowCharacterPickerMsg{})
	m.Update(keyMsg("esc"))
	if a.Overlays.Len() != 0 {
		t.Error("esc should dismiss the picker")
	}
	if a.Character != celebrate.DefaultCharacter {
		t.Errorf("esc should keep the character, got %s", a.Character)
	}
}

func TestApp_LeaderOpensHistory(t *testing.T) {
	a, m := newTestApp(t)
	card := openCard(t, a, m, "six")
	m.Update(card.Init()())

	m.Update(keyMsg(" "))
	if !strings.Contains(m.View(), "History") {
		t.Error("leader hints on the card should list History")
	}
	_, cmd := m.Update(keyMsg("h"))
	runCmd(m, cmd)

	top, ok := a.Overlays.Peek()
	if !ok {
		t.Fatal("expected history overlay")
	}
	hist, ok := top.View.(*HistoryWindow)
	if !ok {
		t.Fatalf("expected HistoryWindow, got %T", top.View)
	}
	if hist.Len() != 1 {
		t.Errorf("expected 1 event in history, got %d", hist.Len())
	}

	m.Update(progress.Event{SessionID: card.Controller().ID(), Kind: progress.KindDeferred})
	if hist.Len() != 2 {
		t.Errorf("history should follow live events, got %d", hist.Len())
	}

	m.Update(keyMsg("esc"))
	if a.Overlays.Len() != 0 {
		t.Error("esc should close the history")
	}
	if a.Stack.Current() != ScreenCard {
		t.Error("closing the history should leave the card")
	}
}

func TestApp_HistoryNotOnHome(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(ShowHistoryMsg{})
	if a.Overlays.Len() != 0 {
		t.Error("history should only open over a card")
	}
}

func TestApp_GoHomeClosesSessions(t *testing.T) {
	a, m := newTestApp(t)
	card := openCard(t, a, m, "six")
	m.Update(GoHomeMsg{})
	if a.Stack.Current() != ScreenHome {
		t.Errorf("expected home, got %s", a.Stack.Current())
	}
	if !card.Controller().Closed() {
		t.Error("GoHome should close the card session")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	_, m := newTestApp(t)
	m.Update(ShowCharacterPickerMsg{})
	_, cmd := m.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatal("ctrl+c: expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit even with an overlay open")
	}
}

func TestApp_CloseEndsOpenSessions(t *testing.T) {
	a, m := newTestApp(t)
	card := openCard(t, a, m, "one")
	a.Close()
	if !card.Controller().Closed() {
		t.Error("Close should end the running session")
	}
}
