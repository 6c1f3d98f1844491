package ui

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"offscreen/internal/deck"
	"offscreen/internal/pool"
	"offscreen/internal/progress"
	"offscreen/internal/session"
)

func testCatalog(t *testing.T) *pool.Catalog {
	t.Helper()
	c, err := pool.NewCatalog([]pool.Category{
		{Key: "six", Title: "Six things", Tasks: []string{"A", "B", "C", "D", "E", "F"}},
		{Key: "one", Tasks: []string{"X"}},
		{Key: "none"},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func newTestCard(t *testing.T, key string) *CardView {
	t.Helper()
	return NewCardView(context.Background(), "", session.Options{
		ID:       "card-" + key,
		Category: key,
		Pools:    testCatalog(t),
		Limit:    5,
		Shuffler: rand.New(rand.NewSource(3)),
		Clock:    session.NewFakeClock(time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)),
	}, time.Millisecond)
}

func TestCardView_FlipIsTwoPhase(t *testing.T) {
	card := newTestCard(t, "six")
	id := card.Controller().ID()
	shown := card.Controller().Snapshot().Current

	_, cmd := card.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter: expected a tick command")
	}
	if !card.Flipping() {
		t.Error("expected flip in progress after enter")
	}
	if got := card.Controller().Snapshot().Completed; got != 0 {
		t.Errorf("before midpoint: expected completed 0, got %d", got)
	}
	if !strings.Contains(card.View(), shown) {
		t.Errorf("hiding face should still show %q", shown)
	}

	card.Update(flipMidMsg{sessionID: id})
	if got := card.Controller().Snapshot().Completed; got != 1 {
		t.Errorf("after midpoint: expected completed 1, got %d", got)
	}
	if !card.Controller().InFlight() {
		t.Error("guard should be held until the flip ends")
	}

	_, cmd = card.Update(flipEndMsg{sessionID: id})
	if cmd != nil {
		t.Error("flip end below quota should not navigate")
	}
	if card.Flipping() || card.Controller().InFlight() {
		t.Error("expected flip finished")
	}
}

func TestCardView_InputDuringFlipIgnored(t *testing.T) {
	card := newTestCard(t, "six")
	id := card.Controller().ID()
	before := card.Controller().Snapshot()

	card.Update(keyMsg("d"))
	_, cmd := card.Update(keyMsg("d"))
	if cmd != nil {
		t.Error("second done during flip should be ignored")
	}
	card.Update(keyMsg("l"))
	card.Update(flipMidMsg{sessionID: id})
	card.Update(flipMidMsg{sessionID: id})
	card.Update(flipEndMsg{sessionID: id})

	after := card.Controller().Snapshot()
	if after.Completed != 1 {
		t.Errorf("expected exactly one completion, got %d", after.Completed)
	}
	if len(after.Tasks) != len(before.Tasks)-1 {
		t.Errorf("expected %d tasks, got %d", len(before.Tasks)-1, len(after.Tasks))
	}
}

func TestCardView_Defer(t *testing.T) {
	card := newTestCard(t, "six")
	before := card.Controller().Snapshot()

	card.Update(keyMsg("tab"))
	after := card.Controller().Snapshot()
	if after.Completed != 0 {
		t.Errorf("defer: expected completed 0, got %d", after.Completed)
	}
	if after.Tasks[len(after.Tasks)-1] != before.Current {
		t.Errorf("defer: expected %q at the end, got %v", before.Current, after.Tasks)
	}
	if card.Flipping() {
		t.Error("defer should not flip")
	}
}

func TestCardView_StaleTicksIgnored(t *testing.T) {
	card := newTestCard(t, "six")
	card.Update(flipMidMsg{sessionID: card.Controller().ID()})
	card.Update(keyMsg("enter"))
	card.Update(flipMidMsg{sessionID: "other"})
	if got := card.Controller().Snapshot().Completed; got != 0 {
		t.Errorf("tick for another session: expected completed 0, got %d", got)
	}
}

func TestCardView_QuotaNavigatesToCelebration(t *testing.T) {
	card := newTestCard(t, "six")
	id := card.Controller().ID()

	var last any
	for i := 0; i < 5; i++ {
		card.Update(keyMsg("enter"))
		card.Update(flipMidMsg{sessionID: id})
		_, cmd := card.Update(flipEndMsg{sessionID: id})
		if i < 4 && cmd != nil {
			t.Fatalf("flip %d: unexpected navigation", i+1)
		}
		if cmd != nil {
			last = cmd()
		}
	}

	msg, ok := last.(ShowCelebrationMsg)
	if !ok {
		t.Fatalf("expected ShowCelebrationMsg, got %T", last)
	}
	if msg.Summary.Completed != 5 || msg.Summary.Outcome != deck.OutcomeQuotaMet {
		t.Errorf("unexpected summary %s", msg.Summary)
	}
	if !card.Controller().Closed() {
		t.Error("session should be closed once the quota is met")
	}
}

func TestCardView_EmptyStates(t *testing.T) {
	none := newTestCard(t, "none")
	if out := none.View(); !strings.Contains(out, "No tasks here yet") {
		t.Errorf("empty pool: unexpected view %q", out)
	}
	if _, cmd := none.Update(keyMsg("enter")); cmd != nil {
		t.Error("done on an empty deck should do nothing")
	}

	one := newTestCard(t, "one")
	id := one.Controller().ID()
	one.Update(keyMsg("enter"))
	one.Update(flipMidMsg{sessionID: id})
	_, cmd := one.Update(flipEndMsg{sessionID: id})
	if cmd != nil {
		t.Error("running out below quota should not celebrate")
	}
	out := one.View()
	if !strings.Contains(out, "every card") || !strings.Contains(out, "1 of 5") {
		t.Errorf("ran out: unexpected view %q", out)
	}
}

func TestCardView_EventsFeedHistory(t *testing.T) {
	card := newTestCard(t, "six")
	msg := card.Init()()
	ev, ok := msg.(progress.Event)
	if !ok {
		t.Fatalf("Init: expected progress.Event, got %T", msg)
	}
	if ev.Kind != progress.KindStarted {
		t.Errorf("expected started event, got %s", ev.Kind)
	}

	card.Update(ev)
	card.Update(progress.Event{SessionID: "other", Kind: progress.KindCompleted})
	if got := len(card.History()); got != 1 {
		t.Errorf("expected 1 history entry, got %d", got)
	}
}

func TestCardView_EscClosesAndClosedStreamEnds(t *testing.T) {
	card := newTestCard(t, "six")
	_, cmd := card.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc: expected a command")
	}
	if _, ok := cmd().(CloseCardMsg); !ok {
		t.Error("esc: expected CloseCardMsg")
	}

	sum := card.Close()
	card.Close()
	if sum.Outcome != deck.OutcomeNone {
		t.Errorf("expected outcome none, got %s", sum.Outcome)
	}
	if card.Init() != nil {
		t.Error("closed card should not wait for events")
	}
}
