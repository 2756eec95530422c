package server

import (
	"testing"

	"pass-the-page/internal/config"
)

func TestHostReassignedOnDeparture(t *testing.T) {
	srv := New(config.Default())
	room := setupRoom(t, srv, []string{"a", "b", "c"}, []string{"Ada", "Ben", "Cat"})

	srv.disconnect("a")
	room.mu.Lock()
	if len(room.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(room.Players))
	}
	hosts := 0
	for _, p := range room.Players {
		if p.IsHost {
			hosts++
			if p.ID != "b" {
				t.Fatalf("host moved to %s, want first remaining player b", p.ID)
			}
		}
	}
	room.mu.Unlock()
	if hosts != 1 {
		t.Fatalf("expected exactly one host, got %d", hosts)
	}
}

func TestRoomDeletedWhenEmpty(t *testing.T) {
	srv := New(config.Default())
	room := setupRoom(t, srv, []string{"a", "b"}, []string{"Ada", "Ben"})
	code := room.Code

	srv.disconnect("a")
	srv.disconnect("b")
	if _, ok := srv.store.Get(code); ok {
		t.Fatalf("empty room was not deleted")
	}
}

func TestDepartureForcesPlaceholderAndClosesRound(t *testing.T) {
	srv := New(config.Default())
	players := []string{"a", "b", "c"}
	room := setupRoom(t, srv, players, []string{"Ada", "Ben", "Cat"})
	srv.startGame("a", room.Code, TimerSettings{})

	srv.submit("a", room.Code, heldBook(t, room, "a"), "prompt-a", pagePrompt)
	srv.submit("b", room.Code, heldBook(t, room, "b"), "prompt-b", pagePrompt)
	srv.disconnect("c")

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.Phase != phaseDrawing {
		t.Fatalf("round did not close after departure, phase=%s", room.Phase)
	}
	book := room.Books["c"]
	if len(book.Pages) != 1 || book.Pages[0].Text != placeholderText {
		t.Fatalf("departed player's book missing placeholder page: %+v", book.Pages)
	}
	if len(room.TurnOrder) != 3 {
		t.Fatalf("turn order snapshot changed on departure: %v", room.TurnOrder)
	}
	if len(room.Players) != 2 {
		t.Fatalf("expected 2 live players, got %d", len(room.Players))
	}
}

func TestDepartedPlayerAutoFilledInLaterRounds(t *testing.T) {
	srv := New(config.Default())
	players := []string{"a", "b", "c"}
	room := setupRoom(t, srv, players, []string{"Ada", "Ben", "Cat"})
	srv.startGame("a", room.Code, TimerSettings{})

	submitAll(t, srv, room, players, pagePrompt, "prompt-")
	srv.disconnect("c")

	// c had not drawn yet; the departure forces a blank drawing on the
	// book c was holding.
	room.mu.Lock()
	cBook := room.BookHolder["c"]
	pages := len(room.Books[cBook].Pages)
	room.mu.Unlock()
	if pages != 2 {
		t.Fatalf("expected forced drawing on book %s, got %d pages", cBook, pages)
	}

	srv.submit("a", room.Code, heldBook(t, room, "a"), "drawing-a", pageDrawing)
	srv.submit("b", room.Code, heldBook(t, room, "b"), "drawing-b", pageDrawing)
	if got := roomPhase(room); got != phaseDescribing {
		t.Fatalf("expected describing after drawings, got %s", got)
	}

	srv.submit("a", room.Code, heldBook(t, room, "a"), "desc-a", pageDescribing)
	srv.submit("b", room.Code, heldBook(t, room, "b"), "desc-b", pageDescribing)
	room.mu.Lock()
	defer room.mu.Unlock()
	if room.Phase != phaseReveal {
		t.Fatalf("expected reveal, got %s", room.Phase)
	}
	for id, book := range room.Books {
		if len(book.Pages) != 3 {
			t.Fatalf("book %s has %d pages, want 3", id, len(book.Pages))
		}
	}
}
