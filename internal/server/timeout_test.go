package server

import (
	"testing"

	"pass-the-page/internal/config"
)

func TestTimeoutSweepFillsMissingSubmissions(t *testing.T) {
	srv := New(config.Default())
	players := []string{"a", "b", "c"}
	room := setupRoom(t, srv, players, []string{"Ada", "Ben", "Cat"})
	srv.startGame("a", room.Code, TimerSettings{})
	submitAll(t, srv, room, players, pagePrompt, "prompt-")

	// Drawing phase, round 2: only a submits before the clock runs out.
	srv.submit("a", room.Code, heldBook(t, room, "a"), "drawing-a", pageDrawing)
	srv.sweepTimeout(room.Code, phaseDrawing, 2)

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.Phase != phaseDescribing || room.Round != 3 {
		t.Fatalf("sweep did not close the round: phase=%s round=%d", room.Phase, room.Round)
	}
	placeholders := 0
	for _, book := range room.Books {
		if len(book.Pages) != 2 {
			t.Fatalf("book %s has %d pages after sweep, want 2", book.OwnerID, len(book.Pages))
		}
		if book.Pages[1].ImageData == placeholderDrawing {
			placeholders++
		}
	}
	if placeholders != 2 {
		t.Fatalf("expected 2 placeholder drawings, got %d", placeholders)
	}
	if srv.clocks.active(room.Code) {
		t.Fatalf("timeout-driven completion must not re-arm the clock")
	}
}

func TestTimeoutSweepWithNoSubmissionsAtAll(t *testing.T) {
	srv := New(config.Default())
	players := []string{"a", "b"}
	room := setupRoom(t, srv, players, []string{"Ada", "Ben"})
	srv.startGame("a", room.Code, TimerSettings{})
	submitAll(t, srv, room, players, pagePrompt, "prompt-")

	srv.sweepTimeout(room.Code, phaseDrawing, 2)
	room.mu.Lock()
	defer room.mu.Unlock()
	if room.Phase != phaseReveal {
		t.Fatalf("expected reveal after total non-participation, got %s", room.Phase)
	}
	for id, book := range room.Books {
		if len(book.Pages) != 2 {
			t.Fatalf("book %s has %d pages, want 2", id, len(book.Pages))
		}
		if book.Pages[1].ImageData != placeholderDrawing {
			t.Fatalf("book %s missing placeholder drawing", id)
		}
	}
}

func TestStaleSweepIsIgnored(t *testing.T) {
	srv := New(config.Default())
	players := []string{"a", "b"}
	room := setupRoom(t, srv, players, []string{"Ada", "Ben"})
	srv.startGame("a", room.Code, TimerSettings{})
	submitAll(t, srv, room, players, pagePrompt, "prompt-")
	submitAll(t, srv, room, players, pageDrawing, "drawing-")

	if got := roomPhase(room); got != phaseReveal {
		t.Fatalf("expected reveal, got %s", got)
	}

	// A clock that lost the race to a real submission fires anyway; the
	// phase and round it captured no longer match, so nothing happens.
	srv.sweepTimeout(room.Code, phaseDrawing, 2)
	room.mu.Lock()
	defer room.mu.Unlock()
	for id, book := range room.Books {
		if len(book.Pages) != 2 {
			t.Fatalf("stale sweep mutated book %s", id)
		}
	}
}
