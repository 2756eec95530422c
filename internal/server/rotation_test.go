package server

import "testing"

func identityHolders(order []string) map[string]string {
	holders := make(map[string]string, len(order))
	for _, id := range order {
		holders[id] = id
	}
	return holders
}

func TestRotateHoldersSingleStep(t *testing.T) {
	order := []string{"a", "b", "c"}
	next := rotateHolders(order, identityHolders(order))

	if next["b"] != "a" || next["c"] != "b" || next["a"] != "c" {
		t.Fatalf("unexpected rotation: %v", next)
	}
}

func TestRotationVisitsEveryPlayerOnce(t *testing.T) {
	order := []string{"a", "b", "c", "d", "e"}
	holders := identityHolders(order)

	// visited[book] records which players have held it.
	visited := make(map[string]map[string]struct{})
	record := func() {
		for player, book := range holders {
			if visited[book] == nil {
				visited[book] = make(map[string]struct{})
			}
			if _, again := visited[book][player]; again {
				t.Fatalf("player %s held book %s twice", player, book)
			}
			visited[book][player] = struct{}{}
		}
	}

	record()
	for i := 0; i < len(order)-1; i++ {
		holders = rotateHolders(order, holders)
		record()
	}

	for book, players := range visited {
		if len(players) != len(order) {
			t.Fatalf("book %s visited %d players, want %d", book, len(players), len(order))
		}
	}
}

func TestTaskForEachPhase(t *testing.T) {
	room := &Room{
		Code:  "ABCD",
		Phase: phasePrompt,
		Books: map[string]*Book{
			"a": {OwnerID: "a", OwnerName: "Ada"},
		},
		BookHolder: map[string]string{"a": "a"},
	}

	task, ok := taskFor(room, "a")
	if !ok || task.Type != pagePrompt || task.BookOwner != "Ada" {
		t.Fatalf("unexpected prompt task: %+v ok=%t", task, ok)
	}

	room.Books["a"].Pages = append(room.Books["a"].Pages, Page{Type: pagePrompt, AuthorID: "a", Text: "a cat in a hat"})
	room.Phase = phaseDrawing
	task, ok = taskFor(room, "a")
	if !ok || task.Type != pageDrawing || task.Prompt != "a cat in a hat" {
		t.Fatalf("unexpected drawing task: %+v ok=%t", task, ok)
	}

	room.Books["a"].Pages = append(room.Books["a"].Pages, Page{Type: pageDrawing, AuthorID: "a", ImageData: "data:image/png;base64,xyz"})
	room.Phase = phaseDescribing
	task, ok = taskFor(room, "a")
	if !ok || task.Type != pageDescribing || task.Drawing != "data:image/png;base64,xyz" {
		t.Fatalf("unexpected describing task: %+v ok=%t", task, ok)
	}

	if _, ok := taskFor(room, "nobody"); ok {
		t.Fatalf("expected no task for a player without a book")
	}
}
