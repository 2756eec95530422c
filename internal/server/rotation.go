package server

// rotateHolders advances every book to the next player in the fixed turn
// order: the player at index i+1 takes over the book the player at index i
// was holding. One call per phase transition, so each book makes a single
// full circuit before the reveal.
func rotateHolders(order []string, current map[string]string) map[string]string {
	next := make(map[string]string, len(order))
	for i, playerID := range order {
		nextPlayer := order[(i+1)%len(order)]
		next[nextPlayer] = current[playerID]
	}
	return next
}

// taskFor projects the instruction for one player out of their currently
// assigned book and the room phase. Must be called with room.mu held.
func taskFor(room *Room, playerID string) (Task, bool) {
	bookID, ok := room.BookHolder[playerID]
	if !ok {
		return Task{}, false
	}
	book, ok := room.Books[bookID]
	if !ok {
		return Task{}, false
	}

	switch room.Phase {
	case phasePrompt:
		return Task{Type: pagePrompt, BookID: bookID, BookOwner: book.OwnerName}, true
	case phaseDrawing:
		if len(book.Pages) == 0 {
			return Task{}, false
		}
		return Task{Type: pageDrawing, BookID: bookID, Prompt: book.Pages[len(book.Pages)-1].Text}, true
	case phaseDescribing:
		if len(book.Pages) == 0 {
			return Task{}, false
		}
		return Task{Type: pageDescribing, BookID: bookID, Drawing: book.Pages[len(book.Pages)-1].ImageData}, true
	}
	return Task{}, false
}

// assignTasks builds one task per player in the snapshot order and records
// them on the effect set for delivery after the lock is released.
func assignTasks(room *Room, eff *effects) {
	for _, playerID := range room.TurnOrder {
		if task, ok := taskFor(room, playerID); ok {
			eff.task(playerID, task)
		}
	}
}
