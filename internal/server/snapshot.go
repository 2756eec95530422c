package server

// roomView is the lobby-update payload: the room with its internal fields
// (clock handle, submission set, rotation snapshot) stripped. Must be called
// with room.mu held.
func roomView(room *Room) map[string]any {
	players := make([]map[string]any, 0, len(room.Players))
	for _, p := range room.Players {
		players = append(players, map[string]any{
			"id":      p.ID,
			"name":    p.Name,
			"is_host": p.IsHost,
		})
	}

	view := map[string]any{
		"game_code": room.Code,
		"phase":     room.Phase,
		"round":     room.Round,
		"players":   players,
		"timer_settings": map[string]int{
			"drawing_seconds":    room.Timers.DrawingSeconds,
			"describing_seconds": room.Timers.DescribingSeconds,
		},
	}

	if room.Books != nil {
		books := make(map[string]any, len(room.Books))
		for id, book := range room.Books {
			pages := make([]map[string]any, 0, len(book.Pages))
			for _, page := range book.Pages {
				entry := map[string]any{
					"type":      page.Type,
					"author_id": page.AuthorID,
				}
				if page.Type == pageDrawing {
					entry["image_data"] = page.ImageData
				} else {
					entry["text"] = page.Text
				}
				pages = append(pages, entry)
			}
			books[id] = map[string]any{
				"owner_id":   book.OwnerID,
				"owner_name": book.OwnerName,
				"pages":      pages,
			}
		}
		view["books"] = books

		holders := make(map[string]string, len(room.BookHolder))
		for playerID, bookID := range room.BookHolder {
			holders[playerID] = bookID
		}
		view["book_holders"] = holders
	}

	return view
}
