package services

import "trelloapp/model"

// findList returns a pointer into board.Lists for the first list with this
// title, or nil. Titles are unique per board in a healthy document, so first
// match only matters for corrupted data.
func findList(board *model.Board, title string) *model.List {
	for i := range board.Lists {
		if board.Lists[i].Title == title {
			return &board.Lists[i]
		}
	}
	return nil
}

// findCard returns a pointer into list.Cards for the first card with this
// title, or nil.
func findCard(list *model.List, title string) *model.Card {
	for i := range list.Cards {
		if list.Cards[i].Title == title {
			return &list.Cards[i]
		}
	}
	return nil
}

// findOrCreateList returns the list with this title, appending a new empty
// one to the end of board.Lists when absent. It never fails.
func findOrCreateList(board *model.Board, title string) *model.List {
	if list := findList(board, title); list != nil {
		return list
	}
	board.Lists = append(board.Lists, model.List{Title: title, Cards: []model.Card{}})
	return &board.Lists[len(board.Lists)-1]
}
