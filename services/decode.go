package services

import (
	"trelloapp/model"
	"trelloapp/store"
)

// documentToBoard decodes a raw board document. Fields that are missing or
// of the wrong type decode to their zero value; duplicate titles inside
// lists are kept as stored and left for the lookups to resolve first-match.
func documentToBoard(doc *store.Document) model.Board {
	board := model.Board{ID: doc.ID}
	board.Name, _ = doc.Data["name"].(string)
	board.Owner, _ = doc.Data["owner"].(string)
	board.Lists = decodeLists(doc.Data["lists"])
	return board
}

func decodeLists(v interface{}) []model.List {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	lists := make([]model.List, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		list := model.List{}
		list.Title, _ = fields["title"].(string)
		list.Cards = decodeCards(fields["cards"])
		lists = append(lists, list)
	}
	return lists
}

func decodeCards(v interface{}) []model.Card {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	cards := make([]model.Card, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		card := model.Card{}
		card.Title, _ = fields["title"].(string)
		card.Description, _ = fields["description"].(string)
		if users, ok := fields["assignedUsers"].([]interface{}); ok {
			card.AssignedUsers = make([]string, 0, len(users))
			for _, u := range users {
				if name, ok := u.(string); ok {
					card.AssignedUsers = append(card.AssignedUsers, name)
				}
			}
		}
		cards = append(cards, card)
	}
	return cards
}

// encodeLists produces the value written back to the lists field. Nil card
// slices and nil assignedUsers encode as empty arrays so the stored document
// never grows null holes.
func encodeLists(lists []model.List) []map[string]interface{} {
	encoded := make([]map[string]interface{}, 0, len(lists))
	for _, list := range lists {
		cards := make([]map[string]interface{}, 0, len(list.Cards))
		for _, card := range list.Cards {
			users := card.AssignedUsers
			if users == nil {
				users = []string{}
			}
			cards = append(cards, map[string]interface{}{
				"title":         card.Title,
				"description":   card.Description,
				"assignedUsers": users,
			})
		}
		encoded = append(encoded, map[string]interface{}{
			"title": list.Title,
			"cards": cards,
		})
	}
	return encoded
}
