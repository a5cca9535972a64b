package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trelloapp/model"
)

func TestFindList(t *testing.T) {
	board := &model.Board{Lists: []model.List{
		{Title: "Todo"},
		{Title: "Done"},
	}}

	list := findList(board, "Done")
	require.NotNil(t, list)
	assert.Equal(t, "Done", list.Title)

	assert.Nil(t, findList(board, "Nope"))
	assert.Nil(t, findList(&model.Board{}, "Todo"))
}

func TestFindListFirstMatchWins(t *testing.T) {
	// duplicate titles should not exist, but a corrupted document still
	// resolves deterministically
	board := &model.Board{Lists: []model.List{
		{Title: "Todo", Cards: []model.Card{{Title: "first"}}},
		{Title: "Todo", Cards: []model.Card{{Title: "second"}}},
	}}

	list := findList(board, "Todo")
	require.NotNil(t, list)
	require.Len(t, list.Cards, 1)
	assert.Equal(t, "first", list.Cards[0].Title)
}

func TestFindCard(t *testing.T) {
	list := &model.List{Cards: []model.Card{
		{Title: "Fix bug"},
		{Title: "Write docs"},
	}}

	card := findCard(list, "Write docs")
	require.NotNil(t, card)
	assert.Equal(t, "Write docs", card.Title)

	assert.Nil(t, findCard(list, "Nope"))
	assert.Nil(t, findCard(&model.List{}, "Fix bug"))
}

func TestFindOrCreateList(t *testing.T) {
	board := &model.Board{Lists: []model.List{{Title: "Todo"}}}

	existing := findOrCreateList(board, "Todo")
	require.NotNil(t, existing)
	assert.Len(t, board.Lists, 1)

	created := findOrCreateList(board, "Done")
	require.NotNil(t, created)
	assert.Equal(t, "Done", created.Title)
	assert.Equal(t, []model.Card{}, created.Cards)
	require.Len(t, board.Lists, 2)
	// appended to the end, order preserved
	assert.Equal(t, "Done", board.Lists[1].Title)
}

func TestFindOrCreateListReturnsMutablePointer(t *testing.T) {
	board := &model.Board{}

	list := findOrCreateList(board, "Todo")
	list.Cards = append(list.Cards, model.Card{Title: "Fix bug"})

	require.Len(t, board.Lists, 1)
	require.Len(t, board.Lists[0].Cards, 1)
	assert.Equal(t, "Fix bug", board.Lists[0].Cards[0].Title)
}
