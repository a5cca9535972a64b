// Package services implements the board mutation engine. Every list/card
// operation is a fetch of the whole board document, an in-memory mutation of
// the decoded lists, and a write-back of the lists field. Without atomic
// writes enabled the two store calls are not atomic, so concurrent mutations
// on one board can lose updates; see NewBoardService.
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"trelloapp/apperr"
	"trelloapp/model"
	"trelloapp/store"
)

const (
	boardCollection = "boards"
	ownerField      = "owner"
	listsField      = "lists"
)

type BoardService struct {
	store  store.Store
	atomic bool
}

// NewBoardService wires the engine to a document store. With atomicWrites
// set and a store that supports transactions, each mutation's
// read-modify-write runs atomically instead of as two independent calls;
// left off, the engine keeps the original last-writer-wins behavior.
func NewBoardService(st store.Store, atomicWrites bool) *BoardService {
	return &BoardService{store: st, atomic: atomicWrites}
}

// GetAllBoards returns every board in the collection.
func (s *BoardService) GetAllBoards(ctx context.Context) ([]model.Board, error) {
	docs, err := s.store.All(ctx, boardCollection)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "fetching boards", err)
	}
	boards := make([]model.Board, 0, len(docs))
	for _, doc := range docs {
		boards = append(boards, documentToBoard(doc))
	}
	return boards, nil
}

// GetBoardByID returns one board or NotFound.
func (s *BoardService) GetBoardByID(ctx context.Context, id string) (model.Board, error) {
	if id == "" {
		return model.Board{}, apperr.New(apperr.BadRequest, "board id is required")
	}
	doc, err := s.store.Get(ctx, boardCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Board{}, apperr.New(apperr.NotFound, "board not found")
		}
		return model.Board{}, apperr.Wrap(apperr.Unavailable, "fetching board "+id, err)
	}
	return documentToBoard(doc), nil
}

// GetBoardsByOwner returns the boards whose owner field matches ownerID.
func (s *BoardService) GetBoardsByOwner(ctx context.Context, ownerID string) ([]model.Board, error) {
	if ownerID == "" {
		return nil, apperr.New(apperr.BadRequest, "owner id is required")
	}
	docs, err := s.store.Query(ctx, boardCollection, ownerField, ownerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "fetching boards for owner "+ownerID, err)
	}
	boards := make([]model.Board, 0, len(docs))
	for _, doc := range docs {
		boards = append(boards, documentToBoard(doc))
	}
	return boards, nil
}

// CreateBoard persists a new board with an empty lists array and returns it
// with its generated id. The id never changes afterwards.
func (s *BoardService) CreateBoard(ctx context.Context, name, owner string) (model.Board, error) {
	board := model.Board{
		ID:    uuid.New().String(),
		Name:  name,
		Owner: owner,
		Lists: []model.List{},
	}
	if err := s.store.Set(ctx, boardCollection, board.ID, boardToFields(board)); err != nil {
		return model.Board{}, apperr.Wrap(apperr.Unavailable, "creating board", err)
	}
	return board, nil
}

// UpdateBoard replaces the whole board document.
func (s *BoardService) UpdateBoard(ctx context.Context, board model.Board) (model.Board, error) {
	if board.ID == "" {
		return model.Board{}, apperr.New(apperr.BadRequest, "board id is required")
	}
	if err := s.store.Set(ctx, boardCollection, board.ID, boardToFields(board)); err != nil {
		return model.Board{}, apperr.Wrap(apperr.Unavailable, "updating board "+board.ID, err)
	}
	return board, nil
}

// DeleteBoard removes the board document. Deleting an absent board is not an
// error.
func (s *BoardService) DeleteBoard(ctx context.Context, id string) error {
	if id == "" {
		return apperr.New(apperr.BadRequest, "board id is required")
	}
	if err := s.store.Delete(ctx, boardCollection, id); err != nil {
		return apperr.Wrap(apperr.Unavailable, "deleting board "+id, err)
	}
	return nil
}

// AddList appends a new empty list to the board. A list with the same title
// already on the board is a Conflict; AddList never merges.
func (s *BoardService) AddList(ctx context.Context, boardID, title string) (model.List, error) {
	newList := model.List{Title: title, Cards: []model.Card{}}
	err := s.mutateLists(ctx, boardID, func(board *model.Board) (bool, error) {
		if findList(board, title) != nil {
			return false, apperr.New(apperr.Conflict, "a list with this title already exists")
		}
		board.Lists = append(board.Lists, newList)
		return true, nil
	})
	if err != nil {
		return model.List{}, err
	}
	return newList, nil
}

// DeleteList removes every list with this title. An absent title is a silent
// no-op: nothing is written and no error is returned.
func (s *BoardService) DeleteList(ctx context.Context, boardID, title string) error {
	return s.mutateLists(ctx, boardID, func(board *model.Board) (bool, error) {
		kept := make([]model.List, 0, len(board.Lists))
		for _, list := range board.Lists {
			if list.Title != title {
				kept = append(kept, list)
			}
		}
		if len(kept) == len(board.Lists) {
			return false, nil
		}
		board.Lists = kept
		return true, nil
	})
}

// AddCard appends a card to the named list, creating the list when it does
// not exist yet. Card titles are not checked for duplicates here; DeleteCard
// relies on the caller keeping them unique.
func (s *BoardService) AddCard(ctx context.Context, boardID, listTitle string, card model.Card) (model.Card, error) {
	if card.AssignedUsers == nil {
		card.AssignedUsers = []string{}
	}
	err := s.mutateLists(ctx, boardID, func(board *model.Board) (bool, error) {
		list := findOrCreateList(board, listTitle)
		list.Cards = append(list.Cards, card)
		return true, nil
	})
	if err != nil {
		return model.Card{}, err
	}
	return card, nil
}

// DeleteCard removes the card with this title from the named list. Unlike
// DeleteList, a missing list or card is reported as NotFound.
func (s *BoardService) DeleteCard(ctx context.Context, boardID, listTitle, cardTitle string) error {
	return s.mutateLists(ctx, boardID, func(board *model.Board) (bool, error) {
		list := findList(board, listTitle)
		if list == nil {
			return false, apperr.New(apperr.NotFound, "list not found")
		}
		kept := make([]model.Card, 0, len(list.Cards))
		for _, card := range list.Cards {
			if card.Title != cardTitle {
				kept = append(kept, card)
			}
		}
		if len(kept) == len(list.Cards) {
			return false, apperr.New(apperr.NotFound, "card not found")
		}
		list.Cards = kept
		return true, nil
	})
}

// errNoWrite aborts a transactional mutation that decided nothing changed.
var errNoWrite = errors.New("no write needed")

// mutateLists is the read-modify-write cycle shared by all list and card
// mutations: fetch the board, decode, let fn mutate the aggregate in place,
// and write the lists field back when fn reports a change. fn returning an
// error aborts without writing.
func (s *BoardService) mutateLists(ctx context.Context, boardID string, fn func(board *model.Board) (bool, error)) error {
	if s.atomic {
		if tx, ok := s.store.(store.Txer); ok {
			return s.mutateListsTx(ctx, tx, boardID, fn)
		}
	}

	doc, err := s.store.Get(ctx, boardCollection, boardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.New(apperr.NotFound, "board not found")
		}
		return apperr.Wrap(apperr.Unavailable, "fetching board "+boardID, err)
	}

	board := documentToBoard(doc)
	write, err := fn(&board)
	if err != nil || !write {
		return err
	}
	// The window between the Get above and this Update is the documented
	// lost-update race; atomic writes close it.
	if err := s.store.Update(ctx, boardCollection, boardID, listsField, encodeLists(board.Lists)); err != nil {
		return apperr.Wrap(apperr.Unavailable, "updating lists on board "+boardID, err)
	}
	return nil
}

func (s *BoardService) mutateListsTx(ctx context.Context, tx store.Txer, boardID string, fn func(board *model.Board) (bool, error)) error {
	err := tx.UpdateFieldTx(ctx, boardCollection, boardID, listsField, func(doc *store.Document) (interface{}, error) {
		if doc == nil {
			return nil, apperr.New(apperr.NotFound, "board not found")
		}
		board := documentToBoard(doc)
		write, err := fn(&board)
		if err != nil {
			return nil, err
		}
		if !write {
			return nil, errNoWrite
		}
		return encodeLists(board.Lists), nil
	})
	if err == nil || errors.Is(err, errNoWrite) {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Wrap(apperr.Unavailable, "updating lists on board "+boardID, err)
}

func boardToFields(board model.Board) map[string]interface{} {
	return map[string]interface{}{
		"name":     board.Name,
		ownerField: board.Owner,
		listsField: encodeLists(board.Lists),
	}
}
