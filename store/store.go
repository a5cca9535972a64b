// Package store abstracts the document store the board service persists to.
// The production implementation is Firestore; the memory driver backs local
// development and tests.
package store

import "context"

// Document is one record as the store returns it: the document id plus the
// raw field map. The board layer decodes Data itself rather than trusting
// the store to produce typed structs.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Store is the contract every driver satisfies. Get returns ErrNotFound for
// a missing document; every other failure is a transport error the caller
// wraps as unavailable. None of the methods are atomic with respect to each
// other: a Get followed by an Update is a plain read-modify-write with a
// race window in between.
type Store interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	Set(ctx context.Context, collection, id string, data interface{}) error
	Update(ctx context.Context, collection, id, field string, value interface{}) error
	Delete(ctx context.Context, collection, id string) error
	All(ctx context.Context, collection string) ([]*Document, error)
	Query(ctx context.Context, collection, field string, value interface{}) ([]*Document, error)
}

// Txer is implemented by drivers that can run a read-modify-write cycle
// atomically. fn receives the current document (nil when absent) and returns
// the new value for field; returning an error aborts without writing.
// Firestore backs this with RunTransaction.
type Txer interface {
	UpdateFieldTx(ctx context.Context, collection, id, field string, fn func(doc *Document) (interface{}, error)) error
}
