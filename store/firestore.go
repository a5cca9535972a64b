package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore adapts a Firestore client to the Store contract. One board
// per document, all list/card mutations land as field updates on it.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *FirestoreStore) Set(ctx context.Context, collection, id string, data interface{}) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, data)
	return err
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id, field string, value interface{}) error {
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: value},
	})
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	// Firestore deletes are idempotent; a missing document is not an error.
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	return err
}

func (s *FirestoreStore) All(ctx context.Context, collection string) ([]*Document, error) {
	return s.collect(s.client.Collection(collection).Documents(ctx))
}

func (s *FirestoreStore) Query(ctx context.Context, collection, field string, value interface{}) ([]*Document, error) {
	return s.collect(s.client.Collection(collection).Where(field, "==", value).Documents(ctx))
}

func (s *FirestoreStore) collect(iter *firestore.DocumentIterator) ([]*Document, error) {
	defer iter.Stop()

	var docs []*Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, &Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

// UpdateFieldTx runs the read-modify-write inside a Firestore transaction,
// closing the race window the plain Get+Update pair leaves open.
func (s *FirestoreStore) UpdateFieldTx(ctx context.Context, collection, id, field string, fn func(doc *Document) (interface{}, error)) error {
	ref := s.client.Collection(collection).Doc(id)
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var doc *Document
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil {
			doc = &Document{ID: snap.Ref.ID, Data: snap.Data()}
		}

		value, err := fn(doc)
		if err != nil {
			return err
		}
		return tx.Update(ref, []firestore.Update{{Path: field, Value: value}})
	})
}
