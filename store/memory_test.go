package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	_, err := st.Get(ctx, "boards", "b1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Set(ctx, "boards", "b1", map[string]interface{}{
		"name": "Project",
	}))

	doc, err := st.Get(ctx, "boards", "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", doc.ID)
	assert.Equal(t, "Project", doc.Data["name"])
}

func TestMemoryStoreRejectsNonMapDocuments(t *testing.T) {
	st := NewMemoryStore()
	err := st.Set(context.Background(), "boards", "b1", "not a document")
	assert.Error(t, err)
}

func TestMemoryStoreUpdate(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, st.Update(ctx, "boards", "b1", "name", "x"), ErrNotFound)

	require.NoError(t, st.Set(ctx, "boards", "b1", map[string]interface{}{"name": "Project"}))
	require.NoError(t, st.Update(ctx, "boards", "b1", "name", "Renamed"))

	doc, err := st.Get(ctx, "boards", "b1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", doc.Data["name"])
}

func TestMemoryStoreDelete(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, "boards", "b1", map[string]interface{}{"name": "Project"}))
	require.NoError(t, st.Delete(ctx, "boards", "b1"))

	_, err := st.Get(ctx, "boards", "b1")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing document is fine
	assert.NoError(t, st.Delete(ctx, "boards", "b1"))
}

func TestMemoryStoreAllAndQuery(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, "boards", "b1", map[string]interface{}{"owner": "alice"}))
	require.NoError(t, st.Set(ctx, "boards", "b2", map[string]interface{}{"owner": "alice"}))
	require.NoError(t, st.Set(ctx, "boards", "b3", map[string]interface{}{"owner": "bob"}))

	all, err := st.All(ctx, "boards")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	alice, err := st.Query(ctx, "boards", "owner", "alice")
	require.NoError(t, err)
	assert.Len(t, alice, 2)

	nobody, err := st.Query(ctx, "boards", "owner", "nobody")
	require.NoError(t, err)
	assert.Empty(t, nobody)
}

func TestMemoryStoreCopiesDocuments(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	data := map[string]interface{}{
		"lists": []interface{}{
			map[string]interface{}{"title": "Todo"},
		},
	}
	require.NoError(t, st.Set(ctx, "boards", "b1", data))

	// mutating the caller's map after Set must not reach the store
	data["lists"] = nil

	doc, err := st.Get(ctx, "boards", "b1")
	require.NoError(t, err)
	require.NotNil(t, doc.Data["lists"])

	// mutating a fetched document must not reach the store either
	doc.Data["lists"].([]interface{})[0].(map[string]interface{})["title"] = "Hacked"

	doc, err = st.Get(ctx, "boards", "b1")
	require.NoError(t, err)
	lists := doc.Data["lists"].([]interface{})
	assert.Equal(t, "Todo", lists[0].(map[string]interface{})["title"])
}

func TestMemoryStoreUpdateFieldTx(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, "boards", "b1", map[string]interface{}{"count": 1}))

	err := st.UpdateFieldTx(ctx, "boards", "b1", "count", func(doc *Document) (interface{}, error) {
		require.NotNil(t, doc)
		return doc.Data["count"].(int) + 1, nil
	})
	require.NoError(t, err)

	doc, err := st.Get(ctx, "boards", "b1")
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Data["count"])
}

func TestMemoryStoreUpdateFieldTxAbort(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	abort := errors.New("abort")

	// absent document surfaces as a nil doc, and fn can refuse to write
	err := st.UpdateFieldTx(ctx, "boards", "b1", "count", func(doc *Document) (interface{}, error) {
		assert.Nil(t, doc)
		return nil, abort
	})
	assert.ErrorIs(t, err, abort)

	require.NoError(t, st.Set(ctx, "boards", "b1", map[string]interface{}{"count": 1}))
	err = st.UpdateFieldTx(ctx, "boards", "b1", "count", func(doc *Document) (interface{}, error) {
		return nil, abort
	})
	assert.ErrorIs(t, err, abort)

	doc, err := st.Get(ctx, "boards", "b1")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Data["count"])
}
