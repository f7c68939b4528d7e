package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate())
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_MissingRowLoadsEmpty(t *testing.T) {
	store := newTestStore(t)

	var docs []doc
	require.NoError(t, store.Load("posts", &docs))
	assert.Empty(t, docs)
}

func TestStore_ReplaceThenLoad(t *testing.T) {
	store := newTestStore(t)

	want := []doc{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	require.NoError(t, store.Replace("posts", want))

	var got []doc
	require.NoError(t, store.Load("posts", &got))
	assert.Equal(t, want, got)
}

func TestStore_ReplaceOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Replace("posts", []doc{{ID: 1, Name: "a"}}))
	require.NoError(t, store.Replace("posts", []doc{{ID: 2, Name: "b"}}))

	var got []doc
	require.NoError(t, store.Load("posts", &got))
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestStore_CollectionsAreIndependent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Replace("posts", []doc{{ID: 1, Name: "post"}}))
	require.NoError(t, store.Replace("users", []doc{{ID: 1, Name: "user"}}))

	var posts, users []doc
	require.NoError(t, store.Load("posts", &posts))
	require.NoError(t, store.Load("users", &users))
	assert.Equal(t, "post", posts[0].Name)
	assert.Equal(t, "user", users[0].Name)
}
