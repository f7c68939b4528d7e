package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestStore_MissingFileLoadsEmpty(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	var docs []doc
	require.NoError(t, store.Load("posts", &docs))
	assert.Empty(t, docs)
}

func TestStore_ReplaceThenLoad(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	want := []doc{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	require.NoError(t, store.Replace("posts", want))

	var got []doc
	require.NoError(t, store.Load("posts", &got))
	assert.Equal(t, want, got)
}

func TestStore_FileLayout(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Replace("users", []doc{{ID: 1, Name: "alice"}}))

	// The file wraps the array in an object keyed by the collection name,
	// the layout the frontend seed data uses.
	data, err := os.ReadFile(filepath.Join(dir, "db.users.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"users":[{"id":1,"name":"alice"}]}`, string(data))
}

func TestStore_CorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "db.posts.json"), []byte("not json"), 0644))

	var docs []doc
	assert.Error(t, store.Load("posts", &docs))
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "db")
	_, err := New(dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
