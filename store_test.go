package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), NewLogger())
	require.NoError(t, err)
	return store
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	store := newTestStore(t)

	def := []Record{{"id": "1", "title": "fallback"}}
	got := Load(store, "events", def)
	assert.Equal(t, def, got)

	// The load itself must not create the file.
	_, err := os.Stat(store.path("events"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := []Record{
		{"id": "1", "title": "Spring Fair", "date": "2024-05-01"},
		{"id": "2", "title": "Autumn Fair", "date": "2024-10-01"},
	}
	require.NoError(t, Save(store, "events", in))

	got := Load(store, "events", []Record{})
	assert.Equal(t, in, got)
}

func TestLoadMalformedContentReturnsDefault(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.path("events"), []byte("{not json"), 0644))

	got := Load(store, "events", []Record{})
	assert.Empty(t, got)
}

func TestLoadNullContentReturnsDefault(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.path("home"), []byte("null"), 0644))

	got := Load(store, "home", Record{"heroImage": ""})
	assert.Equal(t, Record{"heroImage": ""}, got)
}

func TestEnsureSeedsOnlyWhenAbsent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, Ensure(store, "events", []Record{}))
	assert.FileExists(t, store.path("events"))

	existing := []Record{{"id": "1", "title": "kept"}}
	require.NoError(t, Save(store, "events", existing))
	require.NoError(t, Ensure(store, "events", []Record{}))
	assert.Equal(t, existing, Load(store, "events", []Record{}))
}

func TestSavePrettyPrints(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, Save(store, "home", Record{"heroImage": "/uploads/x.png"}))

	b, err := os.ReadFile(filepath.Join(store.root, "home.json"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "\n  \"heroImage\"")
}
