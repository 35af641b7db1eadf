package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krfl/sidequest/internal/model"
	"github.com/krfl/sidequest/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(filepath.Join(t.TempDir(), "sidequest", "sidequest.json"))
}

func TestLoadMissingFileCreatesEmptyStore(t *testing.T) {
	st := testStore(t)

	entries, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)

	// The file itself must exist after the first load.
	_, err = os.Stat(st.Path())
	assert.NoError(t, err)

	// A second load of the now-empty file is still an empty store.
	entries, err = st.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := testStore(t)

	saved := []model.Entry{
		model.New(time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC), "buy milk"),
		model.New(time.Date(2024, 1, 5, 18, 0, 59, 0, time.UTC), "walk dog"),
		model.New(time.Date(2024, 1, 6, 9, 15, 0, 0, time.UTC), "stretch"),
	}
	require.NoError(t, st.Save(saved))

	loaded, err := st.Load()
	require.NoError(t, err)
	require.Len(t, loaded, len(saved))
	for i := range saved {
		assert.True(t, loaded[i].Timestamp.Equal(saved[i].Timestamp),
			"entry %d timestamp = %v, want %v", i, loaded[i].Timestamp, saved[i].Timestamp)
		assert.Equal(t, saved[i].Message, loaded[i].Message)
	}
}

func TestLoadDoesNotTruncate(t *testing.T) {
	st := testStore(t)
	require.NoError(t, st.Save([]model.Entry{model.New(time.Unix(100, 0), "keep me")}))

	for i := 0; i < 3; i++ {
		entries, err := st.Load()
		require.NoError(t, err)
		require.Len(t, entries, 1)
	}
}

func TestSaveRewritesWholeFile(t *testing.T) {
	st := testStore(t)
	require.NoError(t, st.Save([]model.Entry{
		model.New(time.Unix(100, 0), "one"),
		model.New(time.Unix(200, 0), "two"),
		model.New(time.Unix(300, 0), "three"),
	}))
	require.NoError(t, st.Save([]model.Entry{model.New(time.Unix(400, 0), "only")}))

	entries, err := st.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "only", entries[0].Message)
}

func TestLoadCorruptStoreReturnsEmpty(t *testing.T) {
	st := testStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(st.Path()), 0o700))
	require.NoError(t, os.WriteFile(st.Path(), []byte("{definitely not json"), 0o600))

	entries, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)

	// The unreadable content is preserved next to the store.
	backup, err := os.ReadFile(st.Path() + ".corrupt")
	require.NoError(t, err)
	assert.Equal(t, "{definitely not json", string(backup))

	// A save after corruption starts from scratch and round-trips.
	require.NoError(t, st.Save([]model.Entry{model.New(time.Unix(500, 0), "fresh start")}))
	entries, err = st.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fresh start", entries[0].Message)
}

func TestLoadErrorCarriesOp(t *testing.T) {
	// Parent "directory" is a regular file, so the store cannot be created.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	st := storage.New(filepath.Join(blocker, "sidequest.json"))
	_, err := st.Load()
	require.Error(t, err)

	var storeErr *storage.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "open", storeErr.Op)
}
