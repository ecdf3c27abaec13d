package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_ValidationErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		dbPath string
	}{
		{"empty_path", ""},
		{"whitespace_path", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(ctx, PartitionLocal, tt.dbPath)
			assert.Nil(t, store)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "empty partition path")
		})
	}
}

func TestOpen_FilePermissions(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(ctx, PartitionLocal, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStore_GetAbsentKey(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	value, found, err := store.Get(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Set(ctx, "settings", []byte(`{"theme":"dark"}`)))

	value, found, err := store.Get(ctx, "settings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"theme":"dark"}`, string(value))
}

func TestStore_SetReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("first")))
	require.NoError(t, store.Set(ctx, "k", []byte("second")))

	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", string(value))
}

func TestStore_SetEmptyKey(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	assert.Error(t, store.Set(ctx, "", []byte("v")))
	assert.Error(t, store.Set(ctx, "  ", []byte("v")))
}

func TestStore_RemoveMakesKeyAbsent(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Remove(ctx, "k"))

	_, found, err := store.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, found)

	// Removing an absent key is fine
	assert.NoError(t, store.Remove(ctx, "k"))
}

func TestStore_Keys(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Set(ctx, "b", []byte("2")))
	require.NoError(t, store.Set(ctx, "a", []byte("1")))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestStore_SubscribeAndCancel(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	var changes []Change
	cancel := store.Subscribe(func(c Change) { changes = append(changes, c) })

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Remove(ctx, "k"))

	require.Len(t, changes, 2)
	assert.Equal(t, Change{Partition: PartitionLocal, Key: "k"}, changes[0])
	assert.Equal(t, Change{Partition: PartitionLocal, Key: "k", Removed: true}, changes[1])

	cancel()
	require.NoError(t, store.Set(ctx, "k", []byte("v2")))
	assert.Len(t, changes, 2)
}

func TestOpenPartitions(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	parts, err := OpenPartitions(ctx, dir)
	require.NoError(t, err)
	defer func() { _ = parts.Close() }()

	assert.Equal(t, PartitionSynced, parts.Synced.Name())
	assert.Equal(t, PartitionLocal, parts.Local.Name())
	assert.FileExists(t, filepath.Join(dir, "synced.db"))
	assert.FileExists(t, filepath.Join(dir, "local.db"))

	// The two partitions are isolated
	require.NoError(t, parts.Synced.Set(ctx, "k", []byte("synced")))
	_, found, err := parts.Local.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, found)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), PartitionLocal, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}
