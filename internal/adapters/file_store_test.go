package adapters_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/tmsim/internal/adapters"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure FileStore implements ResultStore
var _ ports.ResultStore = (*adapters.FileStore)(nil)

func TestFileStore_Contract(t *testing.T) {
	ports.RunResultStoreContract(t, adapters.NewFileStore(t.TempDir()))
}

func TestFileStore_WritesTraceFile(t *testing.T) {
	dir := t.TempDir()
	store := adapters.NewFileStore(dir)
	ctx := context.Background()

	rec := &domain.Record{
		ID:     "add_3_5",
		Result: domain.Result{Operation: domain.OpAdd, X: 3, Y: 5, Value: 8},
		Trace:  "Trace for 3 + 5\n\nInterpreted result of this computation: 8",
	}
	require.NoError(t, store.Save(ctx, rec))

	data, err := os.ReadFile(filepath.Join(dir, "add_3_5"))
	require.NoError(t, err)
	assert.Equal(t, rec.Trace, string(data))
	assert.Equal(t, filepath.Join(dir, "add_3_5"), store.TracePath("add_3_5"))

	require.NoError(t, store.Delete(ctx, "add_3_5"))
	_, err = os.Stat(filepath.Join(dir, "add_3_5"))
	assert.True(t, os.IsNotExist(err), "trace file should be removed with the record")
}

func TestFileStore_ListIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store := adapters.NewFileStore(dir)
	ctx := context.Background()

	for _, id := range []string{"add_1_1", "mult_2_2"} {
		require.NoError(t, store.Save(ctx, &domain.Record{ID: id}))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "garbage.txt"), []byte("garbage"), 0644))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"add_1_1", "mult_2_2"}, ids)
}

func TestFileStore_ListMissingDirectory(t *testing.T) {
	store := adapters.NewFileStore(filepath.Join(t.TempDir(), "absent"))
	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileStore_RejectsBadIDs(t *testing.T) {
	store := adapters.NewFileStore(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, &domain.Record{ID: ""}))
	assert.Error(t, store.Save(ctx, &domain.Record{ID: "../escape"}))
	_, err := store.Load(ctx, "a/b")
	assert.Error(t, err)
}
