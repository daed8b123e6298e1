package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore implementation
// adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	suffix := time.Now().Format("20060102150405")
	id := "add_3_5_" + suffix

	newRecord := func(id string) *domain.Record {
		return &domain.Record{
			ID: id,
			Result: domain.Result{
				Operation: domain.OpAdd,
				X:         3,
				Y:         5,
				Value:     8,
				Tape:      "B0001B",
				StepCount: 27,
			},
			Trace: "Trace for 3 + 5\n",
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		rec := newRecord(id)
		err := store.Save(ctx, rec)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, rec.ID, loaded.ID)
		assert.Equal(t, rec.Result, loaded.Result)
		assert.Equal(t, rec.Trace, loaded.Trace)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		rec := newRecord(id)
		rec.Trace = "second run\n"
		require.NoError(t, store.Save(ctx, rec))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "second run\n", loaded.Trace)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+suffix)
		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newRecord(id)))

		err := store.Delete(ctx, id)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrRecordNotFound, "Load after Delete should return ErrRecordNotFound")

		assert.NoError(t, store.Delete(ctx, id), "Delete of a missing record is a no-op")
	})

	t.Run("List", func(t *testing.T) {
		id1 := "mult_4_6_" + suffix
		id2 := "exp_2_5_" + suffix
		require.NoError(t, store.Save(ctx, newRecord(id1)))
		require.NoError(t, store.Save(ctx, newRecord(id2)))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)

		require.NoError(t, store.Delete(ctx, id1))
		ids, err = store.List(ctx)
		require.NoError(t, err)
		assert.NotContains(t, ids, id1)
	})
}
