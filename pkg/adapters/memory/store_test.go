package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/tmsim/pkg/adapters/memory"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.ResultStore = (*memory.Store)(nil)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunResultStoreContract(t, memory.NewStore())
}

func TestMemoryStore_Isolation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	rec := &domain.Record{
		ID:     "add_1_1",
		Result: domain.Result{Steps: []domain.Step{{State: "Start"}}},
	}
	require.NoError(t, store.Save(ctx, rec))

	rec.Result.Steps[0].State = "mutated"
	loaded, err := store.Load(ctx, "add_1_1")
	require.NoError(t, err)
	assert.Equal(t, "Start", loaded.Result.Steps[0].State)

	loaded.Trace = "changed"
	again, err := store.Load(ctx, "add_1_1")
	require.NoError(t, err)
	assert.Empty(t, again.Trace)
}
