package memory

import (
	"context"
	"sync"
	"testing"

	"pet-api/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPetRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()

	rex, err := repo.Create(ctx, "Rex", "dog")
	require.NoError(t, err)
	assert.Equal(t, pets.Pet{ID: 1, Name: "Rex", Species: "dog"}, rex)

	got, err := repo.GetByID(ctx, rex.ID)
	require.NoError(t, err)
	assert.Equal(t, rex, got)

	updated, err := repo.Update(ctx, rex.ID, pets.Patch{Species: strPtr("wolf")})
	require.NoError(t, err)
	assert.Equal(t, pets.Pet{ID: 1, Name: "Rex", Species: "wolf"}, updated)

	require.NoError(t, repo.Delete(ctx, rex.ID))

	_, err = repo.GetByID(ctx, rex.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPetRepo_UnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, pets.ErrNotFound)

	_, err = repo.Update(ctx, 42, pets.Patch{Name: strPtr("x")})
	assert.ErrorIs(t, err, pets.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 42), pets.ErrNotFound)
}

func TestPetRepo_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()

	a, _ := repo.Create(ctx, "A", "cat")
	b, _ := repo.Create(ctx, "B", "cat")
	require.NoError(t, repo.Delete(ctx, b.ID))

	c, err := repo.Create(ctx, "C", "cat")
	require.NoError(t, err)
	assert.Greater(t, c.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestPetRepo_ListOrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()

	for _, n := range []string{"a", "b", "c", "d"} {
		_, err := repo.Create(ctx, n, "fish")
		require.NoError(t, err)
	}
	require.NoError(t, repo.Delete(ctx, 2))

	items, err := repo.List(ctx)
	require.NoError(t, err)

	ids := make([]int64, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{1, 3, 4}, ids)
}

func TestPetRepo_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := repo.Create(ctx, "x", "y")
			if err == nil {
				ids <- p.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]struct{}{}
	for id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}
