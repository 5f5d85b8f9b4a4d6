package pets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Pet
	lastID int64

	updateCalls int
	failWith    error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]Pet, 0, len(r.byID))
	for id := int64(1); id <= r.lastID; id++ {
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) Create(ctx context.Context, name, species string) (Pet, error) {
	if r.failWith != nil {
		return Pet{}, r.failWith
	}
	r.lastID++
	p := Pet{ID: r.lastID, Name: name, Species: species}
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, id int64, patch Patch) (Pet, error) {
	r.updateCalls++
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	p = patch.Apply(p)
	r.byID[id] = p
	return p, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func strPtr(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestService_Create_RequiresNameAndSpecies(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: strPtr("OnlyName")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, CreateInput{Species: strPtr("dog")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "rejected creates must not persist anything")
}

func TestService_Create_PresenceOnly(t *testing.T) {
	// Solo se exige presencia: strings vacíos se aceptan tal cual.
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{Name: strPtr(""), Species: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, Pet{ID: 1}, p)
}

func TestService_Update_PartialKeepsOmittedFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	rex, err := svc.Create(ctx, CreateInput{Name: strPtr("Rex"), Species: strPtr("dog")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, rex.ID, UpdateInput{Name: strPtr("Max")})
	require.NoError(t, err)
	assert.Equal(t, Pet{ID: rex.ID, Name: "Max", Species: "dog"}, updated)
}

func TestService_Update_EmptyIsNoop(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	rex, err := svc.Create(ctx, CreateInput{Name: strPtr("Rex"), Species: strPtr("dog")})
	require.NoError(t, err)

	got, err := svc.Update(ctx, rex.ID, UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, rex, got)
	assert.Zero(t, repo.updateCalls, "empty patch must not reach storage")
}

func TestService_Update_UnknownID(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, err := svc.Update(ctx, 7, UpdateInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, 7, UpdateInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{Name: strPtr("Rex"), Species: strPtr("dog")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))
	assert.ErrorIs(t, svc.Delete(ctx, p.ID), ErrNotFound)

	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_PropagatesRepoErrors(t *testing.T) {
	repo := newTestRepo()
	repo.failWith = errors.New("db down")
	svc := NewService(repo)

	_, err := svc.List(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestPatch_Apply(t *testing.T) {
	base := Pet{ID: 3, Name: "Rex", Species: "dog"}

	assert.True(t, Patch{}.IsEmpty())
	assert.Equal(t, base, Patch{}.Apply(base))
	assert.Equal(t, Pet{ID: 3, Name: "Rex", Species: "wolf"}, Patch{Species: strPtr("wolf")}.Apply(base))
	assert.Equal(t, Pet{ID: 3, Name: "A", Species: "B"}, Patch{Name: strPtr("A"), Species: strPtr("B")}.Apply(base))
}
