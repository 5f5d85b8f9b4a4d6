package memory

import (
	"context"
	"sort"
	"sync"

	"pet-api/internal/domain/pets"
)

type petRepo struct {
	mu     sync.RWMutex
	lastID int64
	byID   map[int64]pets.Pet
}

// NewPetRepo crea un repo en memoria. Los ids arrancan en 1 y nunca se reutilizan.
func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[int64]pets.Pet),
	}
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) Create(ctx context.Context, name, species string) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	p := pets.Pet{
		ID:      r.lastID,
		Name:    name,
		Species: species,
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, id int64, patch pets.Patch) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}

	updated := patch.Apply(current)
	r.byID[id] = updated
	return updated, nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
