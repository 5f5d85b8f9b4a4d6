package pets

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven todos los adapters cuando el id no existe.
var ErrNotFound = errors.New("pet not found")

type Repository interface {
	// List devuelve todas las mascotas ordenadas por id ascendente.
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Create(ctx context.Context, name, species string) (Pet, error)
	Update(ctx context.Context, id int64, patch Patch) (Pet, error)
	Delete(ctx context.Context, id int64) error
}
