package pets

import (
	"context"
	"errors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	// Punteros para distinguir "no enviado" de "".
	Name    *string
	Species *string
}

type UpdateInput struct {
	Name    *string
	Species *string
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// Create solo exige presencia de name y species; no valida contenido.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if in.Name == nil || in.Species == nil {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.Create(ctx, *in.Name, *in.Species)
}

// Update aplica un update parcial. Sin campos => no-op, devuelve el registro actual.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	patch := Patch{Name: in.Name, Species: in.Species}
	if patch.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
