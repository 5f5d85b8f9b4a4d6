package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-api/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, species
		FROM pets
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Species); err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, species
		FROM pets
		WHERE id = $1
	`, id)

	return scanPet(row, "get pet")
}

func (r *PetsRepo) Create(ctx context.Context, name, species string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, species)
		VALUES ($1, $2)
		RETURNING id, name, species
	`, name, species)

	return scanPet(row, "create pet")
}

// Update es un solo statement: COALESCE deja intactos los campos nil del patch.
func (r *PetsRepo) Update(ctx context.Context, id int64, patch pets.Patch) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE pets
		SET
			name = COALESCE($2::text, name),
			species = COALESCE($3::text, species)
		WHERE id = $1
		RETURNING id, name, species
	`, id, patch.Name, patch.Species)

	return scanPet(row, "update pet")
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func scanPet(row *sql.Row, op string) (pets.Pet, error) {
	var p pets.Pet
	if err := row.Scan(&p.ID, &p.Name, &p.Species); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
