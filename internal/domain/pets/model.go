package pets

// Pet es el único recurso del servicio.
// ID lo asigna el storage al crear y no cambia nunca.
type Pet struct {
	ID      int64
	Name    string
	Species string
}

// Patch describe un update parcial: nil = no tocar.
type Patch struct {
	Name    *string
	Species *string
}

// IsEmpty indica que el patch no cambia ningún campo.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Species == nil
}

// Apply devuelve una copia de pet con los campos presentes sobrescritos.
func (p Patch) Apply(pet Pet) Pet {
	if p.Name != nil {
		pet.Name = *p.Name
	}
	if p.Species != nil {
		pet.Species = *p.Species
	}
	return pet
}
