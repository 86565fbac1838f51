package domain

import "context"

// Vacancy is a job posting. It has no owner and no status.
type Vacancy struct {
	ID          int64   `json:"id"`
	Title       string  `json:"titulo"`
	Description string  `json:"descripcion"`
	Location    string  `json:"ubicacion"`
	Salary      *string `json:"salario"`
}

type VacancyRepository interface {
	Create(ctx context.Context, v *Vacancy) error
	GetByID(ctx context.Context, id int64) (*Vacancy, error)
	List(ctx context.Context) ([]Vacancy, error)
	// Update replaces every field of the row with v.ID and reports how many
	// rows matched.
	Update(ctx context.Context, v *Vacancy) (int64, error)
}

type VacancyUsecase interface {
	Create(ctx context.Context, v *Vacancy) (int64, error)
	Get(ctx context.Context, id int64) (*Vacancy, error)
	List(ctx context.Context) ([]Vacancy, error)
	Update(ctx context.Context, v *Vacancy) error
}
