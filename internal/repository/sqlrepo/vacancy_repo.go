package sqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/pkg/database"
)

type vacancyRepo struct {
	db *database.DB
}

func NewVacancyRepository(db *database.DB) domain.VacancyRepository {
	return &vacancyRepo{db: db}
}

func (r *vacancyRepo) Create(ctx context.Context, v *domain.Vacancy) error {
	query := r.db.Rebind(`INSERT INTO vacantes (titulo, descripcion, ubicacion, salario)
              VALUES (?, ?, ?, ?) RETURNING id`)
	if err := r.db.QueryRowContext(ctx, query, v.Title, v.Description, v.Location, v.Salary).Scan(&v.ID); err != nil {
		return fmt.Errorf("insert vacante: %w", err)
	}
	return nil
}

func (r *vacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	query := r.db.Rebind(`SELECT id, titulo, descripcion, ubicacion, salario FROM vacantes WHERE id = ?`)
	var v domain.Vacancy
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Title, &v.Description, &v.Location, &v.Salary)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select vacante %d: %w", id, err)
	}
	return &v, nil
}

func (r *vacancyRepo) List(ctx context.Context) ([]domain.Vacancy, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, titulo, descripcion, ubicacion, salario FROM vacantes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list vacantes: %w", err)
	}
	defer rows.Close()

	vacancies := make([]domain.Vacancy, 0)
	for rows.Next() {
		var v domain.Vacancy
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.Location, &v.Salary); err != nil {
			return nil, fmt.Errorf("scan vacante: %w", err)
		}
		vacancies = append(vacancies, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vacantes: %w", err)
	}
	return vacancies, nil
}

func (r *vacancyRepo) Update(ctx context.Context, v *domain.Vacancy) (int64, error) {
	query := r.db.Rebind(`UPDATE vacantes SET
		titulo = ?,
		descripcion = ?,
		ubicacion = ?,
		salario = ?
	WHERE id = ?`)
	result, err := r.db.ExecContext(ctx, query, v.Title, v.Description, v.Location, v.Salary, v.ID)
	if err != nil {
		return 0, fmt.Errorf("update vacante %d: %w", v.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update vacante %d: %w", v.ID, err)
	}
	return affected, nil
}
