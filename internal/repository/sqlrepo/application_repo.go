package sqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/pkg/database"
)

const applicationColumns = `id, correo, nombres, apellidos, url_cv, vacante_id, created_at`

type applicationRepo struct {
	db *database.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *database.DB) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application; created_at is defaulted by the store.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := r.db.Rebind(`
		INSERT INTO datos_usuario (correo, nombres, apellidos, url_cv, vacante_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, created_at`)

	err := r.db.QueryRowContext(ctx, query,
		app.Email,
		app.FirstName,
		app.LastName,
		app.CVPath,
		app.VacancyID,
	).Scan(&app.ID, (*timestamp)(&app.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert datos_usuario: %w", err)
	}
	return nil
}

// GetByID retrieves an application by ID
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := r.db.Rebind(`SELECT ` + applicationColumns + ` FROM datos_usuario WHERE id = ?`)

	app, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select datos_usuario %d: %w", id, err)
	}
	return app, nil
}

// List returns every application in insertion order.
func (r *applicationRepo) List(ctx context.Context) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM datos_usuario ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list datos_usuario: %w", err)
	}
	defer rows.Close()

	apps := make([]domain.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan datos_usuario: %w", err)
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate datos_usuario: %w", err)
	}
	return apps, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	var app domain.Application
	if err := row.Scan(
		&app.ID, &app.Email, &app.FirstName, &app.LastName,
		&app.CVPath, &app.VacancyID, (*timestamp)(&app.CreatedAt),
	); err != nil {
		return nil, err
	}
	return &app, nil
}
