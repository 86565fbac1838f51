package sqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/pkg/database"
)

type accountRepo struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) domain.AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	query := r.db.Rebind(`INSERT INTO usuarios (nombre, codigo, correo, contrasena)
              VALUES (?, ?, ?, ?) RETURNING id`)
	err := r.db.QueryRowContext(ctx, query,
		account.Name, account.Code, account.Email, account.SecretHash,
	).Scan(&account.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("usuarios.correo %q: %w", account.Email, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *accountRepo) FindByIdentity(ctx context.Context, name, code, email string) (*domain.Account, error) {
	query := r.db.Rebind(`SELECT id, nombre, codigo, correo, contrasena FROM usuarios
              WHERE nombre = ? AND codigo = ? AND correo = ?`)
	var account domain.Account
	err := r.db.QueryRowContext(ctx, query, name, code, email).Scan(
		&account.ID, &account.Name, &account.Code, &account.Email, &account.SecretHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select usuario: %w", err)
	}
	return &account, nil
}
