package domain

import "context"

// Account is a registered user. SecretHash never leaves the server.
type Account struct {
	ID         int64  `json:"id"`
	Name       string `json:"nombre"`
	Code       string `json:"codigo"`
	Email      string `json:"correo"`
	SecretHash string `json:"-"`
}

// Credentials carries the four values used by both registration and login.
type Credentials struct {
	Name   string `json:"nombre" validate:"required"`
	Code   string `json:"codigo" validate:"required"`
	Email  string `json:"correo" validate:"required"`
	Secret string `json:"contrasena" validate:"required"`
}

type AccountRepository interface {
	// Create inserts the account and sets its ID. A taken email yields ErrDuplicate.
	Create(ctx context.Context, account *Account) error
	// FindByIdentity returns the account matching name, code and email exactly,
	// or ErrNotFound.
	FindByIdentity(ctx context.Context, name, code, email string) (*Account, error)
}

type AccountUsecase interface {
	Register(ctx context.Context, creds Credentials) (*Account, error)
	Login(ctx context.Context, creds Credentials) (*Account, error)
}
