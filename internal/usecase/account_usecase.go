package usecase

import (
	"context"
	"errors"

	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/pkg/apperror"
	"go-vacancy-backend/pkg/logger"
	"go-vacancy-backend/pkg/security"
	"go-vacancy-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	msgAllFieldsRequired  = "Todos los campos son requeridos."
	msgEmailTaken         = "El correo electrónico ya está en uso."
	msgAccountStoreFailed = "Error al agregar el usuario."
	msgBadCredentials     = "Credenciales incorrectas."
	msgQueryFailed        = "Error en la consulta."
)

type accountUsecase struct {
	accountRepo domain.AccountRepository
	validate    *validator.Validate
}

func NewAccountUsecase(accountRepo domain.AccountRepository, validate *validator.Validate) domain.AccountUsecase {
	return &accountUsecase{
		accountRepo: accountRepo,
		validate:    validate,
	}
}

// Register stores a new account with a bcrypt hash of the secret.
func (u *accountUsecase) Register(ctx context.Context, creds domain.Credentials) (*domain.Account, error) {
	if err := u.validate.Struct(creds); err != nil {
		return nil, apperror.Validation(msgAllFieldsRequired).WithDetail(validation.Detail(err))
	}

	hash, err := security.HashSecret(creds.Secret)
	if err != nil {
		return nil, apperror.Storage(msgAccountStoreFailed, err)
	}

	account := &domain.Account{
		Name:       creds.Name,
		Code:       creds.Code,
		Email:      creds.Email,
		SecretHash: hash,
	}
	if err := u.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			logger.Log.Info("registration rejected: email taken", "email", creds.Email)
			return nil, apperror.DuplicateEmail(msgEmailTaken)
		}
		return nil, apperror.Storage(msgAccountStoreFailed, err)
	}

	logger.Log.Info("account registered", "account_id", account.ID)
	return account, nil
}

// Login returns the account whose name, code and email match exactly and
// whose stored hash verifies the secret. Every rejection looks the same.
func (u *accountUsecase) Login(ctx context.Context, creds domain.Credentials) (*domain.Account, error) {
	if err := u.validate.Struct(creds); err != nil {
		security.VerifySecret("", creds.Secret)
		return nil, apperror.InvalidCredentials(msgBadCredentials)
	}

	account, err := u.accountRepo.FindByIdentity(ctx, creds.Name, creds.Code, creds.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Storage(msgQueryFailed, err)
	}

	hash := ""
	if account != nil {
		hash = account.SecretHash
	}
	if !security.VerifySecret(hash, creds.Secret) {
		logger.Log.Info("login rejected", "email", creds.Email)
		return nil, apperror.InvalidCredentials(msgBadCredentials)
	}

	return account, nil
}
