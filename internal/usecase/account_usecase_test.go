package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/internal/usecase"
	"go-vacancy-backend/pkg/apperror"
	"go-vacancy-backend/pkg/security"
	"go-vacancy-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var creds = domain.Credentials{Name: "Ana", Code: "A01", Email: "ana@example.com", Secret: "s3cret"}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject when any field is missing", func(t *testing.T) {
		repo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(repo, validation.New())

		missing := creds
		missing.Code = ""
		_, err := uc.Register(ctx, missing)

		require.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.KindValidation))
		assert.Equal(t, "Todos los campos son requeridos.", err.Error())
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should store a hash, never the secret", func(t *testing.T) {
		repo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(repo, validation.New())

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Account")).Return(nil).Run(func(args mock.Arguments) {
			a := args.Get(1).(*domain.Account)
			assert.NotEqual(t, creds.Secret, a.SecretHash)
			assert.True(t, security.VerifySecret(a.SecretHash, creds.Secret))
			a.ID = 7
		})

		acc, err := uc.Register(ctx, creds)
		require.NoError(t, err)
		assert.Equal(t, int64(7), acc.ID)
		assert.Equal(t, "Ana", acc.Name)
		assert.Equal(t, "A01", acc.Code)
		assert.Equal(t, "ana@example.com", acc.Email)
		repo.AssertExpectations(t)
	})

	t.Run("Should map a taken email to DuplicateEmail", func(t *testing.T) {
		repo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(repo, validation.New())
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicate)

		_, err := uc.Register(ctx, creds)
		require.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.KindDuplicateEmail))
		appErr, _ := apperror.As(err)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})

	t.Run("Should report other failures as storage errors", func(t *testing.T) {
		repo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(repo, validation.New())
		repo.On("Create", ctx, mock.Anything).Return(errDB)

		_, err := uc.Register(ctx, creds)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindStorage, appErr.Kind)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.ErrorIs(t, err, errDB)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := security.HashSecret(creds.Secret)
	require.NoError(t, err)
	stored := &domain.Account{ID: 3, Name: creds.Name, Code: creds.Code, Email: creds.Email, SecretHash: hash}

	t.Run("Should return the account when all four values match", func(t *testing.T) {
		repo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(repo, validation.New())
		repo.On("FindByIdentity", ctx, creds.Name, creds.Code, creds.Email).Return(stored, nil)

		acc, err := uc.Login(ctx, creds)
		require.NoError(t, err)
		assert.Equal(t, int64(3), acc.ID)
	})

	t.Run("Wrong secret and unknown identity are indistinguishable", func(t *testing.T) {
		repo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(repo, validation.New())
		repo.On("FindByIdentity", ctx, creds.Name, creds.Code, creds.Email).Return(stored, nil)
		repo.On("FindByIdentity", ctx, "Otro", creds.Code, creds.Email).Return(nil, domain.ErrNotFound)

		wrongSecret := creds
		wrongSecret.Secret = "nope"
		_, errSecret := uc.Login(ctx, wrongSecret)

		wrongName := creds
		wrongName.Name = "Otro"
		_, errName := uc.Login(ctx, wrongName)

		require.Error(t, errSecret)
		require.Error(t, errName)
		assert.Equal(t, errSecret, errName)
		assert.True(t, apperror.Is(errName, apperror.KindInvalidCredentials))
		assert.Equal(t, "Credenciales incorrectas.", errName.Error())
	})

	t.Run("Should reject empty fields without querying", func(t *testing.T) {
		repo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(repo, validation.New())

		_, err := uc.Login(ctx, domain.Credentials{Email: creds.Email})
		assert.True(t, apperror.Is(err, apperror.KindInvalidCredentials))
		repo.AssertNotCalled(t, "FindByIdentity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should surface query failures as storage errors", func(t *testing.T) {
		repo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(repo, validation.New())
		repo.On("FindByIdentity", ctx, creds.Name, creds.Code, creds.Email).Return(nil, errDB)

		_, err := uc.Login(ctx, creds)
		assert.True(t, apperror.Is(err, apperror.KindStorage))
	})
}
