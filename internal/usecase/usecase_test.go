package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"

	"go-vacancy-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepo) FindByIdentity(ctx context.Context, name, code, email string) (*domain.Account, error) {
	args := m.Called(ctx, name, code, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Create(ctx context.Context, v *domain.Vacancy) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) List(ctx context.Context) ([]domain.Vacancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) Update(ctx context.Context, v *domain.Vacancy) (int64, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(int64), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) List(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	args := m.Called(ctx, originalName, r)
	return args.String(0), args.Error(1)
}

// drainingStore reads the whole upload like a real store would.
type drainingStore struct {
	written []byte
}

func (s *drainingStore) Save(_ context.Context, _ string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.written = data
	return "uploads/cvs/1-1.pdf", nil
}

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error { return p.err }

var errDB = errors.New("database is locked")

func pdfBody(size int) string {
	const head = "%PDF-1.4\n"
	if size <= len(head) {
		return head[:size]
	}
	return head + strings.Repeat("x", size-len(head))
}
