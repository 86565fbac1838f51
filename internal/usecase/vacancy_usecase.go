package usecase

import (
	"context"
	"errors"
	"net/http"

	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/pkg/apperror"
	"go-vacancy-backend/pkg/logger"
)

const (
	msgVacancyNotFound     = "Vacante no encontrada."
	msgVacancyCreateFailed = "Error al crear la vacante."
	msgVacancyGetFailed    = "Error al obtener la vacante."
	msgVacancyListFailed   = "Error al obtener las vacantes."
	msgVacancyUpdateFailed = "Error al actualizar la vacante."
)

type vacancyUsecase struct {
	vacancyRepo domain.VacancyRepository
}

func NewVacancyUsecase(vacancyRepo domain.VacancyRepository) domain.VacancyUsecase {
	return &vacancyUsecase{vacancyRepo: vacancyRepo}
}

// Create stores v as given. Empty fields are kept, not rejected.
func (u *vacancyUsecase) Create(ctx context.Context, v *domain.Vacancy) (int64, error) {
	if err := u.vacancyRepo.Create(ctx, v); err != nil {
		return 0, apperror.Storage(msgVacancyCreateFailed, err).WithCode(http.StatusBadRequest)
	}
	return v.ID, nil
}

func (u *vacancyUsecase) Get(ctx context.Context, id int64) (*domain.Vacancy, error) {
	v, err := u.vacancyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgVacancyNotFound)
		}
		return nil, apperror.Storage(msgVacancyGetFailed, err)
	}
	return v, nil
}

func (u *vacancyUsecase) List(ctx context.Context) ([]domain.Vacancy, error) {
	vacancies, err := u.vacancyRepo.List(ctx)
	if err != nil {
		return nil, apperror.Storage(msgVacancyListFailed, err)
	}
	return vacancies, nil
}

// Update replaces the row with v.ID. An unknown id is a successful no-op.
func (u *vacancyUsecase) Update(ctx context.Context, v *domain.Vacancy) error {
	n, err := u.vacancyRepo.Update(ctx, v)
	if err != nil {
		return apperror.Storage(msgVacancyUpdateFailed, err).WithCode(http.StatusBadRequest)
	}
	if n == 0 {
		logger.Log.Info("vacancy update matched no rows", "vacancy_id", v.ID)
	}
	return nil
}
