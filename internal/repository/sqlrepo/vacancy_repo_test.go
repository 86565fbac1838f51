package sqlrepo

import (
	"context"
	"testing"

	"go-vacancy-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVacancyRepository_CRUD(t *testing.T) {
	r := NewVacancyRepository(newTestDB(t))
	ctx := context.Background()

	v := &domain.Vacancy{Title: "Backend Dev", Description: "Go services", Location: "Remote", Salary: strPtr("50k")}
	require.NoError(t, r.Create(ctx, v))
	assert.Equal(t, int64(1), v.ID)

	got, err := r.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	updated := &domain.Vacancy{ID: v.ID, Title: "Senior Backend Dev", Description: "Go", Location: "Lima"}
	n, err := r.Update(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err = r.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Dev", got.Title)
	assert.Nil(t, got.Salary)
}

func TestVacancyRepository_UpdateMissingRow(t *testing.T) {
	r := NewVacancyRepository(newTestDB(t))
	ctx := context.Background()

	n, err := r.Update(ctx, &domain.Vacancy{ID: 42, Title: "x"})
	require.NoError(t, err)
	assert.Zero(t, n)

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestVacancyRepository_GetMissing(t *testing.T) {
	r := NewVacancyRepository(newTestDB(t))
	_, err := r.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVacancyRepository_List(t *testing.T) {
	r := NewVacancyRepository(newTestDB(t))
	ctx := context.Background()

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, r.Create(ctx, &domain.Vacancy{Title: title}))
	}

	first, err := r.List(ctx)
	require.NoError(t, err)
	second, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, "A", first[0].Title)
}
