package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

type stubRepo struct {
	units []*domain.Unit
	err   error
	calls int
}

func (r *stubRepo) List(ctx context.Context, onlyBookable bool) ([]*domain.Unit, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.units, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func sampleUnits() []*domain.Unit {
	city := "São Paulo"
	return []*domain.Unit{
		{ID: 1, ExternalID: "moema", Name: "Unidade Moema", Address: domain.Address{City: &city}},
		{ID: 2, ExternalID: "pinheiros", Name: "Unidade Pinheiros"},
	}
}

func TestService_LoadsOnce(t *testing.T) {
	repo := &stubRepo{units: sampleUnits()}
	svc := NewService(repo, noopLogger{})

	for i := 0; i < 3; i++ {
		units, err := svc.All(context.Background())
		require.NoError(t, err)
		assert.Len(t, units, 2)
	}
	assert.Equal(t, 1, repo.calls)
}

func TestService_FailedLoadStaysUnavailable(t *testing.T) {
	repo := &stubRepo{err: errors.New("db down")}
	svc := NewService(repo, noopLogger{})

	_, err := svc.All(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	// Одна попытка, автоматических повторов нет
	_, err = svc.All(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, repo.calls)
}

func TestService_FilterByText(t *testing.T) {
	svc := NewService(&stubRepo{units: sampleUnits()}, noopLogger{})

	units, err := svc.FilterByText(context.Background(), "moema")
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, int64(1), units[0].ID)

	// Поиск по городу с нормализацией
	units, err = svc.FilterByText(context.Background(), "sao paulo")
	require.NoError(t, err)
	assert.Len(t, units, 1)
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(&stubRepo{units: sampleUnits()}, noopLogger{})

	unit, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "pinheiros", unit.ExternalID)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestService_GetByExternalID(t *testing.T) {
	svc := NewService(&stubRepo{units: sampleUnits()}, noopLogger{})

	unit, err := svc.GetByExternalID(context.Background(), "moema")
	require.NoError(t, err)
	assert.Equal(t, int64(1), unit.ID)

	_, err = svc.GetByExternalID(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestService_AllReturnsSnapshot(t *testing.T) {
	svc := NewService(&stubRepo{units: sampleUnits()}, noopLogger{})

	first, err := svc.All(context.Background())
	require.NoError(t, err)

	// Мутация возвращённого среза не трогает каталог
	first[0] = nil

	second, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, second[0])
}
