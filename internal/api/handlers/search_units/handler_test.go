package search_units

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	searchUnits "github.com/velalaser/VLL-SchedulingService/internal/usecase/search_units"
	"github.com/velalaser/VLL-SchedulingService/pkg/ptr"
)

type stubUseCase struct {
	resp    *searchUnits.Response
	err     error
	lastReq *searchUnits.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *searchUnits.Request) (*searchUnits.Response, error) {
	s.lastReq = req
	return s.resp, s.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandle(t *testing.T) {
	city := "São Paulo"
	uc := &stubUseCase{resp: &searchUnits.Response{
		Decision: domain.SearchDecision{Mode: domain.SearchModeFullPostalCode, PostalCode: "01310100"},
		Units: []searchUnits.RankedUnit{
			{
				Unit:       &domain.Unit{ID: 1, ExternalID: "moema", Name: "Unidade Moema", Bookable: true, Address: domain.Address{City: &city}},
				DistanceKM: ptr.Ptr(2.345),
			},
			{
				Unit: &domain.Unit{ID: 2, Name: "Unidade Sem Coordenadas"},
			},
		},
		Origin: &domain.Coordinate{Lat: -23.5614, Lon: -46.6559},
		Seq:    9,
	}}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/units?q=01310-100&seq=9", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "01310-100", uc.lastReq.Query)
	assert.Equal(t, uint64(9), uc.lastReq.Seq)

	var body SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "full_postal_code", body.Mode)
	assert.Equal(t, uint64(9), body.Seq)
	require.Len(t, body.Units, 2)
	assert.Equal(t, "2.3 km", body.Units[0].Distance)
	assert.Empty(t, body.Units[1].Distance)
	assert.Nil(t, body.Units[1].DistanceKM)
}

func TestHandle_DegradedResponse(t *testing.T) {
	uc := &stubUseCase{resp: &searchUnits.Response{
		Decision: domain.SearchDecision{Mode: domain.SearchModeAll},
		Units:    []searchUnits.RankedUnit{},
		Degraded: true,
	}}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/units", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Degraded)
	assert.Empty(t, body.Units)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &stubUseCase{err: errors.New("boom")}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/units?q=moema", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
