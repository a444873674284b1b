package unoservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestGetAvailableHours(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/franchises/moema/schedule/hours", r.URL.Path)
		assert.Equal(t, "15/09/2026", r.URL.Query().Get("date"))

		// Часы приходят неотсортированными
		_, _ = w.Write([]byte(`{
			"ok": true,
			"timezone": "America/Sao_Paulo",
			"serviceId": 42,
			"hours": [
				{"roomId": 2, "date": "15/09/2026", "hour": "14:00"},
				{"roomId": 1, "date": "15/09/2026", "hour": "09:30"},
				{"roomId": 3, "date": "15/09/2026", "hour": "bogus"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, noopLogger{})
	avail, err := client.GetAvailableHours(context.Background(), "moema", "15/09/2026")

	require.NoError(t, err)
	require.NotNil(t, avail.ServiceID)
	assert.Equal(t, int64(42), *avail.ServiceID)

	// Кривой час пропущен, остальные отсортированы по возрастанию
	require.Len(t, avail.Slots, 2)
	assert.Equal(t, "09:30", avail.Slots[0].Hour.String())
	assert.Equal(t, int64(1), avail.Slots[0].RoomID)
	assert.Equal(t, "14:00", avail.Slots[1].Hour.String())
}

func TestGetAvailableHours_EmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok": true, "hours": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, noopLogger{})
	avail, err := client.GetAvailableHours(context.Background(), "moema", "15/09/2026")

	require.NoError(t, err)
	assert.False(t, avail.HasSlots())
}

func TestGetAvailableHours_FranchiseNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, noopLogger{})
	_, err := client.GetAvailableHours(context.Background(), "nope", "15/09/2026")

	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestCreateSchedule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/franchises/moema/schedule", r.URL.Path)

		var payload CreateScheduleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Maria Silva", payload.Name)
		assert.Equal(t, "5511912345678", payload.CellPhone)
		assert.Equal(t, "15/09/2026", payload.Date)
		assert.Equal(t, "10:00", payload.Hour)
		assert.Equal(t, int64(42), payload.DealActivityID)
		assert.Equal(t, int64(7), payload.RoomID)

		_, _ = w.Write([]byte(`{"ok": true, "id": 555}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, noopLogger{})
	result, err := client.CreateSchedule(context.Background(), "moema", &CreateScheduleRequest{
		Name:           "Maria Silva",
		CellPhone:      "5511912345678",
		Date:           "15/09/2026",
		Hour:           "10:00",
		DealActivityID: 42,
		RoomID:         7,
	})

	require.NoError(t, err)
	assert.True(t, result.OK)
	require.NotNil(t, result.ID)
	assert.Equal(t, int64(555), *result.ID)
}

func TestCreateSchedule_RejectionWithDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail": "Horário ocupado"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, noopLogger{})
	result, err := client.CreateSchedule(context.Background(), "moema", &CreateScheduleRequest{})

	// Отказ с причиной - штатный результат, не ошибка
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, "Horário ocupado", result.Message)
}

func TestCreateSchedule_OpaqueFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, noopLogger{})
	_, err := client.CreateSchedule(context.Background(), "moema", &CreateScheduleRequest{})

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCreateLead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Leads", r.URL.Path)

		var payload CreateLeadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "moema", payload.FranchiseID)

		_, _ = w.Write([]byte(`{"id": "lead-123"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, noopLogger{})
	result, err := client.CreateLead(context.Background(), &CreateLeadRequest{
		FranchiseID: "moema",
		Name:        "Maria Silva",
		CellPhone:   "5511912345678",
	})

	require.NoError(t, err)
	assert.Equal(t, "lead-123", result.ID)
}
