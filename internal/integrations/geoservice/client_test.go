package geoservice

import (
	"context"
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

func TestResolvePostalCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "br", q.Get("countrycodes"))
		assert.Equal(t, "01310100", q.Get("postalcode"))
		assert.Equal(t, "1", q.Get("limit"))

		// Nominatim отдаёт координаты строками
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat": "-23.5614", "lon": "-46.6559"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, noopLogger{})
	coord, err := client.ResolvePostalCode(context.Background(), "01310100")

	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.InDelta(t, -23.5614, coord.Lat, 1e-6)
	assert.InDelta(t, -46.6559, coord.Lon, 1e-6)
}

func TestResolvePostalCode_NoMatchIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, noopLogger{})
	coord, err := client.ResolvePostalCode(context.Background(), "99999999")

	require.NoError(t, err)
	assert.Nil(t, coord)
}

func TestResolvePostalCode_WrongLength(t *testing.T) {
	client := NewClient("http://unused", time.Second, noopLogger{})

	_, err := client.ResolvePostalCode(context.Background(), "013101")
	assert.ErrorIs(t, err, ErrInvalidPostalCode)
}

func TestResolvePostalCode_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, noopLogger{})
	_, err := client.ResolvePostalCode(context.Background(), "01310100")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestResolvePostalCode_NonNumericCoords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"lat": "abc", "lon": "-46.6559"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, noopLogger{})
	_, err := client.ResolvePostalCode(context.Background(), "01310100")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
