package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pkgerrors "chainfly-client/pkg/errors"
)

// newTestClient starts an in-process server for the given routes and
// returns a client pointed at it
func newTestClient(t *testing.T, routes func(r chi.Router)) *Client {
	t.Helper()
	router := chi.NewRouter()
	routes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, zap.NewNop())
}

func TestPing(t *testing.T) {
	client := newTestClient(t, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"status":"ok"}`))
		})
	})

	assert.True(t, client.Ping(context.Background()))
}

func TestPing_FalseWhenServerErrors(t *testing.T) {
	client := newTestClient(t, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
	})

	assert.False(t, client.Ping(context.Background()))
}

func TestDo_ErrorStatusBecomesExternalError(t *testing.T) {
	client := newTestClient(t, func(r chi.Router) {
		r.Get("/tenders", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"detail":"tender_id is malformed"}`))
		})
	})

	_, err := client.ListTenders(context.Background())

	require.Error(t, err)
	assert.True(t, pkgerrors.IsExternal(err))

	appErr := pkgerrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "tender_id is malformed", appErr.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
}

func TestDo_ConnectionFailureBecomesNetworkError(t *testing.T) {
	server := httptest.NewServer(chi.NewRouter())
	client := NewClient(server.URL, time.Second, zap.NewNop())
	server.Close()

	_, err := client.ListTenders(context.Background())

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNetwork(err))
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:8000/", time.Second, zap.NewNop())
	assert.Equal(t, "http://localhost:8000", client.baseURL)
}

func TestNewClient_ZeroTimeoutFallsBackToDefault(t *testing.T) {
	client := NewClient("http://localhost:8000", 0, zap.NewNop())
	assert.Equal(t, DefaultTimeout, client.http.Timeout)
}

func TestExtractDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail wins", `{"detail":"from detail","message":"from message"}`, "from detail"},
		{"message is the fallback", `{"message":"from message"}`, "from message"},
		{"status text when body is opaque", `<html>gateway error</html>`, "502 Bad Gateway"},
		{"status text when body is empty json", `{}`, "502 Bad Gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDetail([]byte(tt.body), "502 Bad Gateway"))
		})
	}
}

func TestParseAPITime(t *testing.T) {
	assert.Equal(t,
		time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC),
		parseAPITime("2026-09-15T10:30:00Z"))

	assert.Equal(t,
		time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC),
		parseAPITime("2026-09-15T10:30:00"))

	assert.Equal(t,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		parseAPITime("2026-09-15"))

	assert.True(t, parseAPITime("not a date").IsZero())
	assert.True(t, parseAPITime("").IsZero())
}
