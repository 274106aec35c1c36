package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aanand-mishra/exercises-api/internal/config"
	"github.com/aanand-mishra/exercises-api/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(minorWords ...string) *config.Config {
	return &config.Config{
		Env: "dev",
		HTTPServer: config.HTTPServer{
			Addr:         "localhost:0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			IdleTimeout:  time.Second,
		},
		Title: config.Title{MinorWords: minorWords},
	}
}

func TestNew(t *testing.T) {
	srv := New(testConfig())

	assert.Equal(t, "localhost:0", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.NotNil(t, srv.Handler)
}

func TestRouter_EndToEnd(t *testing.T) {
	ts := httptest.NewServer(NewRouter(testConfig("ka", "se")))
	defer ts.Close()

	client := ts.Client()
	defer client.CloseIdleConnections()

	resp, err := client.Post(ts.URL+"/api/titles", "application/json",
		bytes.NewBufferString(`{"title":"dil se KA"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got types.TitleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Dil se ka", got.Title)
}

func TestRouter_Routes(t *testing.T) {
	router := NewRouter(testConfig())

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/api/titles", http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.want, w.Code, "%s %s", tt.method, tt.path)
	}
}
