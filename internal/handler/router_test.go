package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mmi-portfolio/backend/internal/metrics"
	"github.com/mmi-portfolio/backend/internal/repository"
	"github.com/mmi-portfolio/backend/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStorelessServer wires the real services with no document store, the
// degraded state the API must keep serving in.
func newStorelessServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	router := NewRouter(Routes{
		Handler:  New(service.NewDiagnosticsService(nil, false, false)),
		Projects: NewProjectHandler(service.NewProjectService(repository.NewProjectRepository(nil), m)),
		Contact:  NewContactHandler(service.NewContactService(repository.NewMessageRepository(nil), m)),
		Metrics:  m,
		Gatherer: reg,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_Root(t *testing.T) {
	srv := newStorelessServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, RootMessage, body["message"])
}

func TestRouter_UnknownPath(t *testing.T) {
	srv := newStorelessServer(t)

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_ProjectsFallBackToDemo(t *testing.T) {
	srv := newStorelessServer(t)

	resp, err := http.Get(srv.URL + "/api/projects")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var projects []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&projects))
	require.Len(t, projects, 3)

	slugs := []string{}
	for _, p := range projects {
		slugs = append(slugs, p["slug"].(string))
		assert.NotContains(t, p, "_id")
		assert.NotContains(t, p, "id")
	}
	assert.Equal(t, []string{"mobile-banking-redesign", "cafe-pixel-branding", "exhibition-microsite"}, slugs)
	assert.Equal(t, true, projects[0]["highlight"])
	assert.Equal(t, false, projects[1]["highlight"])
	assert.Equal(t, false, projects[2]["highlight"])
}

func TestRouter_ContactWithoutStore(t *testing.T) {
	srv := newStorelessServer(t)

	tests := []struct {
		name     string
		body     string
		wantNote string
	}{
		{
			name:     "valid",
			body:     `{"name":"Alice","email":"alice@example.com","message":"Hello, nice portfolio!"}`,
			wantNote: "Stored locally only: database not available",
		},
		{
			name:     "email without at",
			body:     `{"name":"Alice","email":"alice.example.com","message":"Hello, nice portfolio!"}`,
			wantNote: "Stored locally only: 1 validation error for Message: email: value is not a valid ",
		},
		{
			name:     "message too short",
			body:     `{"name":"Alice","email":"alice@example.com","message":"hi"}`,
			wantNote: "Stored locally only: 1 validation error for Message: message: ensure this value h",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/contact", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)
			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, true, body["ok"])
			assert.Equal(t, tt.wantNote, body["note"])
		})
	}
}

func TestRouter_Diagnostics(t *testing.T) {
	srv := newStorelessServer(t)

	resp, err := http.Get(srv.URL + "/test")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rep service.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	assert.LessOrEqual(t, len(rep.Collections), 10)
	assert.Equal(t, "Not Connected", rep.ConnectionStatus)
}

func TestRouter_MetricsExposeRoutes(t *testing.T) {
	srv := newStorelessServer(t)

	resp, err := http.Get(srv.URL + "/api/projects")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	buf := new(strings.Builder)
	_, err = io.Copy(buf, resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `portfolio_http_requests_total{method="GET",route="GET /api/projects",status="200"} 1`)
	assert.Contains(t, buf.String(), `portfolio_project_fallbacks_total 1`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newStorelessServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/contact", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://portfolio.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://portfolio.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}
