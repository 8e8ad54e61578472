package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijaycharanme-code/doc-manager/internal/app"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/service"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(_ context.Context) error {
	return m.err
}

// newHandlerWithAppInfo builds a Handler whose AppInfoService is replaced
// with the provided mock. All other service fields are left nil because
// the version routes do not use them.
func newHandlerWithAppInfo(t *testing.T, svc service.AppInfoService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{AppInfoService: svc}, nil, testConfig(), logger.Nop())
}

// ─────────────────────────────────────────────
// Version and index
// ─────────────────────────────────────────────

func TestGetServerVersion_WritesVersion(t *testing.T) {
	const want = "1.2.3"

	h := newHandlerWithAppInfo(t, &mockAppInfoService{version: want})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, want, resp.Version)
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	const want = "v2.0.0-beta+build.42"

	router := newHandlerWithAppInfo(t, &mockAppInfoService{version: want}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, decodeResponse(t, rec).Version)
}

func TestIndex_Banner(t *testing.T) {
	router := newHandlerWithAppInfo(t, &mockAppInfoService{version: "0.9.0"}).Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, app.MsgDocumentManagerUp, resp.Message)
	assert.Equal(t, "0.9.0", resp.Version)
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealthz(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		wantStatus int
		wantOK     bool
	}{
		{name: "no pinger", pinger: nil, wantStatus: http.StatusOK, wantOK: true},
		{name: "database reachable", pinger: &mockPinger{}, wantStatus: http.StatusOK, wantOK: true},
		{name: "database down", pinger: &mockPinger{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{AppInfoService: &mockAppInfoService{}}, tt.pinger, testConfig(), logger.Nop())

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOK, decodeResponse(t, rec).Success)
		})
	}
}
