// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijaycharanme-code/doc-manager/internal/app"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/models"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.Response{Success: true}, http.StatusOK)
}

func newMethodTestRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/items", okHandler)
	router.Post("/items", okHandler)
	router.Delete("/items/{id}", okHandler)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "registered GET", method: http.MethodGet, path: "/items", wantStatus: http.StatusOK},
		{name: "registered POST", method: http.MethodPost, path: "/items", wantStatus: http.StatusOK},
		{name: "PUT on collection", method: http.MethodPut, path: "/items", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, POST"},
		{name: "GET on parametrised route", method: http.MethodGet, path: "/items/5", wantStatus: http.StatusMethodNotAllowed, wantAllow: "DELETE"},
		{name: "registered DELETE", method: http.MethodDelete, path: "/items/5", wantStatus: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, path: "/nothing", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMethodTestRouter()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
		})
	}
}

func TestCheckHTTPMethod_JSONBody(t *testing.T) {
	router := newMethodTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/items", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, app.MsgMethodNotAllowed, resp.Message)
}

func TestCheckHTTPMethod_DirectCallWithoutMatch(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/a", okHandler)

	rec := httptest.NewRecorder()
	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodGet, "/b", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Allow"))
}
