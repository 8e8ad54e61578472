// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vijaycharanme-code/doc-manager/internal/app"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// probedMethods are the methods tried when building the Allow header.
var probedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers with 405 and a JSON body listing nothing but the message; the
// methods the path does accept are sent in the Allow header. If no method
// matches the path at all the response is a plain JSON 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			utils.WriteJSON(w, models.Response{Success: false, Message: app.MsgNotFound}, http.StatusNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteJSON(w, models.Response{Success: false, Message: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range probedMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
