// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-identity-vault/internal/app"
	"github.com/MKhiriev/go-identity-vault/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] intended to be registered
// as the router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches a route but the method is not
// handled. This handler answers 404 instead so that callers using an
// unsupported method learn nothing about which routes exist. If the method
// does match (e.g. after a trailing-slash rewrite), the request is served by
// the router as usual.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		if !router.Match(rctx, r.Method, r.URL.Path) {
			utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
