// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] intended to be registered as
// the router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 Method Not Allowed whenever a request path matches a
// registered route but the HTTP method is not handled. This handler answers
// 404 Not Found instead, hiding the existence of CMS-facing routes from
// callers probing with unsupported methods.
//
// The lookup compares each registered route's pattern against the raw
// request path; parameterised or wildcard segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		allRoutes := router.Routes()
		var foundRoute chi.Route
		for _, route := range allRoutes {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
