// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jeremy-dai/hi-time-sub000/internal/app"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
)

// knownMethods are the methods probed when building an Allow header.
var knownMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// The requested path is matched against every route of router, including
// parameterised ones such as /api/weeks/{key}. The response is 405 Method
// Not Allowed with an "Allow" header listing the methods the path does
// support and a JSON error body.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range knownMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 {
			notFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// notFound answers unknown routes with a JSON error body.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgResourceNotFound, http.StatusNotFound)
}
