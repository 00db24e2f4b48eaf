// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// maxBodyBytes bounds every request body.
const maxBodyBytes = 10 << 20

// availableEndpoints is reported by the catch-all 404.
var availableEndpoints = []string{
	"GET /health",
	"GET /health/ready",
	"GET /api/version",
	"POST /api/auth/register",
	"POST /api/auth/login",
	"POST /api/auth/logout",
	"GET /api/auth/profile",
	"GET /api/users/list",
	"GET /api/users/search",
	"GET /api/users/:id",
	"PUT /api/users/:id",
	"POST /api/dives/create",
	"GET /api/dives/list",
	"GET /api/dives/:id",
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRecover)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecurityHeaders)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(5))
	router.Use(withGZipBody)
	router.Use(middleware.RequestSize(maxBodyBytes))

	router.Get("/", h.index)

	router.Route("/health", func(r chi.Router) {
		r.Get("/", h.health)
		r.Get("/ready", h.readiness)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.optionalAuth).Post("/logout", h.logout)
			r.With(h.auth).Get("/profile", h.profile)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/list", h.listUsers)
			r.Get("/search", h.searchUsers)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
		})

		r.Route("/dives", func(r chi.Router) {
			r.With(h.auth).Post("/create", h.createDive)
			r.Get("/list", h.listDives)
			r.Get("/{id}", h.getDive)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
