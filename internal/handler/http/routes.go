package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/user/signup", h.signup)
		r.Post("/api/v1/user/signin", h.signin)
		r.Post("/api/v1/user/refresh", h.refresh)
		r.Post("/api/v1/user/signout", h.signout)
		r.Get("/api/v1/user/verify", h.verify)

		r.Get("/api/v1/oauth/{provider}", h.oauthRedirect)
		r.Get("/api/v1/oauth/{provider}/callback", h.oauthCallback)
	})

	// routes that require an authenticated user in the request context
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/v1/user/history", h.history)
		r.Post("/api/v1/role/assign", h.assignRole)
		r.Post("/api/v1/role/revoke", h.revokeRole)
	})

	return router
}
