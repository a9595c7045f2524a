package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Post("/api/user/signup", h.signup)
		r.Post("/api/user/login", h.login)
		r.Get("/api/awareness/{slug}", h.awarenessBySlug)
		r.Handle("/metrics", promhttp.Handler())
	})

	// routes behind the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/check", h.check)
		r.Post("/api/user/logout", h.logout)
		r.Post("/api/user/account-activate", h.accountActivate)
		r.Post("/api/query/answer", h.answer)

		r.Post("/api/admin/awareness", h.createAwareness)
		r.Get("/api/admin/awareness", h.listAwareness)
		r.Patch("/api/admin/awareness/{slug}/publish", h.publishAwareness)
		r.Get("/api/admin/analytics", h.analyticsByDate)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
