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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/documents/verify", h.verify)
		r.Get("/api/documents/verify/{hash}", h.verifyByHash)

		r.Post("/api/admin/request-otp-login", h.requestOTPLogin)
		r.Post("/api/admin/verify-otp-login", h.verifyOTPLogin)

		r.Get("/metrics", promhttp.Handler().ServeHTTP)
	})

	// operator routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/documents/upload", h.upload)
		r.Post("/api/documents/revoke", h.revoke)
		r.Get("/api/documents/history", h.history)
		r.Get("/api/documents/dashboard-stats", h.dashboardStats)
		r.Post("/api/documents/pause-contract", h.pauseContract)
		r.Get("/api/documents/contract-status", h.contractStatus)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
