package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGunzip, compressJSON)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		weeks := resourceRoute{kind: models.KindWeek, key: urlParam("key")}
		r.Get("/api/weeks/{key}", h.getResource(weeks))
		r.Put("/api/weeks/{key}", h.putResource(weeks))

		settings := resourceRoute{kind: models.KindSettings, envelope: "settings", key: fixedKey(models.SettingsKey)}
		r.Get("/api/settings", h.getResource(settings))
		r.Put("/api/settings", h.putResource(settings))

		goals := resourceRoute{kind: models.KindGoal, envelope: "goal", key: urlParam("id")}
		r.Get("/api/goals", h.listGoals)
		r.Post("/api/goals", h.createGoal)
		r.Put("/api/goals/{id}", h.putResource(goals))
		r.Delete("/api/goals/{id}", h.deleteResource(goals))

		plans := resourceRoute{kind: models.KindPlan, envelope: "plan", key: urlParam("id")}
		r.Get("/api/plans/{id}", h.getResource(plans))
		r.Put("/api/plans/{id}", h.putResource(plans))

		shipping := resourceRoute{kind: models.KindShipping, envelope: "entry", key: shippingDate}
		r.Get("/api/shipping/{year}", h.listShipping)
		r.Get("/api/shipping/{year}/{month}/{day}", h.getResource(shipping))
		r.Put("/api/shipping/{year}/{month}/{day}", h.putResource(shipping))
		r.Delete("/api/shipping/{year}/{month}/{day}", h.deleteResource(shipping))

		reviews := resourceRoute{kind: models.KindReview, envelope: "review", key: urlParam("year")}
		r.Get("/api/reviews/{year}", h.getResource(reviews))
		r.Put("/api/reviews/{year}", h.putResource(reviews))
		r.Delete("/api/reviews/{year}", h.deleteResource(reviews))

		memories := resourceRoute{kind: models.KindMemories, envelope: "memories", key: urlParam("year")}
		r.Get("/api/memories/{year}", h.getResource(memories))
		r.Put("/api/memories/{year}", h.putResource(memories))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(notFound)

	return router
}
