package http

import (
	"net/http"

	"github.com/ayoqsh/loyalty-service/internal/delivery/http/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	Submission *handlers.SubmissionHandler
	Rules      *handlers.RuleHandler
	Settings   *handlers.SettingsHandler
	Customers  *handlers.CustomerHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/submissions", deps.Submission.ProcessSubmission)

	r.Route("/admin", func(r chi.Router) {
		r.Route("/rules", func(r chi.Router) {
			r.Get("/", deps.Rules.ListRules)
			r.Post("/", deps.Rules.CreateRule)
			r.Get("/{ruleID}", deps.Rules.GetRule)
			r.Put("/{ruleID}", deps.Rules.UpdateRule)
			r.Delete("/{ruleID}", deps.Rules.DeactivateRule)
		})
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", deps.Settings.ListSettings)
			r.Get("/{key}", deps.Settings.GetSetting)
			r.Put("/{key}", deps.Settings.SetSetting)
		})
		r.Route("/customers/{externalID}", func(r chi.Router) {
			r.Get("/", deps.Customers.GetCustomer)
			r.Put("/contact", deps.Customers.UpdateContact)
			r.Delete("/", deps.Customers.DeactivateCustomer)
			r.Get("/checks", deps.Customers.ListCustomerChecks)
		})
	})

	return r
}
