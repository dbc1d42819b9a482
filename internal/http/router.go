package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/farmatech/farmatech-client/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(RateLimit)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/register", handlers.RegisterHandler)
	})
	r.Post("/logout", handlers.LogoutHandler)

	r.Group(func(r chi.Router) {
		r.Use(RequireSession)

		r.Get("/me", handlers.MeHandler)

		r.Get("/medicamentos", handlers.GetMedicamentosHandler)
		r.Post("/medicamentos", handlers.CreateMedicamentoHandler)
		r.Put("/medicamentos/{id}", handlers.UpdateMedicamentoHandler)
		r.Delete("/medicamentos/{id}", handlers.DeleteMedicamentoHandler)
		r.Get("/medicamentos/a-vencer", handlers.GetMedicamentosAVencerHandler)

		r.Get("/movimentos", handlers.GetMovimentosHandler)
		r.Post("/movimentos", handlers.CreateMovimentoHandler)
		r.Get("/movimentos/export", handlers.ExportMovimentosHandler)

		r.Get("/vendas", handlers.GetVendasHandler)
		r.Post("/vendas", handlers.CreateVendaHandler)

		r.Get("/alertas", handlers.GetAlertasHandler)

		r.Get("/analise", handlers.GetAnaliseHandler)
		r.Post("/analise/ia", handlers.AnalyzeAIHandler)
	})

	return r
}
