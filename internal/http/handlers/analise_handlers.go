package handlers

import (
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/farmatech/farmatech-client/internal/analytics"
	"github.com/farmatech/farmatech-client/internal/gateway"
	"github.com/farmatech/farmatech-client/internal/models"
)

type AnaliseResponse struct {
	Resumo         analytics.Resumo          `json:"resumo"`
	Movimentacoes  []analytics.PeriodoBucket `json:"movimentacoes"`
	Vendas         []analytics.VendaBucket   `json:"vendas"`
	SaldoAcumulado []analytics.SaldoPonto    `json:"saldoAcumulado"`
}

// GetAnaliseHandler godoc
// @Summary Chart-ready movement and sales analytics for the selected period
// @Tags analise
// @Produce json
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param medicamentoId query int false "Filter by medication"
// @Param tipo query string false "entrada or saida"
// @Param month query int false "Calendar month (1-12), 0 for the whole year"
// @Param year query int false "Calendar year, defaults to the current one"
// @Success 200 {object} AnaliseResponse
// @Failure 400 {string} string "Invalid input"
// @Router /analise [get]
// @Security BearerAuth
func GetAnaliseHandler(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if criteria.Year == 0 {
		criteria.Year = time.Now().Year()
	}

	// Movements and sales populate disjoint parts of the response, so they
	// are fetched concurrently.
	var (
		movs   []models.Movimento
		vendas []models.Venda
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		movs, err = movimentoAPI.Movimentos(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		vendas, err = vendaAPI.Vendas(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		writeGatewayError(w, err)
		return
	}

	movsFiltrados := analytics.FilterMovimentos(movs, criteria)
	vendasFiltradas := analytics.FilterVendas(vendas, criteria)

	resp := AnaliseResponse{
		Resumo:         analytics.NewResumo(movsFiltrados, vendasFiltradas),
		Movimentacoes:  analytics.MovimentoSeries(movsFiltrados, criteria.Year, criteria.Month),
		Vendas:         analytics.VendaSeries(vendasFiltradas, criteria.Year, criteria.Month),
		SaldoAcumulado: analytics.SaldoAcumulado(movsFiltrados),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// AnalyzeAIHandler godoc
// @Summary Request AI-generated insights from the backend
// @Tags analise
// @Accept json
// @Produce json
// @Param filters body gateway.AnaliseRequest true "Active analytics filters"
// @Success 200 {object} gateway.AnaliseResult
// @Failure 400 {string} string "Invalid input"
// @Failure 502 {string} string "Backend unreachable"
// @Router /analise/ia [post]
// @Security BearerAuth
func AnalyzeAIHandler(w http.ResponseWriter, r *http.Request) {
	var req gateway.AnaliseRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	result, err := analiseAPI.Analyze(r.Context(), req)
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
