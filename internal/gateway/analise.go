package gateway

import (
	"context"
	"net/http"
)

// AnaliseRequest carries the active analytics filters to the backend's AI
// insight endpoint. Zero values are omitted.
type AnaliseRequest struct {
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
	MedicamentoID int    `json:"medicamentoId,omitempty"`
	Tipo          string `json:"tipo,omitempty"`
	AnalysisType  string `json:"analysisType,omitempty"`
}

type AnaliseData struct {
	TotalEntradas         int     `json:"total_entradas"`
	TotalSaidas           int     `json:"total_saidas"`
	TotalVendasValor      float64 `json:"total_vendas_valor"`
	MedicamentosEmEstoque int     `json:"medicamentos_em_estoque"`
}

// AnaliseResult is the backend's AI analysis: a free-text summary with
// lightweight markdown, plus the aggregates the summary was computed from.
type AnaliseResult struct {
	Success bool         `json:"success"`
	Summary string       `json:"summary"`
	Data    *AnaliseData `json:"data,omitempty"`
}

// Analyze requests AI-generated insights over the movement and sales data
// matching the given filters. The computation happens backend-side.
func (c *Client) Analyze(ctx context.Context, req AnaliseRequest) (AnaliseResult, error) {
	var res AnaliseResult
	if err := c.do(ctx, http.MethodPost, "/analyze-ai/", req, &res, true); err != nil {
		return AnaliseResult{}, err
	}
	return res, nil
}
