package handlers

import (
	"log"
	"net/http"

	"github.com/farmatech/farmatech-client/internal/analytics"
	"github.com/farmatech/farmatech-client/internal/gateway"
	"github.com/farmatech/farmatech-client/internal/models"
)

// GetVendasHandler godoc
// @Summary Sales ledger, optionally filtered by period
// @Tags vendas
// @Produce json
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param month query int false "Calendar month (1-12)"
// @Param year query int false "Calendar year"
// @Success 200 {object} VendasSearchResult
// @Failure 400 {string} string "Invalid input"
// @Router /vendas [get]
// @Security BearerAuth
func GetVendasHandler(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vendas, err := vendaAPI.Vendas(r.Context())
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	filtered := analytics.FilterVendas(vendas, criteria)
	result := VendasSearchResult{
		Data: filtered,
		Meta: Meta{TotalCount: len(filtered)},
	}
	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// CreateVendaHandler godoc
// @Summary Register a sale
// @Tags vendas
// @Accept json
// @Produce json
// @Param venda body VendaRequest true "Sale to register"
// @Success 201 {object} models.Venda
// @Failure 400 {string} string "Invalid input"
// @Router /vendas [post]
// @Security BearerAuth
func CreateVendaHandler(w http.ResponseWriter, r *http.Request) {
	var req VendaRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateVenda(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	created, err := vendaAPI.CreateVenda(r.Context(), gateway.NovaVenda{
		Itens:          req.Itens,
		Total:          models.TotalItens(req.Itens),
		FormaPagamento: req.FormaPagamento,
	})
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
