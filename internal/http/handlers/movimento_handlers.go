package handlers

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/farmatech/farmatech-client/internal/analytics"
	"github.com/farmatech/farmatech-client/internal/gateway"
	"github.com/farmatech/farmatech-client/internal/models"
)

// criteriaFromQuery builds a filter from the screen's query parameters:
// startDate, endDate (YYYY-MM-DD), medicamentoId, tipo, month, year.
func criteriaFromQuery(q url.Values) (analytics.Criteria, error) {
	var c analytics.Criteria

	if s := q.Get("startDate"); s != "" {
		ts, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c, fmt.Errorf("invalid startDate format")
		}
		c.StartDate = &ts
	}
	if s := q.Get("endDate"); s != "" {
		ts, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c, fmt.Errorf("invalid endDate format")
		}
		c.EndDate = &ts
	}
	if s := q.Get("medicamentoId"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			return c, fmt.Errorf("invalid medicamentoId")
		}
		c.MedicamentoID = &id
	}
	if s := q.Get("tipo"); s != "" {
		if s != models.TipoEntrada && s != models.TipoSaida {
			return c, fmt.Errorf("tipo must be entrada or saida")
		}
		c.Tipo = s
	}
	if s := q.Get("month"); s != "" {
		month, err := strconv.Atoi(s)
		if err != nil || month < 0 || month > 12 {
			return c, fmt.Errorf("month must be between 0 and 12")
		}
		c.Month = month
	}
	if s := q.Get("year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			return c, fmt.Errorf("invalid year")
		}
		c.Year = year
	}
	return c, nil
}

// GetMovimentosHandler godoc
// @Summary Stock movement ledger, optionally filtered
// @Tags movimentos
// @Produce json
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param medicamentoId query int false "Filter by medication"
// @Param tipo query string false "entrada or saida"
// @Param month query int false "Calendar month (1-12)"
// @Param year query int false "Calendar year"
// @Success 200 {object} MovimentosSearchResult
// @Failure 400 {string} string "Invalid input"
// @Router /movimentos [get]
// @Security BearerAuth
func GetMovimentosHandler(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	movs, err := movimentoAPI.Movimentos(r.Context())
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	filtered := analytics.FilterMovimentos(movs, criteria)
	result := MovimentosSearchResult{
		Data: filtered,
		Meta: Meta{TotalCount: len(filtered)},
	}
	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// CreateMovimentoHandler godoc
// @Summary Register a stock movement
// @Tags movimentos
// @Accept json
// @Produce json
// @Param movimento body MovimentoRequest true "Movement to register"
// @Success 201 {object} models.Movimento
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Medication not found"
// @Failure 409 {string} string "Insufficient stock"
// @Router /movimentos [post]
// @Security BearerAuth
func CreateMovimentoHandler(w http.ResponseWriter, r *http.Request) {
	var req MovimentoRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateMovimento(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	// An outbound movement must not exceed the current on-hand quantity.
	// The backend enforces this too; checking here keeps the error local
	// and the message precise.
	if req.Tipo == models.TipoSaida {
		meds, err := medicamentoAPI.Medicamentos(r.Context())
		if err != nil {
			writeGatewayError(w, err)
			return
		}
		var found *models.Medicamento
		for i := range meds {
			if meds[i].ID == req.MedicamentoID {
				found = &meds[i]
				break
			}
		}
		if found == nil {
			http.Error(w, "medicamento não encontrado", http.StatusNotFound)
			return
		}
		if req.Quantidade > found.Quantidade {
			http.Error(w, "quantidade insuficiente em estoque", http.StatusConflict)
			return
		}
	}

	created, err := movimentoAPI.CreateMovimento(r.Context(), gateway.NovoMovimento{
		MedicamentoID: req.MedicamentoID,
		Tipo:          req.Tipo,
		Quantidade:    req.Quantidade,
		Observacoes:   req.Observacoes,
	})
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// ExportMovimentosHandler godoc
// @Summary Export the movement ledger
// @Tags movimentos
// @Produce text/csv, application/json
// @Param format query string true "Export format (csv or json)"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Router /movimentos/export [get]
// @Security BearerAuth
func ExportMovimentosHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	criteria, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	movs, err := movimentoAPI.Movimentos(r.Context())
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	filtered := analytics.FilterMovimentos(movs, criteria)

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="movimentos.json"`)
		writeJSON(w, http.StatusOK, filtered)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="movimentos.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "medicamento_id", "tipo", "quantidade", "data", "observacoes"})
		for _, m := range filtered {
			_ = csvWriter.Write([]string{
				strconv.Itoa(m.ID),
				strconv.Itoa(m.MedicamentoID),
				m.Tipo,
				strconv.Itoa(m.Quantidade),
				m.Data,
				m.Observacoes,
			})
		}
		csvWriter.Flush()
	}
}
