package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/farmatech/farmatech-client/internal/alerts"
	"github.com/farmatech/farmatech-client/internal/models"
)

// GetMedicamentosHandler godoc
// @Summary List the pharmacy's medication records
// @Tags medicamentos
// @Produce json
// @Success 200 {array} MedicamentoResponse
// @Failure 401 {string} string "Unauthorized"
// @Failure 502 {string} string "Backend unreachable"
// @Router /medicamentos [get]
// @Security BearerAuth
func GetMedicamentosHandler(w http.ResponseWriter, r *http.Request) {
	meds, err := medicamentoAPI.Medicamentos(r.Context())
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	resp := make([]MedicamentoResponse, len(meds))
	for i, med := range meds {
		resp[i] = MedicamentoResponse{
			Medicamento:  med,
			EstoqueBaixo: med.Quantidade <= med.QuantidadeMinima,
		}
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// CreateMedicamentoHandler godoc
// @Summary Add a medication record
// @Tags medicamentos
// @Accept json
// @Produce json
// @Param medicamento body MedicamentoRequest true "Medication to create"
// @Success 201 {object} models.Medicamento
// @Failure 400 {string} string "Invalid input"
// @Router /medicamentos [post]
// @Security BearerAuth
func CreateMedicamentoHandler(w http.ResponseWriter, r *http.Request) {
	var req MedicamentoRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateMedicamento(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	created, err := medicamentoAPI.CreateMedicamento(r.Context(), models.Medicamento{
		Nome:             req.Nome,
		Quantidade:       req.Quantidade,
		QuantidadeMinima: req.QuantidadeMinima,
		Categoria:        req.Categoria,
		Preco:            req.Preco,
		DataVencimento:   req.DataVencimento,
	})
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// UpdateMedicamentoHandler godoc
// @Summary Update a medication record
// @Tags medicamentos
// @Accept json
// @Produce json
// @Param id path int true "Medication ID"
// @Param medicamento body MedicamentoRequest true "Updated fields"
// @Success 200 {object} models.Medicamento
// @Failure 400 {string} string "Invalid input"
// @Router /medicamentos/{id} [put]
// @Security BearerAuth
func UpdateMedicamentoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid medicamento ID", http.StatusBadRequest)
		return
	}

	var req MedicamentoRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateMedicamento(req); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	updated, err := medicamentoAPI.UpdateMedicamento(r.Context(), models.Medicamento{
		ID:               id,
		Nome:             req.Nome,
		Quantidade:       req.Quantidade,
		QuantidadeMinima: req.QuantidadeMinima,
		Categoria:        req.Categoria,
		Preco:            req.Preco,
		DataVencimento:   req.DataVencimento,
	})
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// DeleteMedicamentoHandler godoc
// @Summary Delete a medication record
// @Tags medicamentos
// @Param id path int true "Medication ID"
// @Success 204 {string} string "No content"
// @Failure 400 {string} string "Invalid input"
// @Router /medicamentos/{id} [delete]
// @Security BearerAuth
func DeleteMedicamentoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid medicamento ID", http.StatusBadRequest)
		return
	}

	if err := medicamentoAPI.DeleteMedicamento(r.Context(), id); err != nil {
		writeGatewayError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetMedicamentosAVencerHandler godoc
// @Summary Medications expiring within the configured window (90 days by default)
// @Tags alertas
// @Produce json
// @Success 200 {array} AVencerItem
// @Failure 401 {string} string "Unauthorized"
// @Router /medicamentos/a-vencer [get]
// @Security BearerAuth
func GetMedicamentosAVencerHandler(w http.ResponseWriter, r *http.Request) {
	meds, err := medicamentoAPI.Medicamentos(r.Context())
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	hoje := time.Now()
	proximos := alerts.NearExpiry(meds, hoje, expiryWindowDays)

	resp := make([]AVencerItem, len(proximos))
	for i, med := range proximos {
		dias, _ := alerts.DiasAteVencimento(med, hoje)
		resp[i] = AVencerItem{Medicamento: med, DiasRestantes: dias}
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
