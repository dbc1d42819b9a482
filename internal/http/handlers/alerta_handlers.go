package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/farmatech/farmatech-client/internal/alerts"
)

// GetAlertasHandler godoc
// @Summary Low-stock and near-expiry alerts, derived from current stock
// @Tags alertas
// @Produce json
// @Success 200 {object} AlertasResult
// @Failure 401 {string} string "Unauthorized"
// @Failure 502 {string} string "Backend unreachable"
// @Router /alertas [get]
// @Security BearerAuth
func GetAlertasHandler(w http.ResponseWriter, r *http.Request) {
	meds, err := medicamentoAPI.Medicamentos(r.Context())
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	hoje := time.Now()
	result := AlertasResult{
		Alertas:   alerts.Derive(meds, hoje, alertWindowDays),
		Expirados: alerts.Expired(meds, hoje),
	}

	if notifier != nil && notifier.Enabled() {
		notifier.RecordAlerts(result.Alertas)
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
