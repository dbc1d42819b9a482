package alerts

import (
	"fmt"
	"sort"
	"time"

	"github.com/farmatech/farmatech-client/internal/models"
)

const (
	// JanelaAlertas is the near-expiry window of the general alerts screen.
	JanelaAlertas = 30
	// JanelaAVencer is the wider window of the "medicamentos a vencer" screen.
	JanelaAVencer = 90
)

// DiasAteVencimento returns the whole days until the medication's expiry
// date, counting from hoje. Both sides are built from their declared
// calendar components at UTC midnight, so the result never shifts across
// timezones. Returns false when the expiry date cannot be parsed.
func DiasAteVencimento(med models.Medicamento, hoje time.Time) (int, bool) {
	venc, err := time.Parse("2006-01-02", med.DataVencimento)
	if err != nil {
		return 0, false
	}
	v := time.Date(venc.Year(), venc.Month(), venc.Day(), 0, 0, 0, 0, time.UTC)
	h := time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 0, 0, 0, 0, time.UTC)
	return int(v.Sub(h).Hours() / 24), true
}

// LowStock returns the medications at or below their minimum quantity.
// The boundary value counts as low stock. Backend return order is kept.
func LowStock(meds []models.Medicamento) []models.Medicamento {
	out := []models.Medicamento{}
	for _, med := range meds {
		if med.Quantidade <= med.QuantidadeMinima {
			out = append(out, med)
		}
	}
	return out
}

// NearExpiry returns the medications expiring within windowDays of hoje,
// sorted by expiry date ascending. A medication expiring today is not
// included: the shipped alerts screen counts only strictly future expiry,
// and that behavior is kept until product decides otherwise.
func NearExpiry(meds []models.Medicamento, hoje time.Time, windowDays int) []models.Medicamento {
	out := []models.Medicamento{}
	for _, med := range meds {
		dias, ok := DiasAteVencimento(med, hoje)
		if !ok {
			continue
		}
		if dias > 0 && dias <= windowDays {
			out = append(out, med)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DataVencimento < out[j].DataVencimento
	})
	return out
}

// Expired returns the medications whose expiry date is already past.
// Mirrors NearExpiry's boundary: a medication expiring today is in neither
// list.
func Expired(meds []models.Medicamento, hoje time.Time) []models.Medicamento {
	out := []models.Medicamento{}
	for _, med := range meds {
		dias, ok := DiasAteVencimento(med, hoje)
		if !ok {
			continue
		}
		if dias < 0 {
			out = append(out, med)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DataVencimento < out[j].DataVencimento
	})
	return out
}

// Derive computes the alert list for the alerts screen: low-stock alerts
// followed by near-expiry alerts within windowDays. The generation
// timestamp is hoje; nothing is persisted.
func Derive(meds []models.Medicamento, hoje time.Time, windowDays int) []models.Alerta {
	alertas := []models.Alerta{}

	for _, med := range LowStock(meds) {
		alertas = append(alertas, models.Alerta{
			ID:          fmt.Sprintf("baixo_%d", med.ID),
			Medicamento: med,
			Tipo:        models.AlertaEstoqueBaixo,
			Mensagem:    fmt.Sprintf("Estoque baixo: %d unidades (mínimo: %d)", med.Quantidade, med.QuantidadeMinima),
			Data:        hoje,
		})
	}

	for _, med := range NearExpiry(meds, hoje, windowDays) {
		dias, _ := DiasAteVencimento(med, hoje)
		alertas = append(alertas, models.Alerta{
			ID:          fmt.Sprintf("venc_%d", med.ID),
			Medicamento: med,
			Tipo:        models.AlertaVencimentoProximo,
			Mensagem:    fmt.Sprintf("Vence em %d dias", dias),
			Data:        hoje,
		})
	}

	return alertas
}
