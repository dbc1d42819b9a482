package analytics

import (
	"time"

	"github.com/farmatech/farmatech-client/internal/models"
)

// Criteria is a filter over movement or sales records. Every field is
// optional; all present constraints apply together (logical AND).
type Criteria struct {
	StartDate     *time.Time // inclusive, compared on the date part
	EndDate       *time.Time // inclusive, compared on the date part
	MedicamentoID *int       // movements only
	Tipo          string     // movements only; "" matches any
	Month         int        // 1-12; 0 matches any
	Year          int        // 0 matches any
}

func (c Criteria) dateBounded() bool {
	return c.StartDate != nil || c.EndDate != nil || c.Month != 0 || c.Year != 0
}

// matchDate applies the date-bounded constraints to a record timestamp.
// Records whose timestamp cannot be parsed are excluded from any
// date-bounded criterion.
func (c Criteria) matchDate(raw string) bool {
	if !c.dateBounded() {
		return true
	}
	ts, ok := parseData(raw)
	if !ok {
		return false
	}

	day := dateOf(ts)
	if c.StartDate != nil && day.Before(dateOf(*c.StartDate)) {
		return false
	}
	if c.EndDate != nil && day.After(dateOf(*c.EndDate)) {
		return false
	}
	if c.Month != 0 && int(ts.Month()) != c.Month {
		return false
	}
	if c.Year != 0 && ts.Year() != c.Year {
		return false
	}
	return true
}

// FilterMovimentos returns the movements matching the criteria. Pure: the
// input slice is not mutated.
func FilterMovimentos(movs []models.Movimento, c Criteria) []models.Movimento {
	out := []models.Movimento{}
	for _, mov := range movs {
		if c.MedicamentoID != nil && mov.MedicamentoID != *c.MedicamentoID {
			continue
		}
		if c.Tipo != "" && mov.Tipo != c.Tipo {
			continue
		}
		if !c.matchDate(mov.Data) {
			continue
		}
		out = append(out, mov)
	}
	return out
}

// FilterVendas returns the sales matching the criteria. The per-medication
// and movement-kind dimensions do not apply to sales.
func FilterVendas(vendas []models.Venda, c Criteria) []models.Venda {
	out := []models.Venda{}
	for _, venda := range vendas {
		if !c.matchDate(venda.Data) {
			continue
		}
		out = append(out, venda)
	}
	return out
}

var dataLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseData parses a backend timestamp. The backend emits RFC3339-style
// date-times, but older records may carry bare dates.
func parseData(raw string) (time.Time, bool) {
	for _, layout := range dataLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func dateOf(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}
