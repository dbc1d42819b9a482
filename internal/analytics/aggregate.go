package analytics

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/farmatech/farmatech-client/internal/models"
)

var nomesMeses = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// PeriodoBucket is one chart bucket of the movement series: inbound and
// outbound sums plus their per-bucket (non-cumulative) balance.
type PeriodoBucket struct {
	Periodo  string `json:"periodo"`
	Entradas int    `json:"entradas"`
	Saidas   int    `json:"saidas"`
	Saldo    int    `json:"saldo"`
}

// VendaBucket is one chart bucket of the sales series: total value and
// record count.
type VendaBucket struct {
	Periodo    string  `json:"periodo"`
	Vendas     float64 `json:"vendas"`
	Quantidade int     `json:"quantidade"`
}

// MovimentoSeries buckets movements for chart rendering. With month == 0 it
// returns twelve calendar-month buckets, Jan through Dez, regardless of
// input order. Otherwise it returns per-day buckets for the selected month,
// capped at 30 days: the 31st day of longer months is dropped. That cap
// matches the shipped chart behavior and is pinned by a regression test; do
// not change it without product sign-off.
func MovimentoSeries(movs []models.Movimento, year, month int) []PeriodoBucket {
	if month == 0 {
		buckets := make([]PeriodoBucket, 12)
		for i := range buckets {
			buckets[i].Periodo = nomesMeses[i]
		}
		for _, mov := range movs {
			ts, ok := parseData(mov.Data)
			if !ok {
				continue
			}
			b := &buckets[int(ts.Month())-1]
			addMovimento(b, mov)
		}
		for i := range buckets {
			buckets[i].Saldo = buckets[i].Entradas - buckets[i].Saidas
		}
		return buckets
	}

	dias := daysInMonth(year, month)
	if dias > 30 {
		dias = 30
	}
	buckets := make([]PeriodoBucket, dias)
	for i := range buckets {
		buckets[i].Periodo = formatDia(i + 1)
	}
	for _, mov := range movs {
		ts, ok := parseData(mov.Data)
		if !ok {
			continue
		}
		if ts.Year() != year || int(ts.Month()) != month || ts.Day() > dias {
			continue
		}
		addMovimento(&buckets[ts.Day()-1], mov)
	}
	for i := range buckets {
		buckets[i].Saldo = buckets[i].Entradas - buckets[i].Saidas
	}
	return buckets
}

// VendaSeries buckets sales the same way MovimentoSeries buckets movements,
// summing totals and counting records per bucket.
func VendaSeries(vendas []models.Venda, year, month int) []VendaBucket {
	if month == 0 {
		buckets := make([]VendaBucket, 12)
		for i := range buckets {
			buckets[i].Periodo = nomesMeses[i]
		}
		for _, venda := range vendas {
			ts, ok := parseData(venda.Data)
			if !ok {
				continue
			}
			b := &buckets[int(ts.Month())-1]
			b.Vendas += venda.Total
			b.Quantidade++
		}
		return buckets
	}

	dias := daysInMonth(year, month)
	if dias > 30 {
		dias = 30
	}
	buckets := make([]VendaBucket, dias)
	for i := range buckets {
		buckets[i].Periodo = formatDia(i + 1)
	}
	for _, venda := range vendas {
		ts, ok := parseData(venda.Data)
		if !ok {
			continue
		}
		if ts.Year() != year || int(ts.Month()) != month || ts.Day() > dias {
			continue
		}
		b := &buckets[ts.Day()-1]
		b.Vendas += venda.Total
		b.Quantidade++
	}
	return buckets
}

// SaldoPonto is one day of the cumulative balance series.
type SaldoPonto struct {
	Data  string `json:"data"` // YYYY-MM-DD
	Saldo int    `json:"saldo"`
}

// SaldoAcumulado derives the running balance after each movement, ordered
// by timestamp ascending, then forward-fills it per calendar day between
// the earliest and latest movement dates: days without movements carry the
// prior day's balance. An empty input yields an empty series.
func SaldoAcumulado(movs []models.Movimento) []SaldoPonto {
	type evento struct {
		ts    time.Time
		delta int
	}

	eventos := make([]evento, 0, len(movs))
	for _, mov := range movs {
		ts, ok := parseData(mov.Data)
		if !ok {
			continue
		}
		delta := mov.Quantidade
		if mov.Tipo == models.TipoSaida {
			delta = -delta
		}
		eventos = append(eventos, evento{ts: ts, delta: delta})
	}
	if len(eventos) == 0 {
		return []SaldoPonto{}
	}

	sort.SliceStable(eventos, func(i, j int) bool {
		return eventos[i].ts.Before(eventos[j].ts)
	})

	saldoPorDia := map[string]int{}
	saldo := 0
	for _, ev := range eventos {
		saldo += ev.delta
		saldoPorDia[ev.ts.Format("2006-01-02")] = saldo
	}

	first := dateOf(eventos[0].ts)
	last := dateOf(eventos[len(eventos)-1].ts)

	serie := []SaldoPonto{}
	atual := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if v, ok := saldoPorDia[key]; ok {
			atual = v
		}
		serie = append(serie, SaldoPonto{Data: key, Saldo: atual})
	}
	return serie
}

// Resumo holds the summary-card totals for a filtered period.
type Resumo struct {
	TotalEntradas int     `json:"totalEntradas"`
	TotalSaidas   int     `json:"totalSaidas"`
	SaldoGeral    int     `json:"saldoGeral"`
	VendasPeriodo float64 `json:"vendasPeriodo"`
}

// NewResumo computes the summary totals over already-filtered collections.
func NewResumo(movs []models.Movimento, vendas []models.Venda) Resumo {
	var r Resumo
	for _, mov := range movs {
		switch mov.Tipo {
		case models.TipoEntrada:
			r.TotalEntradas += mov.Quantidade
		case models.TipoSaida:
			r.TotalSaidas += mov.Quantidade
		}
	}
	r.SaldoGeral = r.TotalEntradas - r.TotalSaidas
	for _, venda := range vendas {
		r.VendasPeriodo += venda.Total
	}
	r.VendasPeriodo = math.Round(r.VendasPeriodo*100) / 100
	return r
}

func addMovimento(b *PeriodoBucket, mov models.Movimento) {
	switch mov.Tipo {
	case models.TipoEntrada:
		b.Entradas += mov.Quantidade
	case models.TipoSaida:
		b.Saidas += mov.Quantidade
	}
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func formatDia(dia int) string {
	return strconv.Itoa(dia)
}
