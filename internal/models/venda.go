package models

import "math"

const (
	PagamentoDinheiro      = "dinheiro"
	PagamentoCartaoDebito  = "cartao_debito"
	PagamentoCartaoCredito = "cartao_credito"
	PagamentoPix           = "pix"
)

type VendaItem struct {
	MedicamentoID int     `json:"medicamentoId"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"precoUnitario"`
}

// Venda is a sale transaction with one or more line items. Immutable once
// created; the timestamp is assigned by the backend.
type Venda struct {
	ID             int         `json:"id"`
	Itens          []VendaItem `json:"itens"`
	Total          float64     `json:"total"`
	Data           string      `json:"data"`
	FormaPagamento string      `json:"formaPagamento"`
}

// TotalItens computes the sale total as the sum of line extensions,
// rounded to two decimals.
func TotalItens(itens []VendaItem) float64 {
	var total float64
	for _, item := range itens {
		total += float64(item.Quantidade) * item.PrecoUnitario
	}
	return math.Round(total*100) / 100
}
