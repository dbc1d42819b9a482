package gateway

import (
	"context"
	"net/http"

	"github.com/farmatech/farmatech-client/internal/models"
)

// NovaVenda is the creation request for a sale.
type NovaVenda struct {
	Itens          []models.VendaItem
	Total          float64
	FormaPagamento string
}

type vendaItemWire struct {
	Medicamento   int     `json:"medicamento"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario decimal `json:"preco_unitario"`
}

type vendaWire struct {
	ID             int             `json:"id"`
	Itens          []vendaItemWire `json:"itens"`
	Total          decimal         `json:"total"`
	Data           string          `json:"data"`
	FormaPagamento string          `json:"forma_pagamento"`
}

func (w vendaWire) toModel() models.Venda {
	itens := make([]models.VendaItem, len(w.Itens))
	for i, item := range w.Itens {
		itens[i] = models.VendaItem{
			MedicamentoID: item.Medicamento,
			Quantidade:    item.Quantidade,
			PrecoUnitario: float64(item.PrecoUnitario),
		}
	}
	return models.Venda{
		ID:             w.ID,
		Itens:          itens,
		Total:          float64(w.Total),
		Data:           w.Data,
		FormaPagamento: w.FormaPagamento,
	}
}

// Vendas returns the full sales ledger of the logged-in pharmacy.
func (c *Client) Vendas(ctx context.Context) ([]models.Venda, error) {
	var wires []vendaWire
	if err := c.do(ctx, http.MethodGet, "/vendas/", nil, &wires, true); err != nil {
		return nil, err
	}

	vendas := make([]models.Venda, len(wires))
	for i, w := range wires {
		vendas[i] = w.toModel()
	}
	return vendas, nil
}

func (c *Client) CreateVenda(ctx context.Context, nova NovaVenda) (models.Venda, error) {
	itens := make([]map[string]any, len(nova.Itens))
	for i, item := range nova.Itens {
		itens[i] = map[string]any{
			"medicamento":    item.MedicamentoID,
			"quantidade":     item.Quantidade,
			"preco_unitario": item.PrecoUnitario,
		}
	}
	payload := map[string]any{
		"itens":           itens,
		"total":           nova.Total,
		"forma_pagamento": nova.FormaPagamento,
	}

	var wire vendaWire
	if err := c.do(ctx, http.MethodPost, "/vendas/", payload, &wire, true); err != nil {
		return models.Venda{}, err
	}
	return wire.toModel(), nil
}
