package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/farmatech/farmatech-client/internal/models"
)

// medicamentoWire is the backend's snake_case representation of a
// medication record.
type medicamentoWire struct {
	ID               int     `json:"id"`
	Nome             string  `json:"nome"`
	Quantidade       int     `json:"quantidade"`
	QuantidadeMinima int     `json:"quantidade_minima"`
	Categoria        string  `json:"categoria"`
	Preco            decimal `json:"preco"`
	DataVencimento   string  `json:"data_vencimento"`
}

type medicamentoPayload struct {
	Nome             string  `json:"nome"`
	Quantidade       int     `json:"quantidade"`
	QuantidadeMinima int     `json:"quantidade_minima"`
	Categoria        string  `json:"categoria"`
	Preco            float64 `json:"preco"`
	DataVencimento   string  `json:"data_vencimento"`
}

func (w medicamentoWire) toModel() models.Medicamento {
	return models.Medicamento{
		ID:               w.ID,
		Nome:             w.Nome,
		Quantidade:       w.Quantidade,
		QuantidadeMinima: w.QuantidadeMinima,
		Categoria:        w.Categoria,
		Preco:            float64(w.Preco),
		DataVencimento:   w.DataVencimento,
	}
}

func medicamentoToPayload(m models.Medicamento) medicamentoPayload {
	return medicamentoPayload{
		Nome:             m.Nome,
		Quantidade:       m.Quantidade,
		QuantidadeMinima: m.QuantidadeMinima,
		Categoria:        m.Categoria,
		Preco:            m.Preco,
		DataVencimento:   m.DataVencimento,
	}
}

// Medicamentos returns all medication records of the logged-in pharmacy.
func (c *Client) Medicamentos(ctx context.Context) ([]models.Medicamento, error) {
	var wires []medicamentoWire
	if err := c.do(ctx, http.MethodGet, "/medicamentos/", nil, &wires, true); err != nil {
		return nil, err
	}

	meds := make([]models.Medicamento, len(wires))
	for i, w := range wires {
		meds[i] = w.toModel()
	}
	return meds, nil
}

func (c *Client) CreateMedicamento(ctx context.Context, med models.Medicamento) (models.Medicamento, error) {
	var wire medicamentoWire
	if err := c.do(ctx, http.MethodPost, "/medicamentos/", medicamentoToPayload(med), &wire, true); err != nil {
		return models.Medicamento{}, err
	}
	return wire.toModel(), nil
}

func (c *Client) UpdateMedicamento(ctx context.Context, med models.Medicamento) (models.Medicamento, error) {
	var wire medicamentoWire
	path := fmt.Sprintf("/medicamentos/%d/", med.ID)
	if err := c.do(ctx, http.MethodPut, path, medicamentoToPayload(med), &wire, true); err != nil {
		return models.Medicamento{}, err
	}
	return wire.toModel(), nil
}

func (c *Client) DeleteMedicamento(ctx context.Context, id int) error {
	path := fmt.Sprintf("/medicamentos/%d/", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}
