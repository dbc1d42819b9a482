package gateway

import (
	"context"
	"net/http"

	"github.com/farmatech/farmatech-client/internal/models"
)

// NovoMovimento is the creation request for a stock movement. The timestamp
// is assigned by the backend.
type NovoMovimento struct {
	MedicamentoID int
	Tipo          string
	Quantidade    int
	Observacoes   string
}

type movimentoWire struct {
	ID          int    `json:"id"`
	Medicamento int    `json:"medicamento"`
	Tipo        string `json:"tipo"`
	Quantidade  int    `json:"quantidade"`
	Data        string `json:"data"`
	Observacoes string `json:"observacoes"`
}

func (w movimentoWire) toModel() models.Movimento {
	return models.Movimento{
		ID:            w.ID,
		MedicamentoID: w.Medicamento,
		Tipo:          w.Tipo,
		Quantidade:    w.Quantidade,
		Data:          w.Data,
		Observacoes:   w.Observacoes,
	}
}

// Movimentos returns the full movement ledger of the logged-in pharmacy.
func (c *Client) Movimentos(ctx context.Context) ([]models.Movimento, error) {
	var wires []movimentoWire
	if err := c.do(ctx, http.MethodGet, "/movimentos/", nil, &wires, true); err != nil {
		return nil, err
	}

	movs := make([]models.Movimento, len(wires))
	for i, w := range wires {
		movs[i] = w.toModel()
	}
	return movs, nil
}

func (c *Client) CreateMovimento(ctx context.Context, novo NovoMovimento) (models.Movimento, error) {
	payload := map[string]any{
		"medicamento": novo.MedicamentoID,
		"tipo":        novo.Tipo,
		"quantidade":  novo.Quantidade,
		"observacoes": novo.Observacoes,
	}

	var wire movimentoWire
	if err := c.do(ctx, http.MethodPost, "/movimentos/", payload, &wire, true); err != nil {
		return models.Movimento{}, err
	}
	return wire.toModel(), nil
}
