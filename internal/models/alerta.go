package models

import "time"

const (
	AlertaEstoqueBaixo      = "estoque_baixo"
	AlertaVencimentoProximo = "vencimento_proximo"
)

// Alerta is a derived view entity, recomputed from the current medication
// collection on every load. Never persisted.
type Alerta struct {
	ID          string      `json:"id"`
	Medicamento Medicamento `json:"medicamento"`
	Tipo        string      `json:"tipo"`
	Mensagem    string      `json:"mensagem"`
	Data        time.Time   `json:"data"`
}
