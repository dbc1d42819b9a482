package models

const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// Movimento is a single stock movement event. Immutable once created;
// the timestamp is assigned by the backend.
type Movimento struct {
	ID            int    `json:"id"`
	MedicamentoID int    `json:"medicamentoId"`
	Tipo          string `json:"tipo"`
	Quantidade    int    `json:"quantidade"`
	Data          string `json:"data"`
	Observacoes   string `json:"observacoes,omitempty"`
}
