package models

// Medicamento represents a medication record in the pharmacy stock.
type Medicamento struct {
	ID               int     `json:"id"`
	Nome             string  `json:"nome"`
	Quantidade       int     `json:"quantidade"`
	QuantidadeMinima int     `json:"quantidadeMinima"`
	Categoria        string  `json:"categoria"`
	Preco            float64 `json:"preco"`
	DataVencimento   string  `json:"dataVencimento"` // calendar date, YYYY-MM-DD
}
