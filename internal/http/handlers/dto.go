package handlers

import (
	"github.com/farmatech/farmatech-client/internal/models"
)

type CredentialsRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type RegisterRequest struct {
	Email           string `json:"email"`
	Senha           string `json:"senha"`
	Telefone        string `json:"telefone,omitempty"`
	FarmaciaName    string `json:"farmaciaName"`
	ResponsavelName string `json:"responsavelName"`
}

type LoginResult struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type MedicamentoRequest struct {
	Nome             string  `json:"nome"`
	Quantidade       int     `json:"quantidade"`
	QuantidadeMinima int     `json:"quantidadeMinima"`
	Categoria        string  `json:"categoria"`
	Preco            float64 `json:"preco"`
	DataVencimento   string  `json:"dataVencimento"`
}

type MedicamentoResponse struct {
	models.Medicamento
	EstoqueBaixo bool `json:"estoqueBaixo,omitempty"`
}

type MovimentoRequest struct {
	MedicamentoID int    `json:"medicamentoId"`
	Tipo          string `json:"tipo"`
	Quantidade    int    `json:"quantidade"`
	Observacoes   string `json:"observacoes,omitempty"`
}

type VendaRequest struct {
	Itens          []models.VendaItem `json:"itens"`
	Total          float64            `json:"total"`
	FormaPagamento string             `json:"formaPagamento"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type MovimentosSearchResult struct {
	Data []models.Movimento `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type VendasSearchResult struct {
	Data []models.Venda `json:"data"`
	Meta Meta           `json:"meta,omitempty"`
}

type AlertasResult struct {
	Alertas   []models.Alerta      `json:"alertas"`
	Expirados []models.Medicamento `json:"expirados"`
}

type AVencerItem struct {
	models.Medicamento
	DiasRestantes int `json:"diasRestantes"`
}
