package gateway

import (
	"context"

	"github.com/farmatech/farmatech-client/internal/models"
)

// Per-resource views of the gateway, so handlers depend only on the calls
// they make.

type AuthAPI interface {
	Login(ctx context.Context, email, senha string) (models.User, error)
	Register(ctx context.Context, reg Registration) (models.User, error)
	Logout() error
	CurrentUser() (models.User, error)
}

type MedicamentoAPI interface {
	Medicamentos(ctx context.Context) ([]models.Medicamento, error)
	CreateMedicamento(ctx context.Context, med models.Medicamento) (models.Medicamento, error)
	UpdateMedicamento(ctx context.Context, med models.Medicamento) (models.Medicamento, error)
	DeleteMedicamento(ctx context.Context, id int) error
}

type MovimentoAPI interface {
	Movimentos(ctx context.Context) ([]models.Movimento, error)
	CreateMovimento(ctx context.Context, novo NovoMovimento) (models.Movimento, error)
}

type VendaAPI interface {
	Vendas(ctx context.Context) ([]models.Venda, error)
	CreateVenda(ctx context.Context, nova NovaVenda) (models.Venda, error)
}

type AnaliseAPI interface {
	Analyze(ctx context.Context, req AnaliseRequest) (AnaliseResult, error)
}

var (
	_ AuthAPI        = (*Client)(nil)
	_ MedicamentoAPI = (*Client)(nil)
	_ MovimentoAPI   = (*Client)(nil)
	_ VendaAPI       = (*Client)(nil)
	_ AnaliseAPI     = (*Client)(nil)
)
