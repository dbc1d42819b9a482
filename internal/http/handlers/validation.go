package handlers

import (
	"math"
	"strings"

	"github.com/farmatech/farmatech-client/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateMedicamento(m MedicamentoRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(m.Nome) == "" {
		errs = append(errs, ValidationError{Field: "Nome", Description: "Nome is required"})
	}
	if m.Quantidade < 0 {
		errs = append(errs, ValidationError{Field: "Quantidade", Description: "Quantidade cannot be negative"})
	}
	if m.QuantidadeMinima < 0 {
		errs = append(errs, ValidationError{Field: "QuantidadeMinima", Description: "QuantidadeMinima cannot be negative"})
	}
	if m.Preco < 0 {
		errs = append(errs, ValidationError{Field: "Preco", Description: "Preco cannot be negative"})
	}
	if strings.TrimSpace(m.DataVencimento) == "" {
		errs = append(errs, ValidationError{Field: "DataVencimento", Description: "DataVencimento is required"})
	}
	return errs
}

func validateMovimento(m MovimentoRequest) []ValidationError {
	errs := []ValidationError{}
	if m.MedicamentoID <= 0 {
		errs = append(errs, ValidationError{Field: "MedicamentoID", Description: "MedicamentoID is required"})
	}
	if m.Tipo != models.TipoEntrada && m.Tipo != models.TipoSaida {
		errs = append(errs, ValidationError{Field: "Tipo", Description: "Tipo must be entrada or saida"})
	}
	if m.Quantidade <= 0 {
		errs = append(errs, ValidationError{Field: "Quantidade", Description: "Quantidade must be greater than zero"})
	}
	return errs
}

var formasPagamento = map[string]bool{
	models.PagamentoDinheiro:      true,
	models.PagamentoCartaoDebito:  true,
	models.PagamentoCartaoCredito: true,
	models.PagamentoPix:           true,
}

func validateVenda(v VendaRequest) []ValidationError {
	errs := []ValidationError{}
	if len(v.Itens) == 0 {
		errs = append(errs, ValidationError{Field: "Itens", Description: "at least one item is required"})
	}
	for _, item := range v.Itens {
		if item.MedicamentoID <= 0 {
			errs = append(errs, ValidationError{Field: "Itens", Description: "every item needs a medicamentoId"})
			break
		}
		if item.Quantidade <= 0 {
			errs = append(errs, ValidationError{Field: "Itens", Description: "item quantities must be greater than zero"})
			break
		}
		if item.PrecoUnitario < 0 {
			errs = append(errs, ValidationError{Field: "Itens", Description: "item prices cannot be negative"})
			break
		}
	}
	if !formasPagamento[v.FormaPagamento] {
		errs = append(errs, ValidationError{Field: "FormaPagamento", Description: "FormaPagamento must be dinheiro, cartao_debito, cartao_credito or pix"})
	}
	if len(v.Itens) > 0 && math.Abs(v.Total-models.TotalItens(v.Itens)) > 0.005 {
		errs = append(errs, ValidationError{Field: "Total", Description: "Total must equal the sum of item subtotals"})
	}
	return errs
}

func validateRegistration(req RegisterRequest) []ValidationError {
	errs := []ValidationError{}
	if !strings.Contains(req.Email, "@") {
		errs = append(errs, ValidationError{Field: "Email", Description: "a valid email is required"})
	}
	if len(req.Senha) < 6 {
		errs = append(errs, ValidationError{Field: "Senha", Description: "Senha must have at least 6 characters"})
	}
	if strings.TrimSpace(req.FarmaciaName) == "" {
		errs = append(errs, ValidationError{Field: "FarmaciaName", Description: "FarmaciaName is required"})
	}
	if strings.TrimSpace(req.ResponsavelName) == "" {
		errs = append(errs, ValidationError{Field: "ResponsavelName", Description: "ResponsavelName is required"})
	}
	return errs
}
