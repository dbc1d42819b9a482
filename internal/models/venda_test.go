package models

import "testing"

func TestTotalItens(t *testing.T) {
	tests := []struct {
		name  string
		itens []VendaItem
		want  float64
	}{
		{
			name:  "single item",
			itens: []VendaItem{{MedicamentoID: 1, Quantidade: 3, PrecoUnitario: 9.99}},
			want:  29.97,
		},
		{
			name: "multiple items rounded to two decimals",
			itens: []VendaItem{
				{MedicamentoID: 1, Quantidade: 3, PrecoUnitario: 0.10},
				{MedicamentoID: 2, Quantidade: 1, PrecoUnitario: 2.675},
			},
			want: 2.98,
		},
		{
			name:  "no items",
			itens: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalItens(tt.itens); got != tt.want {
				t.Errorf("expected total %v, got %v", tt.want, got)
			}
		})
	}
}
