package handlers

import (
	"github.com/farmatech/farmatech-client/internal/alerts"
	"github.com/farmatech/farmatech-client/internal/gateway"
	"github.com/farmatech/farmatech-client/internal/notify"
)

var (
	authAPI        gateway.AuthAPI
	medicamentoAPI gateway.MedicamentoAPI
	movimentoAPI   gateway.MovimentoAPI
	vendaAPI       gateway.VendaAPI
	analiseAPI     gateway.AnaliseAPI

	notifier *notify.Notifier

	alertWindowDays  = alerts.JanelaAlertas
	expiryWindowDays = alerts.JanelaAVencer
)

func SetAuthAPI(a gateway.AuthAPI) {
	authAPI = a
}

func SetMedicamentoAPI(a gateway.MedicamentoAPI) {
	medicamentoAPI = a
}

func SetMovimentoAPI(a gateway.MovimentoAPI) {
	movimentoAPI = a
}

func SetVendaAPI(a gateway.VendaAPI) {
	vendaAPI = a
}

func SetAnaliseAPI(a gateway.AnaliseAPI) {
	analiseAPI = a
}

func SetGateway(c *gateway.Client) {
	SetAuthAPI(c)
	SetMedicamentoAPI(c)
	SetMovimentoAPI(c)
	SetVendaAPI(c)
	SetAnaliseAPI(c)
}

func SetNotifier(n *notify.Notifier) {
	notifier = n
}

func SetAlertWindows(alertas, aVencer int) {
	alertWindowDays = alertas
	expiryWindowDays = aVencer
}
