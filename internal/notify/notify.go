package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farmatech/farmatech-client/internal/models"
)

const DailyAlertLogKey = "farmatech:alertlog:daily"

// SMTPConfig holds the outgoing-mail settings for alert summaries. An empty
// Server disables sending.
type SMTPConfig struct {
	From     string
	To       string
	Server   string
	Port     string
	User     string
	Password string
}

// Notifier records the stock alerts derived during the day and mails a
// daily summary to the pharmacy responsible.
type Notifier struct {
	rdb  *redis.Client
	ctx  context.Context
	smtp SMTPConfig
}

func New(rdb *redis.Client, ctx context.Context, smtp SMTPConfig) *Notifier {
	return &Notifier{rdb: rdb, ctx: ctx, smtp: smtp}
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.rdb != nil && n.smtp.Server != "" && n.smtp.To != ""
}

// RecordAlerts appends the derived alerts to the daily log. Duplicates are
// collapsed at summary time, so recording on every alert-screen load is fine.
func (n *Notifier) RecordAlerts(alertas []models.Alerta) {
	for _, alerta := range alertas {
		data, err := json.Marshal(alerta)
		if err != nil {
			continue
		}
		if err := n.rdb.RPush(n.ctx, DailyAlertLogKey, data).Err(); err != nil {
			log.Printf("Failed to record alert %s: %v", alerta.ID, err)
			return
		}
	}
}

// StartDailySummary sends the accumulated alert summary at the end of each
// day. Meant to run in its own goroutine.
func (n *Notifier) StartDailySummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		n.SendDailySummary()
	}
}

// SendDailySummary mails an HTML digest of the day's alerts, deduplicated
// by alert id, and clears the log.
func (n *Notifier) SendDailySummary() {
	entries, err := n.rdb.LRange(n.ctx, DailyAlertLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = n.rdb.Del(n.ctx, DailyAlertLogKey).Err() // clear after reading

	seen := map[string]bool{}
	var estoqueBaixo, vencimento []models.Alerta
	for _, item := range entries {
		var alerta models.Alerta
		if err := json.Unmarshal([]byte(item), &alerta); err != nil || seen[alerta.ID] {
			continue
		}
		seen[alerta.ID] = true
		switch alerta.Tipo {
		case models.AlertaEstoqueBaixo:
			estoqueBaixo = append(estoqueBaixo, alerta)
		case models.AlertaVencimentoProximo:
			vencimento = append(vencimento, alerta)
		}
	}
	if len(estoqueBaixo) == 0 && len(vencimento) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString("<h2>Resumo diário de alertas</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total: <strong>%d</strong></p>", len(estoqueBaixo)+len(vencimento)))

	sb.WriteString("<h3>Estoque baixo</h3><ul>")
	for _, alerta := range estoqueBaixo {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b>: %s</li>", alerta.Medicamento.Nome, alerta.Mensagem))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Vencimento próximo</h3><ul>")
	for _, alerta := range vencimento {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b>: %s (vence %s)</li>",
			alerta.Medicamento.Nome, alerta.Mensagem, alerta.Medicamento.DataVencimento))
	}
	sb.WriteString("</ul>")

	subject := "FarmaTech: resumo diário de alertas de estoque"
	msg := strings.Join([]string{
		"From: " + n.smtp.From,
		"To: " + n.smtp.To,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		sb.String(),
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", n.smtp.Server, n.smtp.Port)
	var auth smtp.Auth
	if n.smtp.User != "" {
		auth = smtp.PlainAuth("", n.smtp.User, n.smtp.Password, n.smtp.Server)
	}

	go func() {
		if err := smtp.SendMail(addr, auth, n.smtp.From, []string{n.smtp.To}, []byte(msg)); err != nil {
			log.Printf("Failed to send alert summary email: %v", err)
		}
	}()
}
