package notify

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/farmatech/farmatech-client/internal/models"
)

func newTestNotifier(t *testing.T) (*Notifier, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	n := New(rdb, context.Background(), SMTPConfig{
		From:   "alertas@farmatech.com.br",
		To:     "responsavel@farmatech.com.br",
		Server: "smtp.example.com",
		Port:   "587",
	})
	return n, rdb
}

func alerta(id, tipo string) models.Alerta {
	return models.Alerta{
		ID:          id,
		Medicamento: models.Medicamento{ID: 1, Nome: "Dipirona"},
		Tipo:        tipo,
		Mensagem:    "Estoque baixo: 2 unidades (mínimo: 5)",
		Data:        time.Now(),
	}
}

func TestEnabled(t *testing.T) {
	n, _ := newTestNotifier(t)
	if !n.Enabled() {
		t.Error("notifier with redis and SMTP settings should be enabled")
	}

	var nilNotifier *Notifier
	if nilNotifier.Enabled() {
		t.Error("nil notifier should be disabled")
	}

	noSMTP := New(nil, context.Background(), SMTPConfig{})
	if noSMTP.Enabled() {
		t.Error("notifier without redis or SMTP settings should be disabled")
	}
}

func TestRecordAlertsAppendsToDailyLog(t *testing.T) {
	n, rdb := newTestNotifier(t)

	n.RecordAlerts([]models.Alerta{
		alerta("baixo_1", models.AlertaEstoqueBaixo),
		alerta("venc_2", models.AlertaVencimentoProximo),
	})
	n.RecordAlerts([]models.Alerta{
		alerta("baixo_1", models.AlertaEstoqueBaixo), // repeat load, duplicate entry
	})

	count, err := rdb.LLen(context.Background(), DailyAlertLogKey).Result()
	if err != nil {
		t.Fatalf("LLen failed: %v", err)
	}
	if count != 3 {
		t.Errorf("daily log holds %d entries, want 3 (duplicates collapse at summary time)", count)
	}
}

func TestSendDailySummaryClearsLog(t *testing.T) {
	n, rdb := newTestNotifier(t)

	n.RecordAlerts([]models.Alerta{alerta("baixo_1", models.AlertaEstoqueBaixo)})
	n.SendDailySummary()

	count, err := rdb.LLen(context.Background(), DailyAlertLogKey).Result()
	if err != nil {
		t.Fatalf("LLen failed: %v", err)
	}
	if count != 0 {
		t.Errorf("daily log holds %d entries after summary, want 0", count)
	}
}

func TestSendDailySummaryEmptyLogIsNoop(t *testing.T) {
	n, _ := newTestNotifier(t)
	n.SendDailySummary() // must not panic or send anything
}
