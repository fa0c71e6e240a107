package notify

import (
	"context"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/models"
)

func TestNew_DisabledReturnsLogNotifier(t *testing.T) {
	notifier := New(config.Notify{Enabled: false}, logger.Nop())

	_, ok := notifier.(*LogNotifier)
	assert.True(t, ok, "disabled delivery must use the logging stub")

	// must not panic or block
	notifier.SendIssueNotification(context.Background(), models.Document{ContactEmail: "a@b.c"}, "")
	notifier.SendLoginCode(context.Background(), models.Admin{Email: "a@b.c"}, "123456", time.Minute)
}

func TestSMTPNotifier_DeliversIssueNotification(t *testing.T) {
	type sent struct {
		addr string
		from string
		to   []string
		msg  string
	}
	delivered := make(chan sent, 1)

	notifier := &SMTPNotifier{
		cfg: config.Notify{
			Enabled:  true,
			SMTPHost: "relay.example.org",
			SMTPPort: 587,
			From:     "registry@example.org",
		},
		logger: logger.Nop(),
		send: func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			delivered <- sent{addr: addr, from: from, to: to, msg: string(msg)}
			return nil
		},
	}

	document := models.Document{
		Hash:         "0xabc",
		DocumentType: "diploma",
		PrimaryName:  "Jordan Woods",
		ContactEmail: "jordan@example.org",
		TxHash:       "0xtx1",
		ExpiryDate:   models.ExpiryLifetime,
	}

	notifier.SendIssueNotification(context.Background(), document, "https://verify.example.org/verify/0xabc")

	select {
	case got := <-delivered:
		assert.Equal(t, "relay.example.org:587", got.addr)
		assert.Equal(t, "registry@example.org", got.from)
		assert.Equal(t, []string{"jordan@example.org"}, got.to)
		assert.Contains(t, got.msg, "Subject: Your document has been registered")
		assert.Contains(t, got.msg, "0xabc")
		assert.Contains(t, got.msg, "https://verify.example.org/verify/0xabc")
	case <-time.After(time.Second):
		t.Fatal("notification was never delivered")
	}
}

func TestSMTPNotifier_SkipsEmptyRecipient(t *testing.T) {
	notifier := &SMTPNotifier{
		cfg:    config.Notify{Enabled: true, SMTPHost: "relay.example.org", From: "registry@example.org"},
		logger: logger.Nop(),
		send: func(string, smtp.Auth, string, []string, []byte) error {
			t.Error("send must not be called without a recipient")
			return nil
		},
	}

	notifier.SendIssueNotification(context.Background(), models.Document{}, "")
	time.Sleep(10 * time.Millisecond)
}

func TestLoginCodeBody(t *testing.T) {
	body := loginCodeBody(models.Admin{Name: "Ops"}, "123456", 10*time.Minute)

	require.Contains(t, body, "123456")
	assert.Contains(t, body, "10m0s")
	assert.Contains(t, body, "used once")
}

func TestBuildMessage_HeaderLayout(t *testing.T) {
	msg := string(buildMessage("from@example.org", "to@example.org", "Subject line", "body text"))

	parts := strings.SplitN(msg, "\r\n\r\n", 2)
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0], "From: from@example.org")
	assert.Contains(t, parts[0], "To: to@example.org")
	assert.Contains(t, parts[0], "Subject: Subject line")
	assert.Equal(t, "body text", parts[1])
}
