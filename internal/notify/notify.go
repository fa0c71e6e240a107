// SPDX-License-Identifier: Apache-2.0

// Package notify delivers outbound email for the registry: issuance
// notifications to document holders and one-time login codes to
// operators.
//
// Delivery is fire-and-forget. A failed send is logged and dropped; no
// caller ever fails because a mail relay is down.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/service"
	"github.com/veridoc/veridoc/models"
)

// New returns the notifier matching the configuration: a real SMTP sender
// when delivery is enabled, otherwise a logging stub that keeps local
// development mail-server free.
func New(cfg config.Notify, log *logger.Logger) service.Notifier {
	if !cfg.Enabled {
		return &LogNotifier{logger: log}
	}
	return &SMTPNotifier{cfg: cfg, logger: log, send: smtp.SendMail}
}

// SMTPNotifier sends mail through a plain SMTP relay.
type SMTPNotifier struct {
	cfg    config.Notify
	logger *logger.Logger

	// send is smtp.SendMail, replaceable in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// SendIssueNotification mails the document holder after a confirmed
// issuance.
func (n *SMTPNotifier) SendIssueNotification(ctx context.Context, document models.Document, verifyURL string) {
	subject := "Your document has been registered"
	body := issueBody(document, verifyURL)
	n.deliver(ctx, document.ContactEmail, subject, body)
}

// SendLoginCode mails a one-time login code to an operator.
func (n *SMTPNotifier) SendLoginCode(ctx context.Context, admin models.Admin, code string, ttl time.Duration) {
	subject := "Your one-time login code"
	body := loginCodeBody(admin, code, ttl)
	n.deliver(ctx, admin.Email, subject, body)
}

// deliver sends asynchronously; the caller never waits on the relay.
func (n *SMTPNotifier) deliver(_ context.Context, to, subject, body string) {
	log := n.logger.With().Str("func", "SMTPNotifier.deliver").Str("to", to).Logger()

	if to == "" {
		return
	}

	msg := buildMessage(n.cfg.From, to, subject, body)

	go func() {
		addr := fmt.Sprintf("%s:%d", n.cfg.SMTPHost, n.cfg.SMTPPort)

		var auth smtp.Auth
		if n.cfg.Username != "" {
			auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.SMTPHost)
		}

		if err := n.send(addr, auth, n.cfg.From, []string{to}, msg); err != nil {
			log.Err(err).Msg("email delivery failed")
			return
		}
		log.Debug().Str("subject", subject).Msg("email delivered")
	}()
}

// LogNotifier is the disabled-delivery notifier. Every message is logged
// instead of sent. One-time codes are never written to the log.
type LogNotifier struct {
	logger *logger.Logger
}

// SendIssueNotification implements the notifier contract by logging only.
func (n *LogNotifier) SendIssueNotification(_ context.Context, document models.Document, verifyURL string) {
	n.logger.Info().
		Str("to", document.ContactEmail).
		Str("hash", document.Hash).
		Str("verify_url", verifyURL).
		Msg("mail delivery disabled: dropping issuance notification")
}

// SendLoginCode implements the notifier contract by logging only.
func (n *LogNotifier) SendLoginCode(_ context.Context, admin models.Admin, _ string, ttl time.Duration) {
	n.logger.Info().
		Str("to", admin.Email).
		Dur("ttl", ttl).
		Msg("mail delivery disabled: dropping login code")
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

func issueBody(document models.Document, verifyURL string) string {
	var b strings.Builder
	name := document.PrimaryName
	if name == "" {
		name = "there"
	}
	fmt.Fprintf(&b, "Hello %s,\n\n", name)
	fmt.Fprintf(&b, "Your document (%s) has been registered.\n\n", document.DocumentType)
	fmt.Fprintf(&b, "Document hash: %s\n", document.Hash)
	fmt.Fprintf(&b, "Transaction:   %s\n", document.TxHash)
	fmt.Fprintf(&b, "Valid until:   %s\n", document.ExpiryDate)
	if verifyURL != "" {
		fmt.Fprintf(&b, "\nAnyone can verify it at:\n%s\n", verifyURL)
	}
	return b.String()
}

func loginCodeBody(admin models.Admin, code string, ttl time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", admin.Name)
	fmt.Fprintf(&b, "Your one-time login code is: %s\n\n", code)
	fmt.Fprintf(&b, "It expires in %s and can be used once.\n", ttl)
	b.WriteString("If you did not request this code, ignore this message.\n")
	return b.String()
}
