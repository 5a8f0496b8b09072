// Package mailer sends the purchase confirmation email over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"vinyl-store/internal/config"
	"vinyl-store/internal/events"
	"vinyl-store/internal/util"
)

type Mailer struct {
	cfg    config.EmailConfig
	logger *zap.Logger
}

func NewMailer(cfg config.EmailConfig, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// HandlePurchaseCompleted is the bus subscriber: it formats and sends the
// confirmation. Delivery failures are logged and counted, never surfaced to
// the purchase flow.
func (m *Mailer) HandlePurchaseCompleted(event events.PurchaseCompleted) {
	subject, text, html := BuildPurchaseConfirmation(event)

	if err := m.Send(event.User.Email, subject, text, html); err != nil {
		util.EmailsFailedTotal.Inc()
		m.logger.Error("failed to send purchase confirmation",
			zap.String("to", event.User.Email),
			zap.String("vinyl", event.VinylName),
			zap.Error(err))
		return
	}

	util.EmailsSentTotal.Inc()
	m.logger.Info("purchase confirmation sent",
		zap.String("to", event.User.Email),
		zap.String("vinyl", event.VinylName))
}

// BuildPurchaseConfirmation renders the subject and the plain-text and HTML
// bodies for a purchase event.
func BuildPurchaseConfirmation(event events.PurchaseCompleted) (subject, text, html string) {
	subject = fmt.Sprintf("Purchase Confirmation for %s", event.VinylName)
	text = fmt.Sprintf("You purchased %d copy of %q for a total of $%v.",
		event.Count, event.VinylName, event.TotalPrice)
	html = fmt.Sprintf(`<div style="width: 100%%; max-width: 600px; margin: 0 auto; padding: 20px; font-family: Arial, sans-serif; text-align: center;">
  <h1 style="color: #4CAF50;">Purchase Confirmation</h1>
  <p style="font-size: 16px;">
    You purchased <span style="color: #4CAF50;">%d</span> copy of
    <span style="color: #4CAF50;">%q</span> for a total of
    <span style="color: #4CAF50;">$%v</span>.
  </p>
  <p style="font-size: 14px; color: #333;">
    Dear <span style="color: #4CAF50;">%s</span>, thank you for your purchase!
  </p>
</div>`, event.Count, event.VinylName, event.TotalPrice, event.User.FirstName)
	return subject, text, html
}

// Send delivers a multipart/alternative message with plain-text and HTML
// variants through the configured SMTP server.
func (m *Mailer) Send(to, subject, text, html string) error {
	const boundary = "vinyl-store-alt"

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%s\r\n", boundary)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(text)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	msg.WriteString(html)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String()))
}
