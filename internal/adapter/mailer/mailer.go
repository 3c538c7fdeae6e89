// Package mailer sends transactional newsletter mail through SendGrid.
// Without an API key it degrades to a logging no-op so local setups
// run without credentials.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/internal/core/port"
	"github.com/techreviews/backend/pkg/apperr"
	"github.com/techreviews/backend/pkg/i18n"
)

var _ port.Mailer = (*SendGridMailer)(nil)

type SendGridMailer struct {
	log       *slog.Logger
	cl        *sendgrid.Client
	fromName  string
	fromEmail string
	siteURL   string
}

func New(log *slog.Logger, apiKey, fromName, fromEmail, siteURL string) *SendGridMailer {
	m := &SendGridMailer{
		log:       log,
		fromName:  fromName,
		fromEmail: fromEmail,
		siteURL:   siteURL,
	}
	if apiKey != "" {
		m.cl = sendgrid.NewSendClient(apiKey)
	}
	return m
}

var confirmationSubject = i18n.LocalizedString{
	He: "ברוכים הבאים לניוזלטר שלנו",
	En: "Welcome to our newsletter",
}

var goodbyeSubject = i18n.LocalizedString{
	He: "ההרשמה בוטלה",
	En: "You have been unsubscribed",
}

func (m *SendGridMailer) SendConfirmation(
	ctx context.Context, sub domain.Subscription,
) error {
	const op = "SendGridMailer.SendConfirmation"

	body := m.confirmationBody(sub)
	if err := m.send(ctx, sub, confirmationSubject.Get(sub.Locale), body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (m *SendGridMailer) SendGoodbye(
	ctx context.Context, sub domain.Subscription,
) error {
	const op = "SendGridMailer.SendGoodbye"

	body := m.goodbyeBody(sub)
	if err := m.send(ctx, sub, goodbyeSubject.Get(sub.Locale), body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (m *SendGridMailer) send(
	ctx context.Context, sub domain.Subscription, subject, body string,
) error {
	if m.cl == nil {
		m.log.InfoContext(ctx, "mail delivery disabled, skipping",
			"to", sub.Email, "subject", subject)
		return nil
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail("", sub.Email)
	msg := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := m.cl.SendWithContext(ctx, msg)
	if err != nil {
		return apperr.External("sendgrid request failed", 0).WithCause(err)
	}
	if resp.StatusCode >= 400 {
		return apperr.External(
			fmt.Sprintf("sendgrid rejected message: status %d", resp.StatusCode), 0)
	}
	return nil
}

func (m *SendGridMailer) confirmationBody(sub domain.Subscription) string {
	unsubURL := fmt.Sprintf("%s/newsletter/unsubscribe?token=%s", m.siteURL, sub.Token)
	if sub.Locale == i18n.Hebrew {
		return fmt.Sprintf(
			"תודה שנרשמתם לניוזלטר שלנו!\nנשלח אליכם את הסקירות והמבצעים החדשים.\n\nלהסרה מרשימת התפוצה: %s\n",
			unsubURL)
	}
	return fmt.Sprintf(
		"Thanks for subscribing to our newsletter!\nWe'll send you the latest reviews and deals.\n\nTo unsubscribe: %s\n",
		unsubURL)
}

func (m *SendGridMailer) goodbyeBody(sub domain.Subscription) string {
	if sub.Locale == i18n.Hebrew {
		return "הוסרתם מרשימת התפוצה. נשמח לראותכם שוב.\n"
	}
	return "You have been removed from our mailing list. We hope to see you again.\n"
}
