package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/pkg/apperr"
	"github.com/techreviews/backend/pkg/i18n"
)

// Subscribe registers an email for the newsletter and sends a
// localized confirmation. Subscribing an address that is already
// active is idempotent; a previously unsubscribed address is
// reactivated with a fresh token.
func (s *Service) Subscribe(
	ctx context.Context, email string, locale i18n.Locale,
) (domain.Subscription, error) {
	const op = "Service.Subscribe"
	log := s.log.With("op", op)

	if s.subscribers == nil {
		return domain.Subscription{}, fmt.Errorf("%s: %w", op,
			apperr.Internal("newsletter store not configured"))
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Subscription{}, fmt.Errorf("%s: %w", op,
			apperr.InvalidInput("email").WithCause(err))
	}

	if existing, ok := s.subscribers.ByEmail(ctx, email); ok &&
		existing.Status == domain.SubscriptionActive {
		return existing, nil
	}

	sub := domain.Subscription{
		Email:        email,
		Locale:       locale,
		Token:        uuid.NewString(),
		Status:       domain.SubscriptionActive,
		SubscribedAt: time.Now().UTC(),
	}
	if err := s.subscribers.Save(ctx, sub); err != nil {
		return domain.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendConfirmation(ctx, sub); err != nil {
			// The subscription stands even when the mail bounces.
			log.WarnContext(ctx, "confirmation mail failed", "email", email, "error", err)
		}
	}
	return sub, nil
}

// Unsubscribe deactivates the subscription behind an opt-out token.
// Repeating it for an already inactive token succeeds.
func (s *Service) Unsubscribe(ctx context.Context, token string) error {
	const op = "Service.Unsubscribe"
	log := s.log.With("op", op)

	if s.subscribers == nil {
		return fmt.Errorf("%s: %w", op, apperr.Internal("newsletter store not configured"))
	}

	sub, ok := s.subscribers.ByToken(ctx, token)
	if !ok {
		return fmt.Errorf("%s: %w", op, apperr.NotFound("subscription"))
	}
	if sub.Status == domain.SubscriptionUnsubscribed {
		return nil
	}

	if err := s.subscribers.SetStatus(ctx, token, domain.SubscriptionUnsubscribed); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendGoodbye(ctx, sub); err != nil {
			log.WarnContext(ctx, "goodbye mail failed", "email", sub.Email, "error", err)
		}
	}
	return nil
}
