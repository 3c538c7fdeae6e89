// Package newsletter keeps subscriptions in process memory, indexed
// by email and by opt-out token.
package newsletter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/internal/core/port"
	"github.com/techreviews/backend/pkg/apperr"
)

var _ port.SubscriberStore = (*Store)(nil)

type Store struct {
	mu      sync.RWMutex
	byEmail map[string]domain.Subscription
	byToken map[string]string
}

func New() *Store {
	return &Store{
		byEmail: make(map[string]domain.Subscription),
		byToken: make(map[string]string),
	}
}

func (s *Store) Save(ctx context.Context, sub domain.Subscription) error {
	const op = "newsletter.Store.Save"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	email := strings.ToLower(sub.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byEmail[email]; ok {
		delete(s.byToken, prev.Token)
	}
	s.byEmail[email] = sub
	s.byToken[sub.Token] = email
	return nil
}

func (s *Store) ByEmail(_ context.Context, email string) (domain.Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.byEmail[strings.ToLower(email)]
	return sub, ok
}

func (s *Store) ByToken(_ context.Context, token string) (domain.Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.byToken[token]
	if !ok {
		return domain.Subscription{}, false
	}
	return s.byEmail[email], true
}

func (s *Store) SetStatus(
	ctx context.Context, token string, status domain.SubscriptionStatus,
) error {
	const op = "newsletter.Store.SetStatus"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email, ok := s.byToken[token]
	if !ok {
		return fmt.Errorf("%s: %w", op, apperr.NotFound("subscription"))
	}
	sub := s.byEmail[email]
	sub.Status = status
	s.byEmail[email] = sub
	return nil
}
