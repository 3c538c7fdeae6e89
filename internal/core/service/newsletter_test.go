package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techreviews/backend/internal/core/domain"
	"github.com/techreviews/backend/internal/core/service"
	"github.com/techreviews/backend/pkg/apperr"
	"github.com/techreviews/backend/pkg/i18n"
)

type subscriberStoreStub struct {
	mu   sync.Mutex
	subs map[string]domain.Subscription
}

func newSubscriberStoreStub() *subscriberStoreStub {
	return &subscriberStoreStub{subs: make(map[string]domain.Subscription)}
}

func (s *subscriberStoreStub) Save(_ context.Context, sub domain.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub.Email] = sub
	return nil
}

func (s *subscriberStoreStub) ByEmail(_ context.Context, email string) (domain.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subs[email]
	return sub, ok
}

func (s *subscriberStoreStub) ByToken(_ context.Context, token string) (domain.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		if sub.Token == token {
			return sub, true
		}
	}
	return domain.Subscription{}, false
}

func (s *subscriberStoreStub) SetStatus(
	_ context.Context, token string, status domain.SubscriptionStatus,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, sub := range s.subs {
		if sub.Token == token {
			sub.Status = status
			s.subs[email] = sub
			return nil
		}
	}
	return errors.New("token not found")
}

type mailerStub struct {
	confirmations []domain.Subscription
	goodbyes      []domain.Subscription
	fail          bool
}

func (m *mailerStub) SendConfirmation(_ context.Context, sub domain.Subscription) error {
	if m.fail {
		return errors.New("smtp refused")
	}
	m.confirmations = append(m.confirmations, sub)
	return nil
}

func (m *mailerStub) SendGoodbye(_ context.Context, sub domain.Subscription) error {
	if m.fail {
		return errors.New("smtp refused")
	}
	m.goodbyes = append(m.goodbyes, sub)
	return nil
}

func TestSubscribe(t *testing.T) {
	t.Run("NewSubscriber", func(t *testing.T) {
		store, mailer := newSubscriberStoreStub(), &mailerStub{}
		s := newService(service.WithNewsletter(store, mailer))

		sub, err := s.Subscribe(t.Context(), "Reader@Example.com", i18n.Hebrew)
		require.NoError(t, err)
		assert.Equal(t, "reader@example.com", sub.Email)
		assert.Equal(t, i18n.Hebrew, sub.Locale)
		assert.NotEmpty(t, sub.Token)
		assert.Equal(t, domain.SubscriptionActive, sub.Status)
		require.Len(t, mailer.confirmations, 1)
	})

	t.Run("IdempotentWhileActive", func(t *testing.T) {
		store, mailer := newSubscriberStoreStub(), &mailerStub{}
		s := newService(service.WithNewsletter(store, mailer))

		first, err := s.Subscribe(t.Context(), "reader@example.com", i18n.Hebrew)
		require.NoError(t, err)
		second, err := s.Subscribe(t.Context(), "reader@example.com", i18n.Hebrew)
		require.NoError(t, err)

		assert.Equal(t, first.Token, second.Token)
		assert.Len(t, mailer.confirmations, 1)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		s := newService(service.WithNewsletter(newSubscriberStoreStub(), &mailerStub{}))

		_, err := s.Subscribe(t.Context(), "not-an-address", i18n.Hebrew)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.InvalidInput(""))
	})

	t.Run("MailFailureDoesNotLoseSubscription", func(t *testing.T) {
		store := newSubscriberStoreStub()
		s := newService(service.WithNewsletter(store, &mailerStub{fail: true}))

		sub, err := s.Subscribe(t.Context(), "reader@example.com", i18n.English)
		require.NoError(t, err)

		saved, ok := store.ByEmail(t.Context(), sub.Email)
		require.True(t, ok)
		assert.Equal(t, domain.SubscriptionActive, saved.Status)
	})
}

func TestUnsubscribe(t *testing.T) {
	t.Run("DeactivatesAndSendsGoodbye", func(t *testing.T) {
		store, mailer := newSubscriberStoreStub(), &mailerStub{}
		s := newService(service.WithNewsletter(store, mailer))

		sub, err := s.Subscribe(t.Context(), "reader@example.com", i18n.Hebrew)
		require.NoError(t, err)

		require.NoError(t, s.Unsubscribe(t.Context(), sub.Token))

		saved, ok := store.ByEmail(t.Context(), sub.Email)
		require.True(t, ok)
		assert.Equal(t, domain.SubscriptionUnsubscribed, saved.Status)
		assert.Len(t, mailer.goodbyes, 1)
	})

	t.Run("RepeatedUnsubscribeSucceeds", func(t *testing.T) {
		store, mailer := newSubscriberStoreStub(), &mailerStub{}
		s := newService(service.WithNewsletter(store, mailer))

		sub, err := s.Subscribe(t.Context(), "reader@example.com", i18n.Hebrew)
		require.NoError(t, err)

		require.NoError(t, s.Unsubscribe(t.Context(), sub.Token))
		require.NoError(t, s.Unsubscribe(t.Context(), sub.Token))
		assert.Len(t, mailer.goodbyes, 1)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		s := newService(service.WithNewsletter(newSubscriberStoreStub(), &mailerStub{}))

		err := s.Unsubscribe(t.Context(), "no-such-token")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.NotFound(""))
	})
}

func TestNewsletterUnconfigured(t *testing.T) {
	s := newService()

	_, err := s.Subscribe(t.Context(), "reader@example.com", i18n.Hebrew)
	require.Error(t, err)
	assert.False(t, apperr.IsOperational(err))

	err = s.Unsubscribe(t.Context(), "token")
	require.Error(t, err)
}
