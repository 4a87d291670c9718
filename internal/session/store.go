package session

import (
	"context"
	"errors"
	"github.com/asaskevich/EventBus"
	"github.com/carehive/ats-admin/internal/events"
	"github.com/carehive/ats-admin/internal/logger"
	log "github.com/sirupsen/logrus"
)

const tokenStateKey = "session_token"

type stateRepository interface {
	Save(ctx context.Context, id string, data []byte) error
	Load(ctx context.Context, id string) ([]byte, error)
	Remove(ctx context.Context, id string) error
}

// Store owns the persisted bearer token. Every other surface reads through
// it; writes happen only on sign-in, sign-out or explicit clearing, and each
// write is broadcast on the bus so listeners can re-check their session.
// Cross-process propagation through the shared state file is best-effort.
type Store struct {
	state stateRepository
	bus   EventBus.Bus
}

func NewStore(state stateRepository, bus EventBus.Bus) (*Store, error) {

	if state == nil {
		return nil, errors.New("state repository is nil")
	}

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	return &Store{state: state, bus: bus}, nil
}

// Token returns the persisted bearer token, or "" when none is stored.
// Storage failures are logged and reported as "no token": a session that
// cannot be read is indistinguishable from being signed out.
func (s *Store) Token(ctx context.Context) string {

	data, err := s.state.Load(ctx, tokenStateKey)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to load session token: %v", err)
		return ""
	}
	return string(data)
}

// Claims are always re-derived from the stored token, never cached, so the
// two can not diverge.
func (s *Store) Claims(ctx context.Context) *Claims {
	return DecodeClaims(s.Token(ctx))
}

func (s *Store) SetToken(ctx context.Context, token string) error {

	if err := s.state.Save(ctx, tokenStateKey, []byte(token)); err != nil {
		return err
	}

	s.bus.Publish(events.SessionChangedTopic, events.SessionChanged{Authenticated: token != ""})
	return nil
}

func (s *Store) Clear(ctx context.Context) error {

	if err := s.state.Remove(ctx, tokenStateKey); err != nil {
		return err
	}

	s.bus.Publish(events.SessionChangedTopic, events.SessionChanged{Authenticated: false})
	return nil
}
