package drafts

import (
	"context"
	"encoding/json"
	"time"

	"github.com/carehive/ats-admin/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrDraftExpired marks a draft past its restore window. Load handles it
// internally; callers always get a usable draft back.
var ErrDraftExpired = errors.New("job draft expired")

const draftStateKey = "job_draft"

// DraftTTL is how long a saved draft stays restorable.
const DraftTTL = 24 * time.Hour

type stateRepository interface {
	Save(ctx context.Context, id string, data []byte) error
	Load(ctx context.Context, id string) ([]byte, error)
	Remove(ctx context.Context, id string) error
}

type envelope struct {
	Draft   JobDraft  `json:"draft"`
	SavedAt time.Time `json:"savedAt"`
}

type Store struct {
	state stateRepository
	now   func() time.Time
}

func NewStore(state stateRepository) *Store {
	return &Store{state: state, now: time.Now}
}

// Save persists the draft together with a timestamp; every wizard mutation
// goes through here.
func (s *Store) Save(ctx context.Context, draft JobDraft) error {

	data, err := json.Marshal(envelope{Draft: draft, SavedAt: s.now()})
	if err != nil {
		return err
	}
	return s.state.Save(ctx, draftStateKey, data)
}

// Load restores a draft saved within the last DraftTTL verbatim. An absent,
// unreadable or expired draft yields the default record; stale storage is
// cleaned up best-effort, a failed removal never blocks the caller.
func (s *Store) Load(ctx context.Context) (JobDraft, error) {

	data, err := s.state.Load(ctx, draftStateKey)
	if err != nil {
		return DefaultDraft(), err
	}
	if data == nil {
		return DefaultDraft(), nil
	}

	var env envelope
	if err = json.Unmarshal(data, &env); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("discarding unreadable job draft: %v", err)
		s.removeStale(ctx)
		return DefaultDraft(), nil
	}

	if s.now().Sub(env.SavedAt) > DraftTTL {
		log.Infof("%v, saved at %v", ErrDraftExpired, env.SavedAt)
		s.removeStale(ctx)
		return DefaultDraft(), nil
	}

	return env.Draft, nil
}

func (s *Store) removeStale(ctx context.Context) {
	if err := s.state.Remove(ctx, draftStateKey); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).
			Errorf("failed to remove stale job draft: %v", err)
	}
}

// Reset clears the persisted draft; the wizard calls it on cancel and after
// a successful submit.
func (s *Store) Reset(ctx context.Context) error {
	return s.state.Remove(ctx, draftStateKey)
}
