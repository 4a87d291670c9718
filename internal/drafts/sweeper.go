package drafts

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type draftCleanupRepository interface {
	RemoveOlderThan(ctx context.Context, id string, cutoff time.Time) (int64, error)
}

// Sweeper removes expired drafts from the state store on a schedule, so a
// stale draft does not linger on disk until the wizard happens to load it.
type Sweeper struct {
	state draftCleanupRepository
	cron  *cron.Cron
	ttl   time.Duration
}

func NewSweeper(state draftCleanupRepository, ttl time.Duration) (*Sweeper, error) {

	if ttl <= 0 {
		return nil, errors.New("ttl must be greater than zero")
	}

	s := &Sweeper{
		state: state,
		cron:  cron.New(),
		ttl:   ttl,
	}

	_, err := s.cron.AddFunc("0 * * * *", s.sweep)
	if err != nil {
		return nil, err
	}

	s.cron.Start()
	log.Infof("draft sweeper started, ttl: %v", s.ttl)
	return s, nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) sweep() {
	cutoff := time.Now().Add(-s.ttl)
	rowsAffected, err := s.state.RemoveOlderThan(context.Background(), draftStateKey, cutoff)
	if err != nil {
		log.Errorf("Failed to sweep expired drafts: %v", err)
	} else if rowsAffected > 0 {
		log.Infof("Expired draft swept at %v", time.Now())
	}
}
