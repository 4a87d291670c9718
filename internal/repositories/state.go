package repositories

import (
	"context"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"time"
)

// StateEntry is a keyed blob in the local state database.
type StateEntry struct {
	ID        string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

type State struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) *State {
	return &State{db: db}
}

func (repo *State) Save(ctx context.Context, id string, data []byte) error {
	return repo.db.WithContext(ctx).Save(StateEntry{
		ID:    id,
		Value: data,
	}).Error
}

func (repo *State) Load(ctx context.Context, id string) ([]byte, error) {
	entry := &StateEntry{}
	err := repo.db.WithContext(ctx).First(entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry.Value, nil
}

func (repo *State) Remove(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Delete(&StateEntry{}, "id = ?", id).Error
}

// RemoveOlderThan deletes the entry only when it was last written before the
// cutoff. Used by the draft sweeper.
func (repo *State) RemoveOlderThan(ctx context.Context, id string, cutoff time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&StateEntry{}, "id = ? AND updated_at < ?", id, cutoff)
	return res.RowsAffected, res.Error
}
