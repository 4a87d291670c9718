package pages

import (
	"sync"

	"github.com/carehive/ats-admin/internal/clients/ats"
	"github.com/carehive/ats-admin/internal/metrics"
)

// listing holds the rows of one page together with a request sequence number.
// Each fetch takes a new number before hitting the network and commits with
// it afterwards; a commit whose number is no longer the latest is discarded,
// so a slow earlier response can never overwrite a newer one.
type listing[T any] struct {
	mu       sync.Mutex
	seq      uint64
	items    []T
	pageInfo ats.PageInfo
}

func (l *listing[T]) begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	return l.seq
}

func (l *listing[T]) commit(seq uint64, items []T, pageInfo ats.PageInfo) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.seq {
		metrics.StaleResponsesCounter.Inc()
		return false
	}

	l.items = items
	l.pageInfo = pageInfo
	return true
}

func (l *listing[T]) snapshot() ([]T, ats.PageInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items, l.pageInfo
}
