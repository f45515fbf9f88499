package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
)

type memoryPinRepository struct {
	mu   sync.Mutex
	pins map[int]struct{}
}

// NewMemoryPinRepository keeps pins for the lifetime of the process.
func NewMemoryPinRepository() domain.PinRepository {
	return &memoryPinRepository{
		pins: make(map[int]struct{}),
	}
}

func (r *memoryPinRepository) Toggle(_ context.Context, performerID int) (bool, error) {
	if performerID <= 0 {
		return false, ErrInvalidPerformer
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pins[performerID]; ok {
		delete(r.pins, performerID)
		return false, nil
	}
	r.pins[performerID] = struct{}{}
	return true, nil
}

func (r *memoryPinRepository) IsPinned(_ context.Context, performerID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.pins[performerID]
	return ok, nil
}

func (r *memoryPinRepository) List(_ context.Context) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, 0, len(r.pins))
	for id := range r.pins {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}
