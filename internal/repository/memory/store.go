package memory

import (
	"context"
	"sort"
	"sync"

	ierr "github.com/flexprice/storefront/internal/errors"
)

// FilterFunc reports whether an item belongs in a List result
type FilterFunc[T any] func(ctx context.Context, item T) bool

// SortFunc orders List results
type SortFunc[T any] func(i, j T) bool

// Store is a generic map backed store guarded by a RWMutex
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	kind  string
}

// NewStore creates an empty store. kind names the entity in error messages.
func NewStore[T any](kind string) *Store[T] {
	return &Store[T]{
		items: make(map[string]T),
		kind:  kind,
	}
}

// Create adds a new item to the store
func (s *Store[T]) Create(ctx context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return ierr.NewErrorf("%s already exists", s.kind).
			WithHintf("A %s with this identifier already exists", s.kind).
			WithReportableDetails(map[string]any{
				"id": id,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	s.items[id] = item
	return nil
}

// Get retrieves an item by ID
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if item, exists := s.items[id]; exists {
		return item, nil
	}

	var zero T
	return zero, ierr.NewErrorf("%s not found", s.kind).
		WithHintf("The %s could not be found", s.kind).
		WithReportableDetails(map[string]any{
			"id": id,
		}).
		Mark(ierr.ErrNotFound)
}

// Find returns the first item matching the filter
func (s *Store[T]) Find(ctx context.Context, filterFn FilterFunc[T]) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if filterFn(ctx, item) {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// List retrieves items matching the filter in the order given by sortFn
func (s *Store[T]) List(ctx context.Context, filterFn FilterFunc[T], sortFn SortFunc[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if filterFn == nil || filterFn(ctx, item) {
			result = append(result, item)
		}
	}

	if sortFn != nil {
		sort.Slice(result, func(i, j int) bool {
			return sortFn(result[i], result[j])
		})
	}

	return result
}

// Count returns the number of stored items
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear removes all items from the store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
}
