package task

import (
	"sort"
	"strings"
	"sync"
	"time"

	domain "github.com/haribabu1133/Smart-todo/domain/task"
)

// MemoryStore is an in-memory TaskStore. The persistence engine behind the
// store contract is interchangeable; this binding backs service-level tests
// and spares them a database file.
type MemoryStore struct {
	mu    sync.RWMutex
	tasks map[string]*domain.Task
}

var _ TaskStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory task store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks: make(map[string]*domain.Task),
	}
}

// List returns tasks matching the filter, sorted by Order ascending with
// CreatedAt-descending tie break.
func (s *MemoryStore) List(filter Filter) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Task, 0, len(s.tasks))
	search := strings.ToLower(filter.Search)
	for _, t := range s.tasks {
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
			continue
		}
		result = append(result, *t)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// FindByID returns a copy of the task with the given id.
func (s *MemoryStore) FindByID(id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, found := s.tasks[id]
	if !found {
		return nil, ErrTaskNotFound
	}
	copied := *t
	return &copied, nil
}

// Create stores a new task at the next sort position.
func (s *MemoryStore) Create(t *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 0
	for _, existing := range s.tasks {
		if existing.Order >= next {
			next = existing.Order + 1
		}
	}
	t.Order = next

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	copied := *t
	s.tasks[t.ID] = &copied
	return nil
}

// Update replaces the stored task and refreshes UpdatedAt unconditionally.
func (s *MemoryStore) Update(t *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.tasks[t.ID]; !found {
		return ErrTaskNotFound
	}
	t.UpdatedAt = time.Now()
	copied := *t
	s.tasks[t.ID] = &copied
	return nil
}

// Delete removes a task. Other tasks keep their Order values.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.tasks[id]; !found {
		return ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// Reorder applies the batch under one lock, skipping ids that no longer
// exist. Readers never observe a partially applied batch.
func (s *MemoryStore) Reorder(assignments []OrderAssignment) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	applied := 0
	for _, a := range assignments {
		t, found := s.tasks[a.ID]
		if !found {
			continue
		}
		t.Order = a.Order
		t.UpdatedAt = now
		applied++
	}
	return applied, nil
}
