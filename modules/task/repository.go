package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/haribabu1133/Smart-todo/domain/task"
	"gorm.io/gorm"
)

// TaskStore provides access to task storage. The store owns the ordering
// invariant: Create appends at max(sort_order)+1, List returns tasks sorted
// by sort_order ascending with createdAt-descending tie break, and Reorder
// applies a batch of order assignments atomically.
type TaskStore interface {
	List(filter Filter) ([]domain.Task, error)
	FindByID(id string) (*domain.Task, error)
	Create(t *domain.Task) error
	Update(t *domain.Task) error
	Delete(id string) error
	Reorder(assignments []OrderAssignment) (applied int, err error)
}

// GormStore is the production TaskStore backed by GORM.
type GormStore struct {
	db *gorm.DB
}

var _ TaskStore = (*GormStore)(nil)

// NewGormStore creates a task store on top of an open GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// List retrieves tasks matching the filter, sorted by sort_order ascending
// and created_at descending for equal orders.
func (s *GormStore) List(filter Filter) ([]domain.Task, error) {
	q := s.db.Model(&domain.Task{})
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		q = q.Where(`lower(title) LIKE ? ESCAPE '\'`, pattern)
	}

	var tasks []domain.Task
	if err := q.Order("sort_order ASC, created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// escapeLike escapes LIKE metacharacters so the search text matches title
// content literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// FindByID retrieves a task by its ID.
func (s *GormStore) FindByID(id string) (*domain.Task, error) {
	var t domain.Task
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

// Create saves a new task, assigning the next sort position. The max-order
// read and the insert run in one transaction so concurrent creates cannot
// claim the same position.
func (s *GormStore) Create(t *domain.Task) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&domain.Task{}).
			Select("COALESCE(MAX(sort_order)+1, 0)").
			Scan(&next).Error; err != nil {
			return err
		}
		t.Order = next

		now := time.Now()
		t.CreatedAt = now
		t.UpdatedAt = now
		return tx.Create(t).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// Update persists every mutable field of t and refreshes UpdatedAt, even
// when no value actually changed. The weekly completed statistic keys off
// updated_at, so a value-identical update still counts as a touch.
func (s *GormStore) Update(t *domain.Task) error {
	t.UpdatedAt = time.Now()
	result := s.db.Model(&domain.Task{}).Where("id = ?", t.ID).Updates(map[string]any{
		"title":       t.Title,
		"description": t.Description,
		"priority":    t.Priority,
		"status":      t.Status,
		"category":    t.Category,
		"due_date":    t.DueDate,
		"sort_order":  t.Order,
		"updated_at":  t.UpdatedAt,
	})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task permanently. Remaining tasks keep their sort_order
// values; positions are never renumbered.
func (s *GormStore) Delete(id string) error {
	result := s.db.Delete(&domain.Task{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Reorder applies all assignments in a single transaction: either every
// surviving row gets its new position or none does. Assignments whose id no
// longer exists are skipped, since reorder batches originate from a client
// snapshot that may have lagged a concurrent delete. Each touched row gets a
// fresh updated_at.
func (s *GormStore) Reorder(assignments []OrderAssignment) (int, error) {
	if len(assignments) == 0 {
		return 0, nil
	}

	applied := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		applied = 0
		now := time.Now()
		for _, a := range assignments {
			result := tx.Model(&domain.Task{}).Where("id = ?", a.ID).Updates(map[string]any{
				"sort_order": a.Order,
				"updated_at": now,
			})
			if err := result.Error; err != nil {
				return err
			}
			applied += int(result.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to reorder tasks: %w", err)
	}
	return applied, nil
}
