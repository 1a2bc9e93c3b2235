// Package registry tracks pipeline and stage tasks in process memory. State
// is intentionally not durable: a restart forgets all task history, and the
// result store remains the only durable record.
package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ohsono/sentiwatch/pkg/models"
)

// DefaultTTL is how long finished tasks stay queryable.
const DefaultTTL = 24 * time.Hour

// Registry is a thread-safe task map with filtered listing and TTL eviction.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]*models.Task
	ttl   time.Duration
}

// New creates a registry. ttl <= 0 selects DefaultTTL.
func New(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		tasks: make(map[string]*models.Task),
		ttl:   ttl,
	}
}

// Create registers a new pending task and returns a snapshot of it.
func (r *Registry) Create(taskType models.TaskType, parentID string) models.Task {
	task := models.Task{
		ID:        uuid.New().String(),
		Type:      taskType,
		State:     models.TaskStatePending,
		CreatedAt: time.Now().UTC(),
		ParentID:  parentID,
	}

	r.mu.Lock()
	r.tasks[task.ID] = &task
	r.mu.Unlock()

	return task
}

// Update applies mutate to the task under the registry lock. The mutator
// observes the current value and edits it in place; transitions out of a
// terminal state are rejected and leave the task unchanged.
func (r *Registry) Update(id string, mutate func(*models.Task)) (models.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return models.Task{}, false
	}

	before := task.State
	next := *task
	mutate(&next)

	if before.Terminal() && next.State != before {
		return *task, false
	}
	*task = next
	return *task, true
}

// Get returns a snapshot of the task.
func (r *Registry) Get(id string) (models.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return models.Task{}, false
	}
	return *task, true
}

// List returns matching task snapshots ordered by creation time, newest
// first.
func (r *Registry) List(filter models.TaskFilter) []models.Task {
	r.mu.RLock()
	out := make([]models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if matches(task, filter) {
			out = append(out, *task)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func matches(task *models.Task, filter models.TaskFilter) bool {
	if filter.Type != "" && task.Type != filter.Type {
		return false
	}
	if filter.State != "" && task.State != filter.State {
		return false
	}
	if filter.ParentID != "" && task.ParentID != filter.ParentID {
		return false
	}
	if !filter.Since.IsZero() && task.CreatedAt.Before(filter.Since) {
		return false
	}
	return true
}

// Reap removes tasks that finished more than TTL before now. Running and
// pending tasks are never reaped. Returns the number of evicted entries.
func (r *Registry) Reap(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, task := range r.tasks {
		if task.FinishedAt == nil {
			continue
		}
		if task.FinishedAt.Add(r.ttl).Before(now) {
			delete(r.tasks, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of tracked tasks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}
