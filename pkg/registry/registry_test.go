package registry

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/pkg/models"
)

func TestCreateAndGet(t *testing.T) {
	r := New(0)

	task := r.Create(models.TaskTypePipeline, "")
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, models.TaskStatePending, task.State)
	assert.Empty(t, task.ParentID)

	got, ok := r.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, task.ID, got.ID)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestUpdateMutatesUnderLock(t *testing.T) {
	r := New(0)
	task := r.Create(models.TaskTypeScrape, "")

	now := time.Now().UTC()
	updated, ok := r.Update(task.ID, func(t *models.Task) {
		t.State = models.TaskStateRunning
		t.StartedAt = &now
		t.Progress = 10
	})
	require.True(t, ok)
	assert.Equal(t, models.TaskStateRunning, updated.State)
	assert.Equal(t, 10, updated.Progress)

	got, _ := r.Get(task.ID)
	assert.Equal(t, models.TaskStateRunning, got.State)
}

func TestUpdateRejectsLeavingTerminalState(t *testing.T) {
	r := New(0)
	task := r.Create(models.TaskTypePipeline, "")

	finished := time.Now().UTC()
	_, ok := r.Update(task.ID, func(t *models.Task) {
		t.State = models.TaskStateCancelled
		t.FinishedAt = &finished
	})
	require.True(t, ok)

	// A cancelled task must not flip to succeeded.
	_, ok = r.Update(task.ID, func(t *models.Task) {
		t.State = models.TaskStateSucceeded
	})
	assert.False(t, ok)

	got, _ := r.Get(task.ID)
	assert.Equal(t, models.TaskStateCancelled, got.State)

	// Non-state mutations on a terminal task still apply.
	updated, ok := r.Update(task.ID, func(t *models.Task) {
		t.Error = "cancelled by operator"
	})
	require.True(t, ok)
	assert.Equal(t, "cancelled by operator", updated.Error)
}

func TestListFiltersAndOrders(t *testing.T) {
	r := New(0)

	parent := r.Create(models.TaskTypePipeline, "")
	for i := 0; i < 3; i++ {
		r.Create(models.TaskTypeScrape, parent.ID)
	}
	other := r.Create(models.TaskTypeProcess, "")
	r.Update(other.ID, func(t *models.Task) { t.State = models.TaskStateRunning })

	children := r.List(models.TaskFilter{ParentID: parent.ID})
	assert.Len(t, children, 3)

	running := r.List(models.TaskFilter{State: models.TaskStateRunning})
	require.Len(t, running, 1)
	assert.Equal(t, other.ID, running[0].ID)

	all := r.List(models.TaskFilter{})
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].CreatedAt.Before(all[i].CreatedAt),
			"list must be ordered newest first")
	}
}

func TestReapEvictsOnlyExpiredFinishedTasks(t *testing.T) {
	r := New(time.Hour)

	expired := r.Create(models.TaskTypePipeline, "")
	old := time.Now().Add(-2 * time.Hour)
	r.Update(expired.ID, func(t *models.Task) {
		t.State = models.TaskStateSucceeded
		t.FinishedAt = &old
	})

	fresh := r.Create(models.TaskTypePipeline, "")
	recent := time.Now().Add(-time.Minute)
	r.Update(fresh.ID, func(t *models.Task) {
		t.State = models.TaskStateFailed
		t.FinishedAt = &recent
	})

	running := r.Create(models.TaskTypePipeline, "")
	r.Update(running.ID, func(t *models.Task) { t.State = models.TaskStateRunning })

	evicted := r.Reap(time.Now())
	assert.Equal(t, 1, evicted)

	_, ok := r.Get(expired.ID)
	assert.False(t, ok)
	_, ok = r.Get(fresh.ID)
	assert.True(t, ok)
	_, ok = r.Get(running.ID)
	assert.True(t, ok, "running tasks are never reaped")
}

func TestConcurrentAccess(t *testing.T) {
	r := New(0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				task := r.Create(models.TaskTypeScrape, fmt.Sprintf("parent-%d", i))
				r.Update(task.ID, func(t *models.Task) { t.Progress = j })
				r.List(models.TaskFilter{Type: models.TaskTypeScrape})
				r.Get(task.ID)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 400, r.Len())
}

func TestReaperLoop(t *testing.T) {
	r := New(time.Millisecond)
	task := r.Create(models.TaskTypePipeline, "")
	old := time.Now().Add(-time.Minute)
	r.Update(task.ID, func(t *models.Task) {
		t.State = models.TaskStateSucceeded
		t.FinishedAt = &old
	})

	reaper := NewReaper(r, 5*time.Millisecond)
	reaper.Start(context.Background())
	defer reaper.Stop()

	require.Eventually(t, func() bool {
		_, ok := r.Get(task.ID)
		return !ok
	}, time.Second, 5*time.Millisecond)
}
