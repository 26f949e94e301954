package board

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"taskboard/internal/api"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/repository/sqlite"
)

// Board owns the authoritative in-memory task list for the signed-in user.
// It is refreshed by full refetch after create/edit and updated in place
// after a drop or delete. The remote API is the sole arbiter of
// consistency; this state is a best-effort mirror.
type Board struct {
	api    api.API
	repo   sqlite.Repository
	mapper *domain.Mapper
	log    *logrus.Logger

	mu    sync.RWMutex
	tasks []*domain.Task
	stale bool

	// per-task locks serialize concurrent mutations on one task so rapid
	// edit/move/delete sequences cannot interleave last-write-wins
	lockMu    sync.Mutex
	taskLocks map[string]*sync.Mutex
}

// New creates a board over the remote API. The repository holds the cached
// snapshot from the last successful fetch and may be nil to disable
// caching.
func New(remote api.API, repo sqlite.Repository, log *logrus.Logger) *Board {
	return &Board{
		api:       remote,
		repo:      repo,
		mapper:    domain.NewMapper(),
		log:       log,
		taskLocks: make(map[string]*sync.Mutex),
	}
}

// Tasks returns a copy of the authoritative task list.
func (b *Board) Tasks() []*domain.Task {
	b.mu.RLock()
	defer b.mu.RUnlock()

	tasks := make([]*domain.Task, len(b.tasks))
	copy(tasks, b.tasks)
	return tasks
}

// Columns derives the current board view model.
func (b *Board) Columns() []Column {
	return Columns(b.Tasks())
}

// Stale reports whether the board is showing a cached snapshot because the
// last fetch failed.
func (b *Board) Stale() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stale
}

// Refresh replaces the task list with a full refetch from the remote store.
// On failure the error is logged and, when nothing is loaded yet, the
// cached snapshot from the last successful fetch is served instead; the
// next successful refetch resynchronizes with the server's truth.
func (b *Board) Refresh(ctx context.Context) error {
	tasks, err := b.api.ListTasks(ctx)
	if err != nil {
		b.log.WithError(err).Error("failed to fetch tasks")
		b.loadCacheFallback()
		return err
	}

	b.mu.Lock()
	b.tasks = tasks
	b.stale = false
	b.mu.Unlock()

	b.storeCache(tasks)
	return nil
}

// ApplyDrop interprets a completed drag gesture.
//
// No destination, or an unchanged column and position, is a no-op with no
// request issued. Otherwise the destination status is applied to a full
// copy of the task, the update request is issued first, and local state is
// mutated only on success; on failure the list is left unmodified and the
// error is logged, leaving the pre-drag column on screen until the next
// refetch.
func (b *Board) ApplyDrop(ctx context.Context, event DropEvent) error {
	if event.IsNoDestination() {
		b.log.Debug("dropped outside the board")
		return nil
	}
	if !event.To.IsValid() {
		return errors.NewInvalidInputError("status", event.To, "unknown board column")
	}

	unlock := b.lockTask(event.TaskID)
	defer unlock()

	b.mu.RLock()
	task := findTask(b.tasks, event.TaskID)
	currentIndex := indexInColumn(b.tasks, event.TaskID)
	b.mu.RUnlock()

	if task == nil {
		b.log.WithField("task_id", event.TaskID).Error("dragged task not found")
		return errors.NewNotFoundError("task", event.TaskID)
	}

	if event.From == event.To && (event.ToIndex < 0 || currentIndex == event.ToIndex) {
		b.log.Debug("dropped in the same place")
		return nil
	}

	updated := task.WithStatus(event.To)
	if err := b.api.UpdateTask(ctx, updated); err != nil {
		b.log.WithError(err).WithField("task_id", event.TaskID).Error("failed to update task")
		return err
	}

	b.mu.Lock()
	b.tasks = replaceTask(b.tasks, updated)
	current := b.tasks
	b.mu.Unlock()

	b.storeCache(current)
	return nil
}

// Delete issues the delete request and, on success, filters the task out of
// the local list by identifier. Failures are logged, leaving the board
// unchanged.
func (b *Board) Delete(ctx context.Context, id string) error {
	unlock := b.lockTask(id)
	defer unlock()

	if err := b.api.DeleteTask(ctx, id); err != nil {
		b.log.WithError(err).WithField("task_id", id).Error("failed to delete task")
		return err
	}

	b.mu.Lock()
	filtered := b.tasks[:0:0]
	for _, task := range b.tasks {
		if task.ID != id {
			filtered = append(filtered, task)
		}
	}
	b.tasks = filtered
	current := b.tasks
	b.mu.Unlock()

	b.storeCache(current)
	return nil
}

// FindTask returns the task with the given identifier from the local list,
// or nil when it is not present.
func (b *Board) FindTask(id string) *domain.Task {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return findTask(b.tasks, id)
}

func (b *Board) lockTask(id string) func() {
	b.lockMu.Lock()
	lock, ok := b.taskLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		b.taskLocks[id] = lock
	}
	b.lockMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (b *Board) storeCache(tasks []*domain.Task) {
	if b.repo == nil {
		return
	}
	if err := b.repo.ReplaceTasks(b.mapper.Task.ToStorageSlice(tasks)); err != nil {
		b.log.WithError(err).Warn("failed to update cached board")
	}
}

func (b *Board) loadCacheFallback() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.tasks) > 0 {
		// Keep what is already on screen; it is at least as fresh.
		b.stale = true
		return
	}
	if b.repo == nil {
		return
	}

	stored, err := b.repo.ListTasks()
	if err != nil {
		b.log.WithError(err).Warn("failed to load cached board")
		return
	}
	if len(stored) == 0 {
		return
	}

	b.tasks = b.mapper.Task.FromStorageSlice(stored)
	b.stale = true
}

func findTask(tasks []*domain.Task, id string) *domain.Task {
	for _, task := range tasks {
		if task.ID == id {
			return task
		}
	}
	return nil
}

func replaceTask(tasks []*domain.Task, updated domain.Task) []*domain.Task {
	next := make([]*domain.Task, len(tasks))
	for i, task := range tasks {
		if task.ID == updated.ID {
			copied := updated
			next[i] = &copied
		} else {
			next[i] = task
		}
	}
	return next
}
