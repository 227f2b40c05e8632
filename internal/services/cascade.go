package services

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/client-task-api/internal/observability/metrics"
	"github.com/yukikurage/client-task-api/internal/repository"
)

// CascadeResult reports how many dependent records a cascade removed.
type CascadeResult struct {
	Tasks    int64
	Comments int64
}

// CascadeCoordinator removes the records owned by a deleted client or task.
// It holds no state; callers pass the Store to run against, which is a
// transaction-bound Store when the delete must be atomic.
type CascadeCoordinator struct {
	log *slog.Logger
}

// NewCascadeCoordinator creates a new CascadeCoordinator.
func NewCascadeCoordinator(log *slog.Logger) *CascadeCoordinator {
	return &CascadeCoordinator{log: log}
}

// OnClientDeleted removes the client's tasks and every comment on them.
// Children go first so the counts reflect what this cascade removed rather
// than what the store's ON DELETE CASCADE dropped.
func (c *CascadeCoordinator) OnClientDeleted(store repository.Store, clientID string) (CascadeResult, error) {
	var result CascadeResult

	taskIDs, err := store.Tasks().IDsByClient(clientID)
	if err != nil {
		return result, fmt.Errorf("failed to list client tasks: %w", err)
	}

	result.Comments, err = store.Comments().DeleteByTaskIDs(taskIDs)
	if err != nil {
		return result, fmt.Errorf("failed to delete task comments: %w", err)
	}

	result.Tasks, err = store.Tasks().DeleteByClient(clientID)
	if err != nil {
		return result, fmt.Errorf("failed to delete client tasks: %w", err)
	}

	c.log.Debug("client cascade completed",
		slog.String("client_id", clientID),
		slog.Int64("tasks", result.Tasks),
		slog.Int64("comments", result.Comments),
	)
	return result, nil
}

// OnTaskDeleted removes the task's comments.
func (c *CascadeCoordinator) OnTaskDeleted(store repository.Store, taskID string) (CascadeResult, error) {
	var result CascadeResult

	removed, err := store.Comments().DeleteByTaskIDs([]string{taskID})
	if err != nil {
		return result, fmt.Errorf("failed to delete task comments: %w", err)
	}
	result.Comments = removed

	c.log.Debug("task cascade completed",
		slog.String("task_id", taskID),
		slog.Int64("comments", result.Comments),
	)
	return result, nil
}

// record publishes a committed cascade to metrics.
func (r CascadeResult) record() {
	metrics.ObserveCascade("task", r.Tasks)
	metrics.ObserveCascade("comment", r.Comments)
}
