package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/client-task-api/internal/constants"
	"github.com/yukikurage/client-task-api/internal/models"
	"github.com/yukikurage/client-task-api/internal/observability/metrics"
	"github.com/yukikurage/client-task-api/internal/observability/tracing"
	"github.com/yukikurage/client-task-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTitleRequired     = errors.New("title is required")
	ErrClientIDRequired  = errors.New("client_id is required")
	ErrTaskOrderConflict = errors.New("could not assign a task order, try again")
)

// TaskService handles task business logic
type TaskService struct {
	store   repository.Store
	cascade *CascadeCoordinator
}

// NewTaskService creates a new TaskService
func NewTaskService(store repository.Store, cascade *CascadeCoordinator) *TaskService {
	return &TaskService{
		store:   store,
		cascade: cascade,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	ClientID    string
	Title       string
	Description string
	Status      string
}

// UpdateTaskInput represents input for updating a task. Status is not
// restricted to the values the API produces.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// ListTasks returns a client's tasks ordered by their order value. An
// unknown client has no tasks.
func (s *TaskService) ListTasks(ctx context.Context, clientID string) ([]models.Task, error) {
	tasks, err := s.store.WithContext(ctx).Tasks().ListByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask appends a task after the client's current highest order.
//
// The max-then-insert sequence runs in a transaction and the unique
// (client_id, order) index rejects a concurrent writer that read the same
// maximum; the loser retries with a fresh read. The client foreign key
// rejects an insert that races a delete of the client.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.ClientID) == "" {
		return nil, ErrClientIDRequired
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if input.Status == "" {
		input.Status = constants.TaskStatusPending
	}

	ctx, span := tracing.Start(ctx, "TaskService.CreateTask")
	defer span.End()

	store := s.store.WithContext(ctx)
	for attempt := 1; ; attempt++ {
		task := &models.Task{
			ClientID:    input.ClientID,
			Title:       input.Title,
			Description: input.Description,
			Status:      input.Status,
		}

		err := store.Transaction(func(tx repository.Store) error {
			if _, err := tx.Clients().FindByID(input.ClientID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrClientNotFound
				}
				return fmt.Errorf("failed to find client: %w", err)
			}

			maxOrder, err := tx.Tasks().MaxOrder(input.ClientID)
			if err != nil {
				return fmt.Errorf("failed to read task order: %w", err)
			}
			task.Order = maxOrder + 1

			return tx.Tasks().Create(task)
		})
		if err == nil {
			return task, nil
		}

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			metrics.ObserveOrderConflict()
			if attempt < constants.MaxOrderAssignAttempts {
				continue
			}
			span.RecordError(err)
			return nil, ErrTaskOrderConflict
		}
		// The client was deleted between the lookup and the insert
		if errors.Is(err, ErrClientNotFound) || errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrClientNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
}

// UpdateTask applies a partial update and refreshes updated_at.
func (s *TaskService) UpdateTask(ctx context.Context, taskID string, input UpdateTaskInput) (*models.Task, error) {
	if input.Title == nil && input.Description == nil && input.Status == nil {
		return nil, ErrNoFieldsProvided
	}

	tasks := s.store.WithContext(ctx).Tasks()
	task, err := tasks.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}

	if err := tasks.Update(task); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task and its comments in one transaction.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	ctx, span := tracing.Start(ctx, "TaskService.DeleteTask")
	defer span.End()

	var result CascadeResult
	err := s.store.WithContext(ctx).Transaction(func(tx repository.Store) error {
		var err error
		result, err = s.cascade.OnTaskDeleted(tx, taskID)
		if err != nil {
			return err
		}

		if err := tx.Tasks().Delete(taskID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("failed to delete task: %w", err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	result.record()
	return nil
}
