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
	"github.com/yukikurage/client-task-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrClientNameRequired = errors.New("client name is required")
	ErrNoFieldsProvided   = errors.New("no fields to update")
)

// ClientService provides business logic for client operations.
type ClientService struct {
	store   repository.Store
	cascade *CascadeCoordinator
}

// NewClientService creates a new ClientService.
func NewClientService(store repository.Store, cascade *CascadeCoordinator) *ClientService {
	return &ClientService{
		store:   store,
		cascade: cascade,
	}
}

// CreateClientInput represents parameters to create a new client.
type CreateClientInput struct {
	Name        string
	Description string
	CreatorID   string
}

// UpdateClientInput holds the fields to change. Nil fields are left as is.
type UpdateClientInput struct {
	Name        *string
	Description *string
}

// ListClients returns clients in creation order.
func (s *ClientService) ListClients(ctx context.Context, params utils.PaginationParams) ([]models.Client, error) {
	clients, err := s.store.WithContext(ctx).Clients().List(params)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// CreateClient persists a client together with its onboarding checklist.
// Both are written in one transaction.
func (s *ClientService) CreateClient(ctx context.Context, input CreateClientInput) (*models.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrClientNameRequired
	}

	ctx, span := tracing.Start(ctx, "ClientService.CreateClient")
	defer span.End()

	client := &models.Client{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatorID,
	}

	var seeded int
	err := s.store.WithContext(ctx).Transaction(func(tx repository.Store) error {
		if err := tx.Clients().Create(client); err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		tasks := SeedTasks(client.ID)
		if err := tx.Tasks().CreateBatch(tasks); err != nil {
			return fmt.Errorf("failed to seed client tasks: %w", err)
		}
		seeded = len(tasks)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	metrics.ObserveClientCreated(seeded)
	return client, nil
}

// UpdateClient applies a partial update and refreshes updated_at.
func (s *ClientService) UpdateClient(ctx context.Context, id string, input UpdateClientInput) (*models.Client, error) {
	if input.Name == nil && input.Description == nil {
		return nil, ErrNoFieldsProvided
	}

	clients := s.store.WithContext(ctx).Clients()
	client, err := clients.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Description != nil {
		client.Description = *input.Description
	}

	if err := clients.Update(client); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

// DeleteClient removes a client, its tasks and their comments in one
// transaction.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	ctx, span := tracing.Start(ctx, "ClientService.DeleteClient")
	defer span.End()

	var result CascadeResult
	err := s.store.WithContext(ctx).Transaction(func(tx repository.Store) error {
		var err error
		result, err = s.cascade.OnClientDeleted(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Clients().Delete(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return fmt.Errorf("failed to delete client: %w", err)
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

// SeedTasks builds the onboarding checklist for a new client. Each task's
// order is its position in constants.SeedTaskTitles.
func SeedTasks(clientID string) []models.Task {
	tasks := make([]models.Task, len(constants.SeedTaskTitles))
	for i, title := range constants.SeedTaskTitles {
		tasks[i] = models.Task{
			ClientID: clientID,
			Title:    title,
			Status:   constants.TaskStatusPending,
			Order:    constants.FirstTaskOrder + i,
		}
	}
	return tasks
}
