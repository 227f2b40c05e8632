package repository

import (
	"context"

	"github.com/yukikurage/client-task-api/internal/models"
	"github.com/yukikurage/client-task-api/internal/utils"
)

// Store groups the repositories over one database handle. A Store obtained
// inside Transaction is bound to that transaction.
type Store interface {
	Users() UserRepository
	Clients() ClientRepository
	Tasks() TaskRepository
	Comments() CommentRepository

	// WithContext returns a Store whose queries carry ctx
	WithContext(ctx context.Context) Store

	// Transaction runs fn inside a database transaction. Returning an error
	// from fn rolls the transaction back.
	Transaction(fn func(tx Store) error) error

	// Ping checks database connectivity
	Ping(ctx context.Context) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	// Create creates a new client
	Create(client *models.Client) error

	// FindByID finds a client by ID
	FindByID(id string) (*models.Client, error)

	// List retrieves clients in creation order
	List(params utils.PaginationParams) ([]models.Client, error)

	// Update writes the editable client fields. It returns
	// gorm.ErrRecordNotFound when the client no longer exists.
	Update(client *models.Client) error

	// Delete removes a client. It returns gorm.ErrRecordNotFound when no
	// row matched.
	Delete(id string) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// CreateBatch creates several tasks in one statement
	CreateBatch(tasks []models.Task) error

	// FindByID finds a task by ID
	FindByID(id string) (*models.Task, error)

	// ListByClient lists a client's tasks ordered by their order value
	ListByClient(clientID string) ([]models.Task, error)

	// MaxOrder returns the highest order among a client's tasks, or -1
	MaxOrder(clientID string) (int, error)

	// Update writes the editable task fields. It returns
	// gorm.ErrRecordNotFound when the task no longer exists.
	Update(task *models.Task) error

	// Delete removes a task. It returns gorm.ErrRecordNotFound when no row
	// matched.
	Delete(id string) error

	// IDsByClient returns the IDs of a client's tasks
	IDsByClient(clientID string) ([]string, error)

	// DeleteByClient removes all tasks of a client
	DeleteByClient(clientID string) (int64, error)

	// CountByClientAndStatus aggregates task counts per client and status
	CountByClientAndStatus() ([]TaskStatusCount, error)
}

// TaskStatusCount is one row of CountByClientAndStatus
type TaskStatusCount struct {
	ClientID string
	Status   string
	Count    int64
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// FindByID finds a comment by ID
	FindByID(id string) (*models.Comment, error)

	// ListByTask lists a task's comments oldest first
	ListByTask(taskID string) ([]models.Comment, error)

	// Delete removes a comment. It returns gorm.ErrRecordNotFound when no
	// row matched.
	Delete(id string) error

	// DeleteByTaskIDs removes every comment attached to the given tasks
	DeleteByTaskIDs(taskIDs []string) (int64, error)
}
