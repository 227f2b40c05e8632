package repository

import (
	"time"

	"github.com/yukikurage/client-task-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// CreateBatch creates several tasks in one statement
func (r *GormTaskRepository) CreateBatch(tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.Create(&tasks).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByClient lists a client's tasks ordered by their order value
func (r *GormTaskRepository) ListByClient(clientID string) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.
		Where("client_id = ?", clientID).
		Order("sort_order ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// MaxOrder returns the highest order among a client's tasks, or -1
func (r *GormTaskRepository) MaxOrder(clientID string) (int, error) {
	var maxOrder int
	err := r.db.Model(&models.Task{}).
		Select("COALESCE(MAX(sort_order), -1)").
		Where("client_id = ?", clientID).
		Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	return maxOrder, nil
}

// Update writes the editable task fields. It never inserts; a task deleted
// since it was read yields gorm.ErrRecordNotFound.
func (r *GormTaskRepository) Update(task *models.Task) error {
	now := time.Now()
	result := r.db.Model(&models.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"updated_at":  now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	task.UpdatedAt = now
	return nil
}

// Delete removes a task
func (r *GormTaskRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IDsByClient returns the IDs of a client's tasks
func (r *GormTaskRepository) IDsByClient(clientID string) ([]string, error) {
	var ids []string
	if err := r.db.Model(&models.Task{}).
		Where("client_id = ?", clientID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteByClient removes all tasks of a client
func (r *GormTaskRepository) DeleteByClient(clientID string) (int64, error) {
	result := r.db.Where("client_id = ?", clientID).Delete(&models.Task{})
	return result.RowsAffected, result.Error
}

// CountByClientAndStatus aggregates task counts per client and status
func (r *GormTaskRepository) CountByClientAndStatus() ([]TaskStatusCount, error) {
	var rows []TaskStatusCount
	if err := r.db.Model(&models.Task{}).
		Select("client_id, status, COUNT(*) AS count").
		Group("client_id, status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
