package repository

import (
	"time"

	"github.com/yukikurage/client-task-api/internal/database"
	"github.com/yukikurage/client-task-api/internal/models"
	"github.com/yukikurage/client-task-api/internal/utils"
	"gorm.io/gorm"
)

// GormClientRepository is a GORM implementation of ClientRepository
type GormClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &GormClientRepository{db: db}
}

// Create creates a new client
func (r *GormClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// FindByID finds a client by ID
func (r *GormClientRepository) FindByID(id string) (*models.Client, error) {
	var client models.Client
	if err := r.db.Where("id = ?", id).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// List retrieves clients in creation order
func (r *GormClientRepository) List(params utils.PaginationParams) ([]models.Client, error) {
	clients := []models.Client{}
	err := r.db.
		Scopes(database.Paginate(params)).
		Order("created_at ASC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

// Update writes name and description. It never inserts; a client deleted
// since it was read yields gorm.ErrRecordNotFound.
func (r *GormClientRepository) Update(client *models.Client) error {
	now := time.Now()
	result := r.db.Model(&models.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"name":        client.Name,
			"description": client.Description,
			"updated_at":  now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	client.UpdatedAt = now
	return nil
}

// Delete removes a client
func (r *GormClientRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Client{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
