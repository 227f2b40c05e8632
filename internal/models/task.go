package models

import (
	"time"

	"gorm.io/gorm"
)

type Task struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ClientID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_tasks_client_order,priority:1" json:"client_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	Order       int       `gorm:"column:sort_order;not null;uniqueIndex:idx_tasks_client_order,priority:2" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// The store rejects tasks for a missing client and drops them with it.
	Client *Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	assignID(&t.ID)
	return nil
}
