package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/client-task-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds secondary indexes not expressed in model tags
func AddIndexes(db *gorm.DB, log *slog.Logger) error {
	indexes := []struct {
		model   interface{}
		table   string
		name    string
		columns string
	}{
		// Comment listing is filtered by task and ordered by creation time
		{&models.Comment{}, "comments", "idx_comments_task_created", "task_id, created_at"},

		// Stats aggregate by status
		{&models.Task{}, "tasks", "idx_tasks_status", "status"},

		{&models.Client{}, "clients", "idx_clients_created_at", "created_at"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			log.Debug("index already exists, skipping", slog.String("index", idx.name))
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info("created index", slog.String("index", idx.name), slog.String("table", idx.table))
	}

	return nil
}
