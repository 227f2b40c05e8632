package models

import "github.com/google/uuid"

// assignID fills an empty string primary key with a new random UUID.
func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// AllModels lists every persisted model in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Client{},
		&Task{},
		&Comment{},
	}
}
