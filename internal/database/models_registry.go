package database

import "yarnhog/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.ProjectSection{},
		&models.Material{},
		&models.Tutorial{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Rating{},
		&models.RowCounter{},
	}
}
