// database/migrate.go
package database

import (
	"ortho-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.UserSession{},
		&models.PersonalCase{},
		&models.Order{},
		&models.Invoice{},
		&models.WarehouseEntry{},
		&models.Issue{},
		&models.TSRCategory{},
		&models.WorkshopDict{},
		&models.OrderStatusDict{},
		&models.NumberSequence{},
	)
}
