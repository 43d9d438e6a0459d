// database/seeder.go
package database

import (
	"log"

	"ortho-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedRoles(db)
	SeedAdminUser(db)
	SeedWorkshops(db)
	SeedTSRCategories(db)
	SeedOrderStatuses(db)
}

func SeedRoles(db *gorm.DB) {
	roles := []models.Role{
		{Code: models.RoleRegistry, Name: "Registry"},
		{Code: models.RoleMed, Name: "Medical staff"},
		{Code: models.RoleWorkshop, Name: "Workshop"},
		{Code: models.RoleWarehouse, Name: "Warehouse"},
		{Code: models.RoleAdmin, Name: "Administrator"},
	}

	for _, r := range roles {
		var existing models.Role
		if err := db.Where("code = ?", r.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&r)
			}
		}
	}
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err != gorm.ErrRecordNotFound {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	user := models.User{
		Username: "admin",
		Password: string(hashed),
		Name:     "Administrator",
		Email:    "admin@ortho.local",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	var adminRole models.Role
	if err := db.Where("code = ?", models.RoleAdmin).First(&adminRole).Error; err == nil {
		db.Model(&user).Association("Roles").Replace([]models.Role{adminRole})
	}
}

func SeedWorkshops(db *gorm.DB) {
	workshops := []models.WorkshopDict{
		{Code: models.WorkshopProsthesis, Name: "Prosthesis workshop"},
		{Code: models.WorkshopShoes, Name: "Orthopedic shoes workshop"},
		{Code: models.WorkshopOttobock, Name: "Otto Bock"},
		{Code: models.WorkshopRepair, Name: "Repair workshop"},
	}

	for _, w := range workshops {
		var existing models.WorkshopDict
		if err := db.Where("code = ?", w.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&w)
			}
		}
	}
}

func SeedTSRCategories(db *gorm.DB) {
	categories := []models.TSRCategory{
		{Code: "PROSTHESIS", Name: "Prosthesis"},
		{Code: "SHOES", Name: "Orthopedic shoes"},
		{Code: "OTTOBOCK", Name: "Otto Bock"},
		{Code: "REPAIR", Name: "Repair"},
		{Code: "READY_TSR", Name: "Ready-made TSR"},
	}

	for _, c := range categories {
		var existing models.TSRCategory
		if err := db.Where("code = ?", c.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&c)
			}
		}
	}
}

func SeedOrderStatuses(db *gorm.DB) {
	statuses := []models.OrderStatusDict{
		{Code: models.StatusDraft, Name: "Draft"},
		{Code: models.StatusInWork, Name: "In work"},
		{Code: models.StatusWaitingFitting, Name: "Waiting for fitting"},
		{Code: models.StatusOnRework, Name: "On rework"},
		{Code: models.StatusReadyForTransfer, Name: "Ready for transfer"},
		{Code: models.StatusTransferred, Name: "Transferred to warehouse"},
		{Code: models.StatusIssued, Name: "Issued"},
		{Code: models.StatusCanceled, Name: "Canceled"},
	}

	for _, s := range statuses {
		var existing models.OrderStatusDict
		if err := db.Where("code = ?", s.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&s)
			}
		}
	}
}
