package models

import (
	"time"

	"gorm.io/gorm"
)

// Role codes seeded at startup.
const (
	RoleRegistry  = "REGISTRY"
	RoleMed       = "MED"
	RoleWorkshop  = "WORKSHOP"
	RoleWarehouse = "WAREHOUSE"
	RoleAdmin     = "ADMIN"
)

type User struct {
	gorm.Model
	Username   string `json:"username" gorm:"unique"`
	Password   string `json:"-"`
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"unique"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Roles      []Role `json:"roles" gorm:"many2many:user_roles;"`
	CreatedBy  int    `json:"created_by"`
	UpdatedBy  int    `json:"updated_by"`
}

// HasRole reports whether the user holds the given role code.
func (u *User) HasRole(code string) bool {
	for _, r := range u.Roles {
		if r.Code == code {
			return true
		}
	}
	return false
}

type Role struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UserSession struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"index"`
	SessionID      string    `json:"session_id" gorm:"uniqueIndex"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	IsActive       bool      `json:"is_active"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}
