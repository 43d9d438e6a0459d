package models

import "gorm.io/gorm"

// TSRCategory is the reference list of technical rehabilitation aid
// categories.
type TSRCategory struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique;size:20"`
	Name        string `json:"name" gorm:"size:200"`
	Description string `json:"description"`
}

// WorkshopDict is the reference list of production workshops.
type WorkshopDict struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique;size:20"`
	Name        string `json:"name" gorm:"size:200"`
	Description string `json:"description"`
}

func (WorkshopDict) TableName() string { return "workshops" }

// OrderStatusDict is the reference list of order workflow statuses, kept
// for display names; the workflow itself uses the status constants.
type OrderStatusDict struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique;size:30"`
	Name        string `json:"name" gorm:"size:200"`
	Description string `json:"description"`
}

func (OrderStatusDict) TableName() string { return "order_statuses" }
