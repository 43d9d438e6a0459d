package models

import (
	"time"

	"gorm.io/gorm"
)

// Order type codes.
const (
	OrderTypeProsthesis = "PROSTHESIS"
	OrderTypeShoes      = "SHOES"
	OrderTypeOttobock   = "OTTOBOCK"
	OrderTypeRepair     = "REPAIR"
	OrderTypeReadyTSR   = "READY_TSR"
)

// Workshop codes.
const (
	WorkshopProsthesis = "PROSTHESIS"
	WorkshopShoes      = "SHOES"
	WorkshopOttobock   = "OTTOBOCK"
	WorkshopRepair     = "REPAIR"
)

// Urgency codes.
const (
	UrgencyNormal = "NORMAL"
	UrgencyUrgent = "URGENT"
)

// Payment type codes.
const (
	PaymentFree    = "FREE"
	PaymentPartial = "PARTIAL"
	PaymentPaid    = "PAID"
)

// Order is a manufacturing work ticket linked to a personal case.
// The order number (ORD-YYYY-NNNN) is assigned once at creation.
type Order struct {
	gorm.Model
	PersonalCaseID uint          `json:"personal_case_id" gorm:"index"`
	PersonalCase   *PersonalCase `json:"personal_case,omitempty" gorm:"foreignKey:PersonalCaseID"`
	OrderNumber    string        `json:"order_number" gorm:"uniqueIndex;size:20"`

	Type        string  `json:"type" gorm:"index;size:20"`
	PrimaryFlag bool    `json:"primary_flag" gorm:"default:true"`
	Urgency     string  `json:"urgency" gorm:"size:10;default:NORMAL"`
	PaymentType string  `json:"payment_type" gorm:"size:10;default:FREE"`
	Amount      float64 `json:"amount" gorm:"type:decimal(12,2);default:0"`
	Workshop    string  `json:"workshop" gorm:"index;size:20"`
	Status      string  `json:"status" gorm:"index;size:30;default:DRAFT"`

	Diagnosis  string `json:"diagnosis" gorm:"size:100"`
	Category   string `json:"category" gorm:"size:100"`
	ItemName   string `json:"item_name" gorm:"size:200"`
	MasterName string `json:"master_name" gorm:"size:100"`

	PlannedManufactureDate string `json:"planned_manufacture_date" gorm:"type:date"`
	PlannedIssueDate       string `json:"planned_issue_date" gorm:"type:date"`

	Fitting1Call  *time.Time `json:"fitting1_call"`
	Fitting1Visit *time.Time `json:"fitting1_visit"`
	Fitting2Call  *time.Time `json:"fitting2_call"`
	Fitting2Visit *time.Time `json:"fitting2_visit"`
	Fitting3Call  *time.Time `json:"fitting3_call"`
	Fitting3Visit *time.Time `json:"fitting3_visit"`

	// Spec holds the semi-structured item specification as a raw JSON
	// document; the backend stores it opaquely.
	Spec string `json:"spec" gorm:"type:text"`

	CreatedBy int `json:"created_by"`
	UpdatedBy int `json:"updated_by"`
}

// PatientName dereferences the linked case. Empty when the case is not
// preloaded.
func (o *Order) PatientName() string {
	if o.PersonalCase == nil {
		return ""
	}
	return o.PersonalCase.FullName()
}

// PatientPin dereferences the linked case.
func (o *Order) PatientPin() string {
	if o.PersonalCase == nil {
		return ""
	}
	return o.PersonalCase.Pin
}
