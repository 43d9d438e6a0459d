package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Disability group codes.
const (
	DisabilityNone  = "NONE"
	DisabilityI     = "I"
	DisabilityII    = "II"
	DisabilityIII   = "III"
	DisabilityChild = "CHILD"
)

// PersonalCase is the registered patient record. The case number is
// assigned once at creation (YYYY-NNNN) and never changes afterwards.
type PersonalCase struct {
	gorm.Model
	Number     string `json:"number" gorm:"uniqueIndex;size:20"`
	Pin        string `json:"pin" gorm:"index;size:14"`
	LastName   string `json:"last_name" gorm:"index;size:100"`
	FirstName  string `json:"first_name" gorm:"size:100"`
	MiddleName string `json:"middle_name" gorm:"size:100"`
	Sex        string `json:"sex" gorm:"size:1"`
	BirthDate  string `json:"birth_date" gorm:"type:date"`

	AddressRegistration string `json:"address_registration"`
	AddressActual       string `json:"address_actual"`

	Phone string `json:"phone" gorm:"size:20"`
	Email string `json:"email"`

	DisabilityGroup string `json:"disability_group" gorm:"index;size:10;default:NONE"`
	MsekNumber      string `json:"msek_number" gorm:"size:50"`
	MsekDate        string `json:"msek_date" gorm:"type:date"`
	IpraNumber      string `json:"ipra_number" gorm:"size:50"`
	IpraDate        string `json:"ipra_date" gorm:"type:date"`
	IpraValidTo     string `json:"ipra_valid_to" gorm:"type:date"`

	Notes string `json:"notes"`

	CreatedBy int `json:"created_by"`
	UpdatedBy int `json:"updated_by"`
}

// FullName joins the name parts, skipping an empty middle name.
func (c *PersonalCase) FullName() string {
	parts := []string{c.LastName, c.FirstName}
	if c.MiddleName != "" {
		parts = append(parts, c.MiddleName)
	}
	return strings.Join(parts, " ")
}

// Age returns full years at the given date, counting the birthday as
// already passed only when month/day has been reached.
func (c *PersonalCase) Age(at time.Time) int {
	birth, err := time.Parse("2006-01-02", c.BirthDate)
	if err != nil {
		return 0
	}
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age
}
