package models

import "gorm.io/gorm"

// Sequence kinds.
const (
	SequenceCase    = "CASE"
	SequenceOrder   = "ORDER"
	SequenceInvoice = "INV"
)

// NumberSequence is the per-year counter backing business number
// allocation. One row per (kind, year), incremented under a row lock.
type NumberSequence struct {
	gorm.Model
	Kind  string `json:"kind" gorm:"size:10;uniqueIndex:idx_sequence_kind_year"`
	Year  int    `json:"year" gorm:"uniqueIndex:idx_sequence_kind_year"`
	Value int    `json:"value"`
}
