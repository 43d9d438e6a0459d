package repositories

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ortho-app/models"

	"gorm.io/gorm"
)

// SequenceRepository allocates year-scoped business numbers
// (YYYY-NNNN, ORD-YYYY-NNNN, INV-YYYY-NNNN) from per-(kind, year)
// counter rows. The increment is a single UPDATE so concurrent
// allocations in separate transactions cannot hand out the same value;
// the unique index on the counter row resolves the first-allocation
// race (the losing transaction gets a constraint error and the caller
// retries).
type SequenceRepository struct {
	DB *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{DB: db}
}

// Prefix returns the number prefix for a kind and year, e.g.
// "ORD-2026-". The case prefix carries no kind tag.
func Prefix(kind string, year int) string {
	switch kind {
	case models.SequenceCase:
		return fmt.Sprintf("%d-", year)
	case models.SequenceOrder:
		return fmt.Sprintf("ORD-%d-", year)
	case models.SequenceInvoice:
		return fmt.Sprintf("INV-%d-", year)
	}
	return fmt.Sprintf("%d-", year)
}

// Next allocates the next number for kind/year inside tx. Numbers are
// monotonically increasing within a year. The counter update lives in
// the caller's transaction, so an aborted entity insert rolls the
// counter back and the value is handed out again on the next attempt.
func (r *SequenceRepository) Next(tx *gorm.DB, kind string, year int) (string, error) {
	res := tx.Model(&models.NumberSequence{}).
		Where("kind = ? AND year = ?", kind, year).
		UpdateColumn("value", gorm.Expr("value + ?", 1))
	if res.Error != nil {
		return "", res.Error
	}

	if res.RowsAffected == 0 {
		// First allocation for this kind/year: seed the counter from
		// whatever numbers already exist with this prefix. A concurrent
		// first allocation loses on the unique (kind, year) index and
		// surfaces the conflict to the caller.
		seed, err := r.seedFromExisting(tx, kind, year)
		if err != nil {
			return "", err
		}
		seq := models.NumberSequence{Kind: kind, Year: year, Value: seed + 1}
		if err := tx.Create(&seq).Error; err != nil {
			return "", err
		}
		return Prefix(kind, year) + fmt.Sprintf("%04d", seq.Value), nil
	}

	var seq models.NumberSequence
	if err := tx.Where("kind = ? AND year = ?", kind, year).First(&seq).Error; err != nil {
		return "", err
	}
	return Prefix(kind, year) + fmt.Sprintf("%04d", seq.Value), nil
}

// seedFromExisting scans the entity table for the highest number with
// this year's prefix. A malformed suffix counts as no prior sequence.
func (r *SequenceRepository) seedFromExisting(tx *gorm.DB, kind string, year int) (int, error) {
	prefix := Prefix(kind, year)

	var query *gorm.DB
	switch kind {
	case models.SequenceCase:
		query = tx.Unscoped().Model(&models.PersonalCase{}).Select("max(number)").Where("number LIKE ?", prefix+"%")
	case models.SequenceOrder:
		query = tx.Unscoped().Model(&models.Order{}).Select("max(order_number)").Where("order_number LIKE ?", prefix+"%")
	case models.SequenceInvoice:
		query = tx.Unscoped().Model(&models.Invoice{}).Select("max(invoice_number)").Where("invoice_number LIKE ?", prefix+"%")
	default:
		return 0, errors.New("unknown sequence kind: " + kind)
	}

	var max *string
	if err := query.Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil || *max == "" {
		return 0, nil
	}

	parts := strings.Split(*max, "-")
	last, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || last < 0 {
		return 0, nil
	}
	return last, nil
}
