package repositories

import (
	"time"

	"ortho-app/config"
	"ortho-app/models"

	"gorm.io/gorm"
)

// WorkflowRepository owns the create operations that combine number
// allocation and cross-record status updates. Every operation runs in
// one transaction, so a failure partway through leaves nothing behind.
type WorkflowRepository struct {
	DB        *gorm.DB
	Sequences *SequenceRepository
	// Guard is config.GuardPermissive or config.GuardStrict.
	Guard string
}

func NewWorkflowRepository(db *gorm.DB) *WorkflowRepository {
	return &WorkflowRepository{
		DB:        db,
		Sequences: NewSequenceRepository(db),
		Guard:     config.TransitionGuard,
	}
}

func (r *WorkflowRepository) guarded() bool {
	return r.Guard == config.GuardStrict
}

// CreateCase allocates the case number and inserts the record.
func (r *WorkflowRepository) CreateCase(personalCase *models.PersonalCase) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		number, err := r.Sequences.Next(tx, models.SequenceCase, time.Now().Year())
		if err != nil {
			return err
		}
		personalCase.Number = number
		return tx.Create(personalCase).Error
	})
}

// CreateOrder allocates the order number and inserts the record. The
// referenced case must exist.
func (r *WorkflowRepository) CreateOrder(order *models.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var personalCase models.PersonalCase
		if err := tx.First(&personalCase, order.PersonalCaseID).Error; err != nil {
			return err
		}

		number, err := r.Sequences.Next(tx, models.SequenceOrder, time.Now().Year())
		if err != nil {
			return err
		}
		order.OrderNumber = number
		if order.Status == "" {
			order.Status = models.StatusDraft
		}
		return tx.Create(order).Error
	})
}

// CreateInvoice allocates the invoice number, inserts the invoice and
// moves the referenced order to TRANSFERRED_TO_WAREHOUSE with a
// status-only update. In guarded mode the order must currently be
// READY_FOR_TRANSFER.
func (r *WorkflowRepository) CreateInvoice(invoice *models.Invoice) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, invoice.OrderID).Error; err != nil {
			return err
		}

		if r.guarded() {
			if _, err := models.Transition(order.Status, models.StatusTransferred); err != nil {
				return err
			}
		}

		number, err := r.Sequences.Next(tx, models.SequenceInvoice, time.Now().Year())
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = number
		if invoice.Receiver == "" {
			invoice.Receiver = models.InvoiceReceiverWarehouse
		}
		if invoice.Status == "" {
			invoice.Status = models.InvoiceOnIssue
		}
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}

		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			UpdateColumn("status", models.StatusTransferred).Error
	})
}

// CreateIssue inserts the issue and moves the warehouse entry and its
// order to ISSUED, all status-only updates in one transaction. In
// guarded mode the entry must be ON_STOCK or RESERVED, which also
// blocks a double issue.
func (r *WorkflowRepository) CreateIssue(issue *models.Issue) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var entry models.WarehouseEntry
		if err := tx.First(&entry, issue.WarehouseEntryID).Error; err != nil {
			return err
		}

		if r.guarded() {
			if entry.Status != models.EntryOnStock && entry.Status != models.EntryReserved {
				return &models.ErrInvalidTransition{Entity: "warehouse entry", From: entry.Status, To: models.EntryIssued}
			}
			var order models.Order
			if err := tx.First(&order, entry.OrderID).Error; err != nil {
				return err
			}
			if _, err := models.Transition(order.Status, models.StatusIssued); err != nil {
				return err
			}
		}

		if issue.IssuedAt.IsZero() {
			issue.IssuedAt = time.Now()
		}
		if err := tx.Create(issue).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.WarehouseEntry{}).Where("id = ?", entry.ID).
			UpdateColumn("status", models.EntryIssued).Error; err != nil {
			return err
		}
		return tx.Model(&models.Order{}).Where("id = ?", entry.OrderID).
			UpdateColumn("status", models.StatusIssued).Error
	})
}

// ChangeOrderStatus is the manual transition operation for operators.
// It always consults the transition table, regardless of guard mode.
func (r *WorkflowRepository) ChangeOrderStatus(orderID uint, to string, userID int) (*models.Order, error) {
	var order models.Order
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}
		newStatus, err := models.Transition(order.Status, to)
		if err != nil {
			return err
		}
		order.Status = newStatus
		order.UpdatedBy = userID
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			UpdateColumns(map[string]interface{}{"status": newStatus, "updated_by": userID}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
