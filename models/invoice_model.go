package models

import "gorm.io/gorm"

// Invoice statuses.
const (
	InvoiceOnIssue  = "ON_ISSUE"
	InvoiceIssued   = "ISSUED"
	InvoiceCanceled = "CANCELED"
)

// InvoiceReceiverWarehouse is the fixed receiver of transfer invoices.
const InvoiceReceiverWarehouse = "WAREHOUSE"

// Invoice documents the transfer of a finished item from a workshop to
// the warehouse. Creating one moves the referenced order to
// TRANSFERRED_TO_WAREHOUSE inside the same transaction.
type Invoice struct {
	gorm.Model
	OrderID       uint   `json:"order_id" gorm:"index"`
	Order         *Order `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	InvoiceNumber string `json:"invoice_number" gorm:"uniqueIndex;size:20"`

	Date           string `json:"date" gorm:"type:date;index"`
	SenderWorkshop string `json:"sender_workshop" gorm:"index;size:20"`
	Receiver       string `json:"receiver" gorm:"size:20;default:WAREHOUSE"`
	Status         string `json:"status" gorm:"index;size:20;default:ON_ISSUE"`

	Comment string `json:"comment"`

	CreatedBy int `json:"created_by"`
	UpdatedBy int `json:"updated_by"`
}

func (i *Invoice) OrderNumber() string {
	if i.Order == nil {
		return ""
	}
	return i.Order.OrderNumber
}

func (i *Invoice) PatientName() string {
	if i.Order == nil {
		return ""
	}
	return i.Order.PatientName()
}
