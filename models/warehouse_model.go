package models

import (
	"time"

	"gorm.io/gorm"
)

// Warehouse entry statuses.
const (
	EntryOnStock  = "ON_STOCK"
	EntryReserved = "RESERVED"
	EntryIssued   = "ISSUED"
)

// WarehouseEntry is one manufactured item held at the warehouse. The
// order is stored directly even though it is reachable through the
// invoice, so the register can be filtered without a join.
type WarehouseEntry struct {
	gorm.Model
	InvoiceID uint     `json:"invoice_id" gorm:"index"`
	Invoice   *Invoice `json:"invoice,omitempty" gorm:"foreignKey:InvoiceID"`
	OrderID   uint     `json:"order_id" gorm:"index"`
	Order     *Order   `json:"order,omitempty" gorm:"foreignKey:OrderID"`

	ProductName  string `json:"product_name" gorm:"size:200"`
	SerialNumber string `json:"serial_number" gorm:"size:100"`
	// StockLabel is the warehouse shelf label printed on receipt,
	// generated from the snowflake node.
	StockLabel string `json:"stock_label" gorm:"uniqueIndex;size:30"`
	Status     string `json:"status" gorm:"index;size:20;default:ON_STOCK"`

	ArrivedAt time.Time `json:"arrived_at" gorm:"index"`

	CreatedBy int `json:"created_by"`
	UpdatedBy int `json:"updated_by"`
}

func (e *WarehouseEntry) OrderNumber() string {
	if e.Order == nil {
		return ""
	}
	return e.Order.OrderNumber
}

func (e *WarehouseEntry) InvoiceNumber() string {
	if e.Invoice == nil {
		return ""
	}
	return e.Invoice.InvoiceNumber
}

// Issue records handing a warehouse item to the patient. Creating one
// moves the entry and the linked order to ISSUED inside the same
// transaction.
type Issue struct {
	gorm.Model
	WarehouseEntryID uint            `json:"warehouse_entry_id" gorm:"index"`
	WarehouseEntry   *WarehouseEntry `json:"warehouse_entry,omitempty" gorm:"foreignKey:WarehouseEntryID"`

	ReceiverName string    `json:"receiver_name" gorm:"index;size:200"`
	DocumentRef  string    `json:"document_ref" gorm:"size:100"`
	Comment      string    `json:"comment"`
	IssuedAt     time.Time `json:"issued_at" gorm:"index"`

	CreatedBy int `json:"created_by"`
}
