package controllers

import (
	"errors"
	"time"

	"ortho-app/controllers/idgen"
	"ortho-app/models"
	"ortho-app/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WarehouseController struct {
	DB       *gorm.DB
	Workflow *repositories.WorkflowRepository
}

func NewWarehouseController(db *gorm.DB) *WarehouseController {
	return &WarehouseController{DB: db, Workflow: repositories.NewWorkflowRepository(db)}
}

type entryInput struct {
	InvoiceID    uint   `json:"invoice_id" validate:"required"`
	ProductName  string `json:"product_name" validate:"required"`
	SerialNumber string `json:"serial_number"`
}

// CreateEntry books a received item onto stock. The order reference is
// resolved through the invoice; a stock label is generated on receipt.
func (c *WarehouseController) CreateEntry(ctx *fiber.Ctx) error {
	var input entryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var invoice models.Invoice
	if err := c.DB.First(&invoice, input.InvoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	entry := models.WarehouseEntry{
		InvoiceID:    invoice.ID,
		OrderID:      invoice.OrderID,
		ProductName:  input.ProductName,
		SerialNumber: input.SerialNumber,
		StockLabel:   idgen.GenerateStockLabel(),
		Status:       models.EntryOnStock,
		ArrivedAt:    time.Now(),
		CreatedBy:    userIDFromCtx(ctx),
	}

	if err := c.DB.Create(&entry).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Warehouse entry created successfully",
		"data":    entry,
	})
}

func (c *WarehouseController) GetAllEntries(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.WarehouseEntry{}).
		Preload("Invoice").
		Preload("Order").
		Preload("Order.PersonalCase").
		Order("arrived_at desc")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if invoiceID := ctx.Query("invoice_id"); invoiceID != "" {
		query = query.Where("invoice_id = ?", invoiceID)
	}
	if orderID := ctx.Query("order_id"); orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}

	var entries []models.WarehouseEntry
	if err := query.Find(&entries).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Warehouse entries found",
		"data":    entries,
		"total":   len(entries),
	})
}

func (c *WarehouseController) GetEntryByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.WarehouseEntry
	if err := c.DB.Preload("Invoice").Preload("Order").Preload("Order.PersonalCase").First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse entry not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Warehouse entry found",
		"data": fiber.Map{
			"entry":          result,
			"order_number":   result.OrderNumber(),
			"invoice_number": result.InvoiceNumber(),
		},
	})
}

// ReserveEntry marks an on-stock item as reserved for its patient.
func (c *WarehouseController) ReserveEntry(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var entry models.WarehouseEntry
	if err := c.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse entry not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if entry.Status != models.EntryOnStock {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Only on-stock entries can be reserved, current status: " + entry.Status,
		})
	}

	if err := c.DB.Model(&entry).UpdateColumns(map[string]interface{}{
		"status":     models.EntryReserved,
		"updated_by": userIDFromCtx(ctx),
	}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	entry.Status = models.EntryReserved
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Warehouse entry reserved successfully",
		"data":    entry,
	})
}
