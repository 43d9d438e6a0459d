package controllers

import (
	"errors"
	"log"

	"ortho-app/models"
	"ortho-app/notify"
	"ortho-app/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InvoiceController struct {
	DB       *gorm.DB
	Workflow *repositories.WorkflowRepository
	Mailer   *notify.Mailer
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{
		DB:       db,
		Workflow: repositories.NewWorkflowRepository(db),
		Mailer:   notify.NewMailer(),
	}
}

type invoiceInput struct {
	OrderID        uint   `json:"order_id" validate:"required"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	SenderWorkshop string `json:"sender_workshop" validate:"required,oneof=PROSTHESIS SHOES OTTOBOCK REPAIR"`
	Comment        string `json:"comment"`
}

// CreateInvoice records the workshop-to-warehouse transfer. The order
// moves to TRANSFERRED_TO_WAREHOUSE in the same transaction.
func (c *InvoiceController) CreateInvoice(ctx *fiber.Ctx) error {
	var input invoiceInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	invoice := models.Invoice{
		OrderID:        input.OrderID,
		Date:           input.Date,
		SenderWorkshop: input.SenderWorkshop,
		Comment:        input.Comment,
		CreatedBy:      userIDFromCtx(ctx),
	}

	if err := c.Workflow.CreateInvoice(&invoice); err != nil {
		var invalid *models.ErrInvalidTransition
		if errors.As(err, &invalid) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": invalid.Error()})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.notifyPatient(invoice)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Invoice created successfully",
		"data":    invoice,
	})
}

// notifyPatient mails the patient that the item is at the warehouse.
// Best effort: a mail failure never fails the request.
func (c *InvoiceController) notifyPatient(invoice models.Invoice) {
	if !c.Mailer.Enabled() {
		return
	}

	var order models.Order
	if err := c.DB.Preload("PersonalCase").First(&order, invoice.OrderID).Error; err != nil {
		return
	}
	if order.PersonalCase == nil || order.PersonalCase.Email == "" {
		return
	}

	go func(email, name, orderNumber string) {
		if err := c.Mailer.SendTransferNotice(email, name, orderNumber); err != nil {
			log.Printf("Failed to send transfer notice for %s: %v", orderNumber, err)
		}
	}(order.PersonalCase.Email, order.PersonalCase.FullName(), order.OrderNumber)
}

func (c *InvoiceController) GetAllInvoices(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.Invoice{}).Preload("Order").Preload("Order.PersonalCase").Order("created_at desc")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if workshop := ctx.Query("sender_workshop"); workshop != "" {
		query = query.Where("sender_workshop = ?", workshop)
	}
	if orderID := ctx.Query("order_id"); orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Invoices found",
		"data":    invoices,
		"total":   len(invoices),
	})
}

func (c *InvoiceController) GetInvoiceByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Invoice
	if err := c.DB.Preload("Order").Preload("Order.PersonalCase").First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Invoice found",
		"data": fiber.Map{
			"invoice":      result,
			"order_number": result.OrderNumber(),
			"patient_name": result.PatientName(),
		},
	})
}
