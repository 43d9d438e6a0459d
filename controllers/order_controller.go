package controllers

import (
	"errors"
	"time"

	"ortho-app/models"
	"ortho-app/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderController struct {
	DB       *gorm.DB
	Workflow *repositories.WorkflowRepository
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Workflow: repositories.NewWorkflowRepository(db)}
}

type orderInput struct {
	PersonalCaseID uint    `json:"personal_case_id" validate:"required"`
	Type           string  `json:"type" validate:"required,oneof=PROSTHESIS SHOES OTTOBOCK REPAIR READY_TSR"`
	PrimaryFlag    *bool   `json:"primary_flag"`
	Urgency        string  `json:"urgency" validate:"omitempty,oneof=NORMAL URGENT"`
	PaymentType    string  `json:"payment_type" validate:"omitempty,oneof=FREE PARTIAL PAID"`
	Amount         float64 `json:"amount" validate:"gte=0"`
	Workshop       string  `json:"workshop" validate:"required,oneof=PROSTHESIS SHOES OTTOBOCK REPAIR"`

	Diagnosis  string `json:"diagnosis"`
	Category   string `json:"category"`
	ItemName   string `json:"item_name"`
	MasterName string `json:"master_name"`

	PlannedManufactureDate string `json:"planned_manufacture_date" validate:"omitempty,datetime=2006-01-02"`
	PlannedIssueDate       string `json:"planned_issue_date" validate:"omitempty,datetime=2006-01-02"`

	Fitting1Call  *time.Time `json:"fitting1_call"`
	Fitting1Visit *time.Time `json:"fitting1_visit"`
	Fitting2Call  *time.Time `json:"fitting2_call"`
	Fitting2Visit *time.Time `json:"fitting2_visit"`
	Fitting3Call  *time.Time `json:"fitting3_call"`
	Fitting3Visit *time.Time `json:"fitting3_visit"`

	Spec string `json:"spec"`
}

func (in *orderInput) toModel(userID int) models.Order {
	order := models.Order{
		PersonalCaseID:         in.PersonalCaseID,
		Type:                   in.Type,
		PrimaryFlag:            true,
		Urgency:                in.Urgency,
		PaymentType:            in.PaymentType,
		Amount:                 in.Amount,
		Workshop:               in.Workshop,
		Diagnosis:              in.Diagnosis,
		Category:               in.Category,
		ItemName:               in.ItemName,
		MasterName:             in.MasterName,
		PlannedManufactureDate: in.PlannedManufactureDate,
		PlannedIssueDate:       in.PlannedIssueDate,
		Fitting1Call:           in.Fitting1Call,
		Fitting1Visit:          in.Fitting1Visit,
		Fitting2Call:           in.Fitting2Call,
		Fitting2Visit:          in.Fitting2Visit,
		Fitting3Call:           in.Fitting3Call,
		Fitting3Visit:          in.Fitting3Visit,
		Spec:                   in.Spec,
		CreatedBy:              userID,
	}
	if in.PrimaryFlag != nil {
		order.PrimaryFlag = *in.PrimaryFlag
	}
	if order.Urgency == "" {
		order.Urgency = models.UrgencyNormal
	}
	if order.PaymentType == "" {
		order.PaymentType = models.PaymentFree
	}
	return order
}

func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	var input orderInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order := input.toModel(userIDFromCtx(ctx))

	if err := c.Workflow.CreateOrder(&order); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Personal case not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order created successfully",
		"data":    order,
	})
}

func (c *OrderController) GetAllOrders(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.Order{}).Preload("PersonalCase").Order("created_at desc")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if workshop := ctx.Query("workshop"); workshop != "" {
		query = query.Where("workshop = ?", workshop)
	}
	if orderType := ctx.Query("type"); orderType != "" {
		query = query.Where("type = ?", orderType)
	}
	if caseID := ctx.Query("case_id"); caseID != "" {
		query = query.Where("personal_case_id = ?", caseID)
	}
	if search := ctx.Query("search"); search != "" {
		query = query.Where("order_number LIKE ?", "%"+search+"%")
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	type orderRow struct {
		models.Order
		PatientName string `json:"patient_name"`
		PatientPin  string `json:"patient_pin"`
	}
	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow{Order: o, PatientName: o.PatientName(), PatientPin: o.PatientPin()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Orders found",
		"data":    rows,
		"total":   len(rows),
	})
}

func (c *OrderController) GetOrderByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Order
	if err := c.DB.Preload("PersonalCase").First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Order found",
		"data": fiber.Map{
			"order":        result,
			"patient_name": result.PatientName(),
			"patient_pin":  result.PatientPin(),
		},
	})
}

// UpdateOrder updates order attributes. The order number and status are
// not writable here; status changes go through UpdateOrderStatus.
func (c *OrderController) UpdateOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var existing models.Order
	if err := c.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input orderInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Full-replace semantics: a map so false/empty fields (cleared
	// primary flag, dropped master name) are written too, which a
	// struct-based Updates would skip as zero values.
	order := input.toModel(0)
	updates := map[string]interface{}{
		"personal_case_id":         order.PersonalCaseID,
		"type":                     order.Type,
		"primary_flag":             order.PrimaryFlag,
		"urgency":                  order.Urgency,
		"payment_type":             order.PaymentType,
		"amount":                   order.Amount,
		"workshop":                 order.Workshop,
		"diagnosis":                order.Diagnosis,
		"category":                 order.Category,
		"item_name":                order.ItemName,
		"master_name":              order.MasterName,
		"planned_manufacture_date": order.PlannedManufactureDate,
		"planned_issue_date":       order.PlannedIssueDate,
		"fitting1_call":            order.Fitting1Call,
		"fitting1_visit":           order.Fitting1Visit,
		"fitting2_call":            order.Fitting2Call,
		"fitting2_visit":           order.Fitting2Visit,
		"fitting3_call":            order.Fitting3Call,
		"fitting3_visit":           order.Fitting3Visit,
		"spec":                     order.Spec,
		"updated_by":               userIDFromCtx(ctx),
	}

	if err := c.DB.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Preload("PersonalCase").First(&existing, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Order updated successfully",
		"data":    existing,
	})
}

// UpdateOrderStatus is the manual transition operation. Illegal
// transitions are rejected with 409.
func (c *OrderController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Status string `json:"status" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !models.ValidOrderStatus(input.Status) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown order status: " + input.Status})
	}

	order, err := c.Workflow.ChangeOrderStatus(uint(id), input.Status, userIDFromCtx(ctx))
	if err != nil {
		var invalid *models.ErrInvalidTransition
		if errors.As(err, &invalid) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": invalid.Error()})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Order status updated successfully",
		"data":    order,
	})
}

func (c *OrderController) DeleteOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var order models.Order
	if err := c.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&order).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Order deleted successfully",
	})
}
