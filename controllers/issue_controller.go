package controllers

import (
	"errors"

	"ortho-app/models"
	"ortho-app/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IssueController struct {
	DB       *gorm.DB
	Workflow *repositories.WorkflowRepository
}

func NewIssueController(db *gorm.DB) *IssueController {
	return &IssueController{DB: db, Workflow: repositories.NewWorkflowRepository(db)}
}

type issueInput struct {
	WarehouseEntryID uint   `json:"warehouse_entry_id" validate:"required"`
	ReceiverName     string `json:"receiver_name" validate:"required"`
	DocumentRef      string `json:"document_ref"`
	Comment          string `json:"comment"`
}

// CreateIssue hands a warehouse item to the patient. The entry and the
// linked order move to ISSUED in the same transaction.
func (c *IssueController) CreateIssue(ctx *fiber.Ctx) error {
	var input issueInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	issue := models.Issue{
		WarehouseEntryID: input.WarehouseEntryID,
		ReceiverName:     input.ReceiverName,
		DocumentRef:      input.DocumentRef,
		Comment:          input.Comment,
		CreatedBy:        userIDFromCtx(ctx),
	}

	if err := c.Workflow.CreateIssue(&issue); err != nil {
		var invalid *models.ErrInvalidTransition
		if errors.As(err, &invalid) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": invalid.Error()})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse entry not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Issue created successfully",
		"data":    issue,
	})
}

func (c *IssueController) GetAllIssues(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.Issue{}).
		Preload("WarehouseEntry").
		Preload("WarehouseEntry.Order").
		Preload("WarehouseEntry.Order.PersonalCase").
		Order("issued_at desc")

	if entryID := ctx.Query("warehouse_entry_id"); entryID != "" {
		query = query.Where("warehouse_entry_id = ?", entryID)
	}
	if receiver := ctx.Query("receiver"); receiver != "" {
		query = query.Where("receiver_name LIKE ?", "%"+receiver+"%")
	}

	var issues []models.Issue
	if err := query.Find(&issues).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Issues found",
		"data":    issues,
		"total":   len(issues),
	})
}

func (c *IssueController) GetIssueByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Issue
	if err := c.DB.Preload("WarehouseEntry").Preload("WarehouseEntry.Invoice").
		Preload("WarehouseEntry.Order").Preload("WarehouseEntry.Order.PersonalCase").
		First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Issue not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Issue found",
		"data":    result,
	})
}
