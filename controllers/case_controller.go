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

type CaseController struct {
	DB       *gorm.DB
	Workflow *repositories.WorkflowRepository
}

func NewCaseController(db *gorm.DB) *CaseController {
	return &CaseController{DB: db, Workflow: repositories.NewWorkflowRepository(db)}
}

type caseInput struct {
	Pin        string `json:"pin" validate:"required,min=4,max=14"`
	LastName   string `json:"last_name" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	MiddleName string `json:"middle_name"`
	Sex        string `json:"sex" validate:"required,oneof=M F"`
	BirthDate  string `json:"birth_date" validate:"required,datetime=2006-01-02"`

	AddressRegistration string `json:"address_registration" validate:"required"`
	AddressActual       string `json:"address_actual"`

	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`

	DisabilityGroup string `json:"disability_group" validate:"required,oneof=NONE I II III CHILD"`
	MsekNumber      string `json:"msek_number"`
	MsekDate        string `json:"msek_date" validate:"omitempty,datetime=2006-01-02"`
	IpraNumber      string `json:"ipra_number"`
	IpraDate        string `json:"ipra_date" validate:"omitempty,datetime=2006-01-02"`
	IpraValidTo     string `json:"ipra_valid_to" validate:"omitempty,datetime=2006-01-02"`

	Notes string `json:"notes"`
}

func (c *CaseController) CreateCase(ctx *fiber.Ctx) error {
	var input caseInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	personalCase := models.PersonalCase{
		Pin:                 input.Pin,
		LastName:            input.LastName,
		FirstName:           input.FirstName,
		MiddleName:          input.MiddleName,
		Sex:                 input.Sex,
		BirthDate:           input.BirthDate,
		AddressRegistration: input.AddressRegistration,
		AddressActual:       input.AddressActual,
		Phone:               input.Phone,
		Email:               input.Email,
		DisabilityGroup:     input.DisabilityGroup,
		MsekNumber:          input.MsekNumber,
		MsekDate:            input.MsekDate,
		IpraNumber:          input.IpraNumber,
		IpraDate:            input.IpraDate,
		IpraValidTo:         input.IpraValidTo,
		Notes:               input.Notes,
		CreatedBy:           userIDFromCtx(ctx),
	}

	if err := c.Workflow.CreateCase(&personalCase); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Personal case created successfully",
		"data":    personalCase,
	})
}

func (c *CaseController) GetAllCases(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.PersonalCase{}).Order("created_at desc")

	if group := ctx.Query("disability_group"); group != "" {
		query = query.Where("disability_group = ?", group)
	}
	if search := ctx.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("pin LIKE ? OR last_name LIKE ? OR first_name LIKE ? OR middle_name LIKE ?",
			like, like, like, like)
	}

	var cases []models.PersonalCase
	if err := query.Find(&cases).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Personal cases found",
		"data":    cases,
		"total":   len(cases),
	})
}

func (c *CaseController) GetCaseByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.PersonalCase
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Personal case not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Personal case found",
		"data": fiber.Map{
			"case":      result,
			"full_name": result.FullName(),
			"age":       result.Age(time.Now()),
		},
	})
}

// UpdateCase updates any field except the case number, which is
// immutable after creation.
func (c *CaseController) UpdateCase(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var existing models.PersonalCase
	if err := c.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Personal case not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input caseInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Full-replace semantics: a map so cleared fields (empty middle
	// name, dropped notes) are written too, which a struct-based
	// Updates would skip as zero values.
	updates := map[string]interface{}{
		"pin":                  input.Pin,
		"last_name":            input.LastName,
		"first_name":           input.FirstName,
		"middle_name":          input.MiddleName,
		"sex":                  input.Sex,
		"birth_date":           input.BirthDate,
		"address_registration": input.AddressRegistration,
		"address_actual":       input.AddressActual,
		"phone":                input.Phone,
		"email":                input.Email,
		"disability_group":     input.DisabilityGroup,
		"msek_number":          input.MsekNumber,
		"msek_date":            input.MsekDate,
		"ipra_number":          input.IpraNumber,
		"ipra_date":            input.IpraDate,
		"ipra_valid_to":        input.IpraValidTo,
		"notes":                input.Notes,
		"updated_by":           userIDFromCtx(ctx),
	}

	if err := c.DB.Model(&models.PersonalCase{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.First(&existing, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Personal case updated successfully",
		"data":    existing,
	})
}

func userIDFromCtx(ctx *fiber.Ctx) int {
	if v, ok := ctx.Locals("userID").(float64); ok {
		return int(v)
	}
	return 0
}
