package controllers

import (
	"errors"

	"ortho-app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DictionaryController struct {
	DB *gorm.DB
}

func NewDictionaryController(db *gorm.DB) *DictionaryController {
	return &DictionaryController{DB: db}
}

type dictInput struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (c *DictionaryController) GetTSRCategories(ctx *fiber.Ctx) error {
	var items []models.TSRCategory
	if err := c.DB.Order("code").Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "TSR categories found", "data": items})
}

func (c *DictionaryController) CreateTSRCategory(ctx *fiber.Ctx) error {
	var input dictInput
	if ok, err := parseDictInput(ctx, &input); !ok {
		return err
	}
	item := models.TSRCategory{Code: input.Code, Name: input.Name, Description: input.Description}
	if err := c.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "TSR category created successfully", "data": item})
}

func (c *DictionaryController) UpdateTSRCategory(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	var input dictInput
	if ok, err := parseDictInput(ctx, &input); !ok {
		return err
	}
	var item models.TSRCategory
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "TSR category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	item.Code, item.Name, item.Description = input.Code, input.Name, input.Description
	if err := c.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "TSR category updated successfully", "data": item})
}

func (c *DictionaryController) DeleteTSRCategory(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	if err := c.DB.Delete(&models.TSRCategory{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "TSR category deleted successfully"})
}

func (c *DictionaryController) GetWorkshops(ctx *fiber.Ctx) error {
	var items []models.WorkshopDict
	if err := c.DB.Order("code").Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Workshops found", "data": items})
}

func (c *DictionaryController) CreateWorkshop(ctx *fiber.Ctx) error {
	var input dictInput
	if ok, err := parseDictInput(ctx, &input); !ok {
		return err
	}
	item := models.WorkshopDict{Code: input.Code, Name: input.Name, Description: input.Description}
	if err := c.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Workshop created successfully", "data": item})
}

func (c *DictionaryController) UpdateWorkshop(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	var input dictInput
	if ok, err := parseDictInput(ctx, &input); !ok {
		return err
	}
	var item models.WorkshopDict
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workshop not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	item.Code, item.Name, item.Description = input.Code, input.Name, input.Description
	if err := c.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Workshop updated successfully", "data": item})
}

func (c *DictionaryController) DeleteWorkshop(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	if err := c.DB.Delete(&models.WorkshopDict{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Workshop deleted successfully"})
}

func (c *DictionaryController) GetOrderStatuses(ctx *fiber.Ctx) error {
	var items []models.OrderStatusDict
	if err := c.DB.Order("code").Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order statuses found", "data": items})
}

func (c *DictionaryController) CreateOrderStatus(ctx *fiber.Ctx) error {
	var input dictInput
	if ok, err := parseDictInput(ctx, &input); !ok {
		return err
	}
	item := models.OrderStatusDict{Code: input.Code, Name: input.Name, Description: input.Description}
	if err := c.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Order status created successfully", "data": item})
}

func (c *DictionaryController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	var input dictInput
	if ok, err := parseDictInput(ctx, &input); !ok {
		return err
	}
	var item models.OrderStatusDict
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order status not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	item.Code, item.Name, item.Description = input.Code, input.Name, input.Description
	if err := c.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order status updated successfully", "data": item})
}

func (c *DictionaryController) DeleteOrderStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	if err := c.DB.Delete(&models.OrderStatusDict{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order status deleted successfully"})
}

// parseDictInput parses and validates the shared dictionary payload.
// ok is false when the response has already been written.
func parseDictInput(ctx *fiber.Ctx, input *dictInput) (bool, error) {
	if err := ctx.BodyParser(input); err != nil {
		return false, ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return false, ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return true, nil
}
