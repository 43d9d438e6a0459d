package controllers

import (
	"fmt"
	"time"

	"ortho-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// ExportOrders writes the order register to an xlsx file. The same
// filters as the order list apply.
func (c *ReportController) ExportOrders(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.Order{}).Preload("PersonalCase").Order("created_at desc")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if workshop := ctx.Query("workshop"); workshop != "" {
		query = query.Where("workshop = ?", workshop)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Order Number", "Patient", "PIN", "Type", "Workshop", "Urgency", "Payment", "Amount", "Status", "Item", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, o := range orders {
		values := []interface{}{
			o.OrderNumber,
			o.PatientName(),
			o.PatientPin(),
			o.Type,
			o.Workshop,
			o.Urgency,
			o.PaymentType,
			o.Amount,
			o.Status,
			o.ItemName,
			o.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", "attachment; filename="+filename)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return nil
}

// ExportWarehouse writes the warehouse register to an xlsx file.
func (c *ReportController) ExportWarehouse(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.WarehouseEntry{}).
		Preload("Invoice").
		Preload("Order").
		Preload("Order.PersonalCase").
		Order("arrived_at desc")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var entries []models.WarehouseEntry
	if err := query.Find(&entries).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Warehouse"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Stock Label", "Product", "Serial Number", "Order Number", "Invoice Number", "Patient", "Status", "Arrived At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, e := range entries {
		patient := ""
		if e.Order != nil {
			patient = e.Order.PatientName()
		}
		values := []interface{}{
			e.StockLabel,
			e.ProductName,
			e.SerialNumber,
			e.OrderNumber(),
			e.InvoiceNumber(),
			patient,
			e.Status,
			e.ArrivedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("warehouse_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", "attachment; filename="+filename)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return nil
}
