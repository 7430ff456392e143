package controllers

import (
	"errors"
	"fmt"

	"oakwoods-backend/services"

	"github.com/gofiber/fiber/v2"
)

// XLSXContentType MIME-тип файлов xlsx
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportController контроллер выгрузки отчетов
type ReportController struct {
	generator *services.ReportGenerator
}

// NewReportController создает новый экземпляр ReportController
func NewReportController(generator *services.ReportGenerator) *ReportController {
	return &ReportController{generator: generator}
}

// Export строит xlsx-отчет по категории за окно времени и отдает его
// как вложение; пустой результат — 404
func (rc *ReportController) Export(c *fiber.Ctx) error {
	var req services.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	filename, data, err := rc.generator.Export(c.Context(), req)
	if errors.Is(err, services.ErrBadDateRange) {
		return c.Status(400).JSON(fiber.Map{"msg": "Invalid startDate or endDate"})
	}
	if errors.Is(err, services.ErrNoData) {
		return c.Status(404).JSON(fiber.Map{"msg": "No data found for the selected range"})
	}
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, XLSXContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
