package routes

import (
	"oakwoods-backend/controllers"
	"oakwoods-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupReportRoutes настраивает маршруты отчетов
func SetupReportRoutes(app *fiber.App, reportController *controllers.ReportController) {
	reports := app.Group("/reports", utils.AuthMiddleware)

	// POST /reports/export - выгрузка xlsx-отчета
	reports.Post("/export", reportController.Export)
}
