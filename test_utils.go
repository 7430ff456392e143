package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"oakwoods-backend/controllers"
	"oakwoods-backend/routes"
	"oakwoods-backend/services"
	"oakwoods-backend/storage/memorydriver"
	"oakwoods-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// setupTestApp собирает приложение поверх хранилища в памяти
func setupTestApp() (*fiber.App, *memorydriver.Store) {
	store := memorydriver.New()

	app := fiber.New()

	recorder := services.NewOrderRecorder(store, nil)
	generator := services.NewReportGenerator(store)

	authController := controllers.NewAuthController(store)
	inventoryController := controllers.NewInventoryController(store)
	orderController := controllers.NewOrderController(store, recorder)
	laborController := controllers.NewLaborController(store)
	expenseController := controllers.NewExpenseController(store)
	reportController := controllers.NewReportController(generator)
	dashboardController := controllers.NewDashboardController(store, nil)

	// Настраиваем маршруты; щедрый лимит, чтобы тесты не упирались в 429
	routes.SetupAuthRoutes(app, authController, utils.RateLimit("1000-M"))
	routes.SetupInventoryRoutes(app, inventoryController)
	routes.SetupOrderRoutes(app, orderController)
	routes.SetupLaborRoutes(app, laborController)
	routes.SetupExpenseRoutes(app, expenseController)
	routes.SetupReportRoutes(app, reportController)
	routes.SetupDashboardRoutes(app, dashboardController)

	return app, store
}

// generateTestJWT создает валидный токен для тестовых запросов
func generateTestJWT() string {
	token, _ := utils.GenerateJWT("000000000000000000000001", "tester@oakwoods.test")
	return token
}

// doJSON выполняет JSON-запрос к тестовому приложению
func doJSON(app *fiber.App, method, path string, body interface{}, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewBuffer(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return app.Test(req, -1)
}

// decodeMap декодирует тело ответа в map
func decodeMap(resp *http.Response) map[string]interface{} {
	var out map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&out)
	return out
}

// decodeList декодирует тело ответа в список map
func decodeList(resp *http.Response) []map[string]interface{} {
	var out []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&out)
	return out
}
