package main

import (
	"context"
	"log"
	"time"

	"oakwoods-backend/config"
	"oakwoods-backend/controllers"
	"oakwoods-backend/routes"
	"oakwoods-backend/services"
	"oakwoods-backend/storage"
	"oakwoods-backend/storage/memorydriver"
	"oakwoods-backend/storage/mongodriver"
	"oakwoods-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
)

func main() {
	cfg := config.LoadConfig()

	// Инициализация хранилища документов
	store := openStore(cfg)

	// Redis опционален и используется только для кэша сводки
	rdb := config.NewRedisClient(cfg.Redis)

	// Создание Fiber приложения
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
				"code":    code,
			})
		},
	})

	// Middleware
	app.Use(logger.New())

	// CORS настройки
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Инициализация хаба событий склада
	feed := services.NewStockFeed()
	go feed.Run()

	// Инициализация сервисов
	recorder := services.NewOrderRecorder(store, feed)
	generator := services.NewReportGenerator(store)

	// Инициализация контроллеров
	authController := controllers.NewAuthController(store)
	inventoryController := controllers.NewInventoryController(store)
	orderController := controllers.NewOrderController(store, recorder)
	laborController := controllers.NewLaborController(store)
	expenseController := controllers.NewExpenseController(store)
	reportController := controllers.NewReportController(generator)
	dashboardController := controllers.NewDashboardController(store, rdb)

	// Настройка маршрутов
	routes.SetupAuthRoutes(app, authController, utils.RateLimit(cfg.AuthRateLimit))
	routes.SetupInventoryRoutes(app, inventoryController)
	routes.SetupOrderRoutes(app, orderController)
	routes.SetupLaborRoutes(app, laborController)
	routes.SetupExpenseRoutes(app, expenseController)
	routes.SetupReportRoutes(app, reportController)
	routes.SetupDashboardRoutes(app, dashboardController)

	// WebSocket маршрут событий склада
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		feed.HandleWebSocket(c)
	}))

	// Liveness probe
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Oak Woods API is running",
		})
	})

	// Запуск сервера
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// openStore подключается к MongoDB, а без MONGO_URL поднимает
// хранилище в памяти для локальной разработки
func openStore(cfg config.Config) storage.Store {
	if cfg.MongoURL == "" {
		log.Println("MONGO_URL не задан, используется хранилище в памяти")
		return memorydriver.New()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := mongodriver.Open(ctx, cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	return store
}
