package controllers

import (
	"encoding/json"
	"time"

	"oakwoods-backend/models"
	"oakwoods-backend/storage"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// dashboardCacheKey ключ кэша сводки в Redis
const dashboardCacheKey = "dashboard:summary"

// dashboardCacheTTL время жизни кэшированной сводки
const dashboardCacheTTL = 30 * time.Second

// DashboardController контроллер сводки по магазину
type DashboardController struct {
	store storage.Store
	redis *redis.Client
}

// NewDashboardController создает новый экземпляр DashboardController;
// redis может быть nil, тогда сводка считается на каждый запрос
func NewDashboardController(store storage.Store, rdb *redis.Client) *DashboardController {
	return &DashboardController{store: store, redis: rdb}
}

// DashboardSummary сводные показатели за сегодня
type DashboardSummary struct {
	TotalStock     int                `json:"total_stock"`
	ItemsSoldToday int                `json:"items_sold_today"`
	TodaySales     float64            `json:"today_sales"`
	TodayExpenses  float64            `json:"today_expenses"`
	NetProfit      float64            `json:"net_profit"`
	LowStock       []storage.Document `json:"low_stock"`
}

// GetSummary возвращает сводку: остатки, продажи и расходы за сегодня,
// чистую прибыль и заканчивающиеся позиции
func (dc *DashboardController) GetSummary(c *fiber.Ctx) error {
	// Отдаем кэшированную сводку, если она еще свежая
	if dc.redis != nil {
		if cached, err := dc.redis.Get(c.Context(), dashboardCacheKey).Result(); err == nil {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString(cached)
		}
	}

	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	items, err := dc.store.Collection(models.InventoryCollection).Find(c.Context(), storage.Filter{})
	if err != nil {
		return err
	}

	summary := DashboardSummary{LowStock: make([]storage.Document, 0)}
	for _, item := range items {
		stock := storage.Int(item["stock"])
		summary.TotalStock += stock
		if stock < models.LowStockThreshold {
			summary.LowStock = append(summary.LowStock, item.Public())
		}
	}

	sales, err := dc.store.Collection(models.OrdersCollection).Find(c.Context(), storage.Filter{
		Equals:    map[string]interface{}{"type": models.OrderTypeSale},
		TimeField: "created_at",
		From:      midnight,
		To:        now,
	})
	if err != nil {
		return err
	}

	// Денежные суммы считаем на decimal, чтобы не копить ошибку float
	salesTotal := decimal.Zero
	for _, order := range sales {
		summary.ItemsSoldToday += storage.Int(order["quantity"])
		salesTotal = salesTotal.Add(decimal.NewFromFloat(storage.Float64(order["totalPrice"])))
	}

	expenses, err := dc.store.Collection(models.ExpensesCollection).Find(c.Context(), storage.Filter{
		TimeField: "created_at",
		From:      midnight,
		To:        now,
	})
	if err != nil {
		return err
	}

	expensesTotal := decimal.Zero
	for _, expense := range expenses {
		expensesTotal = expensesTotal.Add(decimal.NewFromFloat(storage.Float64(expense["amount"])))
	}

	summary.TodaySales = salesTotal.InexactFloat64()
	summary.TodayExpenses = expensesTotal.InexactFloat64()
	summary.NetProfit = salesTotal.Sub(expensesTotal).InexactFloat64()

	if dc.redis != nil {
		if encoded, err := json.Marshal(summary); err == nil {
			dc.redis.Set(c.Context(), dashboardCacheKey, encoded, dashboardCacheTTL)
		}
	}

	return c.JSON(summary)
}
