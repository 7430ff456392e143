package main

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// createItem добавляет позицию склада и возвращает ее идентификатор
func createItem(t *testing.T, app *fiber.App, token, name, category string, stock, unitPrice int) string {
	t.Helper()
	resp, err := doJSON(app, "POST", "/inventory", map[string]interface{}{
		"name":      name,
		"category":  category,
		"stock":     stock,
		"unitPrice": unitPrice,
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	id, _ := decodeMap(resp)["id"].(string)
	assert.NotEmpty(t, id)
	return id
}

// itemStock возвращает текущий остаток позиции по списку склада
func itemStock(t *testing.T, app *fiber.App, token, id string) int {
	t.Helper()
	resp, err := doJSON(app, "GET", "/inventory", nil, token)
	assert.NoError(t, err)
	for _, item := range decodeList(resp) {
		if item["id"] == id {
			return int(item["stock"].(float64))
		}
	}
	t.Fatalf("позиция %s не найдена", id)
	return 0
}

func TestOrderSaleDecrementsStock(t *testing.T) {
	app, _ := setupTestApp()
	token := generateTestJWT()

	itemID := createItem(t, app, token, "White Gloss Paint", "Paint", 25, 4500)

	resp, err := doJSON(app, "POST", "/orders", map[string]interface{}{
		"type":       "sale",
		"itemId":     itemID,
		"itemName":   "White Gloss Paint",
		"quantity":   5,
		"totalPrice": 22500,
		"date":       "2026-02-19",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	assert.NotEmpty(t, decodeMap(resp)["id"])

	assert.Equal(t, 20, itemStock(t, app, token, itemID))

	// Продажа больше остатка — остаток прижимается к нулю
	resp, err = doJSON(app, "POST", "/orders", map[string]interface{}{
		"type":       "sale",
		"itemId":     itemID,
		"itemName":   "White Gloss Paint",
		"quantity":   100,
		"totalPrice": 450000,
		"date":       "2026-02-19",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	assert.Equal(t, 0, itemStock(t, app, token, itemID))
}

func TestOrderRestockIncrementsStock(t *testing.T) {
	app, _ := setupTestApp()
	token := generateTestJWT()

	itemID := createItem(t, app, token, "Wood Varnish", "Paint", 15, 3200)

	resp, err := doJSON(app, "POST", "/orders", map[string]interface{}{
		"type":       "restock",
		"itemId":     itemID,
		"itemName":   "Wood Varnish",
		"quantity":   10,
		"totalPrice": 32000,
		"date":       "2026-02-15",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	assert.Equal(t, 25, itemStock(t, app, token, itemID))
}

func TestOrderUnknownTypeIncrementsStock(t *testing.T) {
	app, _ := setupTestApp()
	token := generateTestJWT()

	itemID := createItem(t, app, token, "Drawer Handles", "Hardware", 150, 450)

	// Любой тип, кроме sale, трактуется как пополнение
	resp, err := doJSON(app, "POST", "/orders", map[string]interface{}{
		"type":       "giveaway",
		"itemId":     itemID,
		"itemName":   "Drawer Handles",
		"quantity":   7,
		"totalPrice": 0,
		"date":       "2026-02-19",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	assert.Equal(t, 157, itemStock(t, app, token, itemID))
}

func TestOrderMissingItemStillRecorded(t *testing.T) {
	app, _ := setupTestApp()
	token := generateTestJWT()

	itemID := createItem(t, app, token, "Precision Level", "Tools", 8, 2500)

	resp, err := doJSON(app, "POST", "/orders", map[string]interface{}{
		"type":       "sale",
		"itemId":     "ffffffffffffffffffffffff",
		"itemName":   "Ghost Item",
		"quantity":   3,
		"totalPrice": 9000,
		"date":       "2026-02-19",
	}, token)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	// Заказ записан
	resp, err = doJSON(app, "GET", "/orders", nil, token)
	assert.NoError(t, err)
	orders := decodeList(resp)
	assert.Len(t, orders, 1)
	assert.Equal(t, "Ghost Item", orders[0]["itemName"])
	assert.NotEmpty(t, orders[0]["id"])
	assert.NotContains(t, orders[0], "_id")

	// Склад не изменился
	assert.Equal(t, 8, itemStock(t, app, token, itemID))
}

func TestOrderList(t *testing.T) {
	app, _ := setupTestApp()
	token := generateTestJWT()

	itemID := createItem(t, app, token, "Paint Brush Set", "Paint Tools", 20, 1200)

	for i := 0; i < 3; i++ {
		resp, err := doJSON(app, "POST", "/orders", map[string]interface{}{
			"type":       "sale",
			"itemId":     itemID,
			"itemName":   "Paint Brush Set",
			"quantity":   1,
			"totalPrice": 1200,
			"date":       "2026-02-19",
		}, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	}

	resp, err := doJSON(app, "GET", "/orders", nil, token)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	orders := decodeList(resp)
	assert.Len(t, orders, 3)
	for _, order := range orders {
		assert.Equal(t, "sale", order["type"])
		assert.NotEmpty(t, order["created_at"])
	}

	assert.Equal(t, 17, itemStock(t, app, token, itemID))
}
