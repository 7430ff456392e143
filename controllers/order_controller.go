package controllers

import (
	"oakwoods-backend/models"
	"oakwoods-backend/services"
	"oakwoods-backend/storage"

	"github.com/gofiber/fiber/v2"
)

// OrderController контроллер заказов (продажи и закупки)
type OrderController struct {
	store    storage.Store
	recorder *services.OrderRecorder
}

// NewOrderController создает новый экземпляр OrderController
func NewOrderController(store storage.Store, recorder *services.OrderRecorder) *OrderController {
	return &OrderController{store: store, recorder: recorder}
}

// List возвращает все заказы
func (oc *OrderController) List(c *fiber.Ctx) error {
	docs, err := oc.store.Collection(models.OrdersCollection).Find(c.Context(), storage.Filter{})
	if err != nil {
		return err
	}

	orders := make([]storage.Document, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, doc.Public())
	}
	return c.JSON(orders)
}

// Create записывает заказ и корректирует остаток склада
func (oc *OrderController) Create(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	id, err := oc.recorder.Record(c.Context(), models.PickFields(raw, models.OrderFields))
	if err != nil {
		return err
	}
	return c.Status(201).JSON(fiber.Map{"id": id})
}
