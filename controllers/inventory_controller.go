package controllers

import (
	"errors"
	"time"

	"oakwoods-backend/models"
	"oakwoods-backend/storage"

	"github.com/gofiber/fiber/v2"
)

// InventoryController контроллер складских позиций
type InventoryController struct {
	store storage.Store
}

// NewInventoryController создает новый экземпляр InventoryController
func NewInventoryController(store storage.Store) *InventoryController {
	return &InventoryController{store: store}
}

// List возвращает все позиции склада
func (ic *InventoryController) List(c *fiber.Ctx) error {
	docs, err := ic.store.Collection(models.InventoryCollection).Find(c.Context(), storage.Filter{})
	if err != nil {
		return err
	}

	items := make([]storage.Document, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.Public())
	}
	return c.JSON(items)
}

// Create добавляет позицию склада
func (ic *InventoryController) Create(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	doc := models.PickFields(raw, models.InventoryFields)
	now := time.Now().UTC()
	doc["created_at"] = now
	doc["updated_at"] = now

	id, err := ic.store.Collection(models.InventoryCollection).InsertOne(c.Context(), doc)
	if err != nil {
		return err
	}
	return c.Status(201).JSON(fiber.Map{"id": id})
}

// Update частично обновляет позицию склада
func (ic *InventoryController) Update(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	set := models.PickFields(raw, models.InventoryFields)
	set["updated_at"] = time.Now().UTC()

	err := ic.store.Collection(models.InventoryCollection).UpdateByID(c.Context(), c.Params("id"), set)
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"msg": "Item not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Updated"})
}

// Delete удаляет позицию склада; исторические заказы сохраняют
// ссылку на удаленную позицию
func (ic *InventoryController) Delete(c *fiber.Ctx) error {
	err := ic.store.Collection(models.InventoryCollection).DeleteByID(c.Context(), c.Params("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"msg": "Item not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Deleted"})
}
