package controllers

import (
	"errors"
	"time"

	"oakwoods-backend/models"
	"oakwoods-backend/storage"

	"github.com/gofiber/fiber/v2"
)

// LaborController контроллер работников
type LaborController struct {
	store storage.Store
}

// NewLaborController создает новый экземпляр LaborController
func NewLaborController(store storage.Store) *LaborController {
	return &LaborController{store: store}
}

// List возвращает всех работников
func (lc *LaborController) List(c *fiber.Ctx) error {
	docs, err := lc.store.Collection(models.LaborersCollection).Find(c.Context(), storage.Filter{})
	if err != nil {
		return err
	}

	laborers := make([]storage.Document, 0, len(docs))
	for _, doc := range docs {
		laborers = append(laborers, doc.Public())
	}
	return c.JSON(laborers)
}

// Create добавляет работника; история по умолчанию пуста
func (lc *LaborController) Create(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	doc := models.PickFields(raw, models.LaborerFields)
	if _, ok := doc["history"]; !ok {
		doc["history"] = []interface{}{}
	}
	now := time.Now().UTC()
	doc["created_at"] = now
	doc["updated_at"] = now

	id, err := lc.store.Collection(models.LaborersCollection).InsertOne(c.Context(), doc)
	if err != nil {
		return err
	}
	return c.Status(201).JSON(fiber.Map{"id": id})
}

// Update частично обновляет данные работника
func (lc *LaborController) Update(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	set := models.PickFields(raw, models.LaborerFields)
	set["updated_at"] = time.Now().UTC()

	err := lc.store.Collection(models.LaborersCollection).UpdateByID(c.Context(), c.Params("id"), set)
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"msg": "Laborer not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Updated"})
}

// Delete удаляет работника
func (lc *LaborController) Delete(c *fiber.Ctx) error {
	err := lc.store.Collection(models.LaborersCollection).DeleteByID(c.Context(), c.Params("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"msg": "Laborer not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Deleted"})
}
