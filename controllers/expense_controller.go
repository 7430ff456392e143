package controllers

import (
	"time"

	"oakwoods-backend/models"
	"oakwoods-backend/storage"

	"github.com/gofiber/fiber/v2"
)

// ExpenseController контроллер расходов
type ExpenseController struct {
	store storage.Store
}

// NewExpenseController создает новый экземпляр ExpenseController
func NewExpenseController(store storage.Store) *ExpenseController {
	return &ExpenseController{store: store}
}

// List возвращает все расходы
func (ec *ExpenseController) List(c *fiber.Ctx) error {
	docs, err := ec.store.Collection(models.ExpensesCollection).Find(c.Context(), storage.Filter{})
	if err != nil {
		return err
	}

	expenses := make([]storage.Document, 0, len(docs))
	for _, doc := range docs {
		expenses = append(expenses, doc.Public())
	}
	return c.JSON(expenses)
}

// Create добавляет расход
func (ec *ExpenseController) Create(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(400).JSON(fiber.Map{"msg": "Invalid request body"})
	}

	doc := models.PickFields(raw, models.ExpenseFields)
	doc["created_at"] = time.Now().UTC()

	id, err := ec.store.Collection(models.ExpensesCollection).InsertOne(c.Context(), doc)
	if err != nil {
		return err
	}
	return c.Status(201).JSON(fiber.Map{"id": id})
}
