package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"oakwoods-backend/models"
	"oakwoods-backend/storage"
	"oakwoods-backend/storage/mongodriver"
)

func main() {
	// Получаем строку подключения к БД из переменной окружения
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		log.Fatal("MONGO_URL не задан")
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "oak_woods_db"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Подключаемся к БД
	store, err := mongodriver.Open(ctx, mongoURL, dbName)
	if err != nil {
		log.Fatal("Ошибка подключения к БД:", err)
	}
	defer store.Close(ctx)

	now := time.Now().UTC()

	// 1. Склад
	inventoryItems := []storage.Document{
		{"name": "White Gloss Paint", "category": "Paint", "stock": 25, "unitPrice": 4500},
		{"name": "Sanding Machine", "category": "Tools", "stock": 3, "unitPrice": 12000},
		{"name": "Wood Varnish", "category": "Paint", "stock": 15, "unitPrice": 3200},
		{"name": "Drawer Handles", "category": "Hardware", "stock": 150, "unitPrice": 450},
		{"name": "Precision Level", "category": "Tools", "stock": 8, "unitPrice": 2500},
		{"name": "Paint Brush Set", "category": "Paint Tools", "stock": 20, "unitPrice": 1200},
	}

	inventory := store.Collection(models.InventoryCollection)
	itemIDs := make(map[string]string, len(inventoryItems))
	for _, item := range inventoryItems {
		item["created_at"] = now
		item["updated_at"] = now
		id, err := inventory.InsertOne(ctx, item)
		if err != nil {
			log.Fatal("Ошибка при создании позиции склада:", err)
		}
		itemIDs[storage.String(item["name"])] = id
	}

	// 2. Работники
	laborers := []storage.Document{
		{
			"name":             "Ibrahim Musa",
			"skill":            "Master Carpenter",
			"status":           models.LaborStatusAvailable,
			"assignedLocation": "Island Workshop",
			"scheduleStart":    "2026-02-01",
			"scheduleEnd":      "2026-02-28",
			"history":          []interface{}{},
		},
		{
			"name":             "Sarah Odoh",
			"skill":            "Expert Painter",
			"status":           models.LaborStatusScheduled,
			"assignedLocation": "Lekki Site A",
			"scheduleStart":    "2026-02-15",
			"scheduleEnd":      "2026-02-22",
			"history": []interface{}{
				storage.Document{
					"id":        "h1",
					"location":  "Mainland Hub",
					"startDate": "2026-01-05",
					"endDate":   "2026-01-20",
					"notes":     "Completed living room set finishes.",
				},
			},
		},
	}

	laborersCol := store.Collection(models.LaborersCollection)
	for _, laborer := range laborers {
		laborer["created_at"] = now
		laborer["updated_at"] = now
		if _, err := laborersCol.InsertOne(ctx, laborer); err != nil {
			log.Fatal("Ошибка при создании работника:", err)
		}
	}

	// 3. Расходы
	expenses := []storage.Document{
		{"description": "Generator Fuel", "amount": 15000, "date": "2026-02-18"},
		{"description": "Transport for Ibrahim", "amount": 3500, "date": "2026-02-17"},
		{"description": "Shop Rent - Feb", "amount": 200000, "date": "2026-02-01"},
	}

	expensesCol := store.Collection(models.ExpensesCollection)
	for _, expense := range expenses {
		expense["created_at"] = now
		if _, err := expensesCol.InsertOne(ctx, expense); err != nil {
			log.Fatal("Ошибка при создании расхода:", err)
		}
	}

	// 4. Заказы (продажи и закупки)
	orders := []storage.Document{
		{
			"type":       models.OrderTypeSale,
			"itemId":     itemIDs["White Gloss Paint"],
			"itemName":   "White Gloss Paint",
			"quantity":   5,
			"totalPrice": 22500,
			"date":       "2026-02-19",
		},
		{
			"type":       models.OrderTypeRestock,
			"itemId":     itemIDs["Wood Varnish"],
			"itemName":   "Wood Varnish",
			"quantity":   10,
			"totalPrice": 32000,
			"date":       "2026-02-15",
		},
	}

	ordersCol := store.Collection(models.OrdersCollection)
	for _, order := range orders {
		order["created_at"] = now
		if _, err := ordersCol.InsertOne(ctx, order); err != nil {
			log.Fatal("Ошибка при создании заказа:", err)
		}
	}

	fmt.Println("База данных заполнена тестовыми данными!")
}
