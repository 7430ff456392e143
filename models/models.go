package models

import "oakwoods-backend/storage"

// Имена коллекций документов
const (
	UsersCollection     = "users"
	InventoryCollection = "inventory"
	OrdersCollection    = "orders"
	LaborersCollection  = "laborers"
	ExpensesCollection  = "expenses"
)

// Типы заказов
const (
	OrderTypeSale    = "sale"
	OrderTypeRestock = "restock"
)

// Статусы работников
const (
	LaborStatusAvailable   = "Available"
	LaborStatusScheduled   = "Scheduled"
	LaborStatusUnavailable = "Unavailable"
)

// LowStockThreshold порог, ниже которого позиция считается заканчивающейся
const LowStockThreshold = 5

// Разрешенные поля запросов для каждой коллекции; неизвестные поля
// отбрасываются и в документы не попадают
var (
	InventoryFields = []string{"name", "category", "stock", "unitPrice"}
	OrderFields     = []string{"type", "itemId", "itemName", "quantity", "totalPrice", "date"}
	LaborerFields   = []string{"name", "skill", "status", "assignedLocation", "scheduleStart", "scheduleEnd", "history"}
	ExpenseFields   = []string{"description", "amount", "date"}
)

// PickFields собирает документ из известных полей тела запроса
func PickFields(raw map[string]interface{}, allowed []string) storage.Document {
	doc := storage.Document{}
	for _, field := range allowed {
		if value, ok := raw[field]; ok {
			doc[field] = value
		}
	}
	return doc
}
