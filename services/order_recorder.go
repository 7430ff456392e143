package services

import (
	"context"
	"errors"
	"time"

	"oakwoods-backend/models"
	"oakwoods-backend/storage"
)

// OrderRecorder записывает продажи и закупки и согласует с ними
// остатки склада
type OrderRecorder struct {
	store storage.Store
	feed  *StockFeed
}

// NewOrderRecorder создает новый OrderRecorder; feed может быть nil
func NewOrderRecorder(store storage.Store, feed *StockFeed) *OrderRecorder {
	return &OrderRecorder{store: store, feed: feed}
}

// Record корректирует остаток позиции и сохраняет заказ.
// Если позиция по itemId не найдена, корректировка молча пропускается,
// а заказ все равно записывается. Продажа уменьшает остаток, любой
// другой тип заказа увеличивает его; остаток не опускается ниже нуля.
// Чтение и запись остатка не изолированы: два одновременных заказа по
// одной позиции могут потерять одну из корректировок.
func (r *OrderRecorder) Record(ctx context.Context, order storage.Document) (string, error) {
	itemID := storage.String(order["itemId"])
	quantity := storage.Int(order["quantity"])
	orderType := storage.String(order["type"])

	inventory := r.store.Collection(models.InventoryCollection)
	item, err := inventory.FindByID(ctx, itemID)
	switch {
	case err == nil:
		newStock := storage.Int(item["stock"])
		if orderType == models.OrderTypeSale {
			newStock -= quantity
		} else {
			newStock += quantity
		}
		if newStock < 0 {
			newStock = 0
		}

		set := storage.Document{
			"stock":      newStock,
			"updated_at": time.Now().UTC(),
		}
		if err := inventory.UpdateByID(ctx, itemID, set); err != nil {
			return "", err
		}

		r.feed.Publish(StockUpdate{
			ItemID:    itemID,
			ItemName:  storage.String(item["name"]),
			Stock:     newStock,
			OrderType: orderType,
			Quantity:  quantity,
			At:        time.Now().UTC(),
		})
	case errors.Is(err, storage.ErrNotFound):
		// Позиция не найдена — заказ записывается без корректировки
	default:
		return "", err
	}

	order["created_at"] = time.Now().UTC()
	return r.store.Collection(models.OrdersCollection).InsertOne(ctx, order)
}
