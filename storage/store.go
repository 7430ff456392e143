package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound возвращается, когда документ с указанным идентификатором не существует
var ErrNotFound = errors.New("document not found")

// Filter описывает условие выборки документов: равенство полей и
// необязательный включительный диапазон по временному полю
type Filter struct {
	Equals    map[string]interface{}
	TimeField string
	From      time.Time
	To        time.Time
}

// Collection предоставляет операции над одной коллекцией документов
type Collection interface {
	// InsertOne сохраняет документ и возвращает присвоенный идентификатор
	InsertOne(ctx context.Context, doc Document) (string, error)

	// Find возвращает все документы, удовлетворяющие фильтру
	Find(ctx context.Context, filter Filter) ([]Document, error)

	// FindOne возвращает первый документ, удовлетворяющий фильтру
	FindOne(ctx context.Context, filter Filter) (Document, error)

	// FindByID возвращает документ по идентификатору
	FindByID(ctx context.Context, id string) (Document, error)

	// UpdateByID частично обновляет документ (аналог $set)
	UpdateByID(ctx context.Context, id string, set Document) error

	// DeleteByID удаляет документ по идентификатору
	DeleteByID(ctx context.Context, id string) error
}

// Store предоставляет доступ к именованным коллекциям документов
type Store interface {
	Collection(name string) Collection
}
