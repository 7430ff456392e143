// Package memorydriver реализует storage.Store в памяти процесса.
// Используется в тестах и при запуске без MONGO_URL.
package memorydriver

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"oakwoods-backend/storage"
)

// Store хранилище документов в памяти
type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection
	counter     uint64
}

// New создает пустое хранилище
func New() *Store {
	return &Store{collections: make(map[string]*collection)}
}

// Collection возвращает коллекцию по имени, создавая ее при первом обращении
func (s *Store) Collection(name string) storage.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		col = &collection{store: s}
		s.collections[name] = col
	}
	return col
}

// nextID выдает идентификатор в формате, совместимом с hex ObjectID;
// счетчик общий для всех коллекций, поэтому инкремент атомарный
func (s *Store) nextID() string {
	return fmt.Sprintf("%024x", atomic.AddUint64(&s.counter, 1))
}

type collection struct {
	store *Store
	mu    sync.RWMutex
	docs  []storage.Document
}

// InsertOne сохраняет копию документа и возвращает присвоенный идентификатор
func (c *collection) InsertOne(ctx context.Context, doc storage.Document) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := doc.Clone()
	id := c.store.nextID()
	stored[storage.IDField] = id
	c.docs = append(c.docs, stored)
	return id, nil
}

// Find возвращает копии всех документов, удовлетворяющих фильтру
func (c *collection) Find(ctx context.Context, filter storage.Filter) ([]storage.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]storage.Document, 0)
	for _, doc := range c.docs {
		if matches(doc, filter) {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

// FindOne возвращает первый документ, удовлетворяющий фильтру
func (c *collection) FindOne(ctx context.Context, filter storage.Filter) (storage.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if matches(doc, filter) {
			return doc.Clone(), nil
		}
	}
	return nil, storage.ErrNotFound
}

// FindByID возвращает документ по идентификатору
func (c *collection) FindByID(ctx context.Context, id string) (storage.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if doc.ID() == id {
			return doc.Clone(), nil
		}
	}
	return nil, storage.ErrNotFound
}

// UpdateByID накладывает set поверх существующего документа
func (c *collection) UpdateByID(ctx context.Context, id string, set storage.Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if doc.ID() == id {
			for k, v := range set.Clone() {
				doc[k] = v
			}
			return nil
		}
	}
	return storage.ErrNotFound
}

// DeleteByID удаляет документ по идентификатору
func (c *collection) DeleteByID(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		if doc.ID() == id {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// matches проверяет документ на соответствие фильтру
func matches(doc storage.Document, filter storage.Filter) bool {
	for k, want := range filter.Equals {
		if !equalValues(doc[k], want) {
			return false
		}
	}
	if filter.TimeField != "" && (!filter.From.IsZero() || !filter.To.IsZero()) {
		at := storage.Time(doc[filter.TimeField])
		if at.IsZero() {
			return false
		}
		if !filter.From.IsZero() && at.Before(filter.From) {
			return false
		}
		if !filter.To.IsZero() && at.After(filter.To) {
			return false
		}
	}
	return true
}

// equalValues сравнивает значения с учетом того, что числа
// после JSON-декодирования приходят как float64
func equalValues(got, want interface{}) bool {
	if got == nil || want == nil {
		return got == want
	}
	switch want.(type) {
	case int, int32, int64, float32, float64:
		return storage.Float64(got) == storage.Float64(want)
	default:
		return got == want
	}
}
