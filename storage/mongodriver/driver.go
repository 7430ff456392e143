// Package mongodriver реализует storage.Store поверх MongoDB.
package mongodriver

import (
	"context"
	"errors"

	"oakwoods-backend/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store хранилище документов поверх базы MongoDB
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open подключается к MongoDB и проверяет соединение
func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Close разрывает соединение с базой
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Collection возвращает коллекцию по имени
func (s *Store) Collection(name string) storage.Collection {
	return &collection{col: s.db.Collection(name)}
}

type collection struct {
	col *mongo.Collection
}

// InsertOne сохраняет документ и возвращает hex нового ObjectID
func (c *collection) InsertOne(ctx context.Context, doc storage.Document) (string, error) {
	payload := bson.M{}
	for k, v := range doc {
		payload[k] = v
	}
	res, err := c.col.InsertOne(ctx, payload)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// Find возвращает все документы, удовлетворяющие фильтру
func (c *collection) Find(ctx context.Context, filter storage.Filter) ([]storage.Document, error) {
	cursor, err := c.col.Find(ctx, buildQuery(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]storage.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, fromBSON(m))
	}
	return docs, nil
}

// FindOne возвращает первый документ, удовлетворяющий фильтру
func (c *collection) FindOne(ctx context.Context, filter storage.Filter) (storage.Document, error) {
	var m bson.M
	err := c.col.FindOne(ctx, buildQuery(filter)).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromBSON(m), nil
}

// FindByID возвращает документ по hex идентификатора;
// некорректный hex трактуется как отсутствие документа
func (c *collection) FindByID(ctx context.Context, id string) (storage.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, storage.ErrNotFound
	}
	var m bson.M
	err = c.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromBSON(m), nil
}

// UpdateByID частично обновляет документ через $set
func (c *collection) UpdateByID(ctx context.Context, id string, set storage.Document) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}
	payload := bson.M{}
	for k, v := range set {
		payload[k] = v
	}
	res, err := c.col.UpdateByID(ctx, oid, bson.M{"$set": payload})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteByID удаляет документ по идентификатору
func (c *collection) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storage.ErrNotFound
	}
	res, err := c.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// buildQuery переводит storage.Filter в запрос MongoDB
func buildQuery(filter storage.Filter) bson.M {
	query := bson.M{}
	for k, v := range filter.Equals {
		query[k] = v
	}
	if filter.TimeField != "" && (!filter.From.IsZero() || !filter.To.IsZero()) {
		window := bson.M{}
		if !filter.From.IsZero() {
			window["$gte"] = filter.From
		}
		if !filter.To.IsZero() {
			window["$lte"] = filter.To
		}
		query[filter.TimeField] = window
	}
	return query
}

// fromBSON приводит bson.M к storage.Document: ObjectID становится
// hex-строкой, даты приводятся к time.Time в UTC
func fromBSON(m bson.M) storage.Document {
	doc := make(storage.Document, len(m))
	for k, v := range m {
		doc[k] = fromBSONValue(v)
	}
	return doc
}

func fromBSONValue(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case bson.M:
		return fromBSON(t)
	case primitive.D:
		return fromBSON(t.Map())
	case primitive.A:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = fromBSONValue(item)
		}
		return out
	default:
		return v
	}
}
