package storage

import (
	"fmt"
	"time"
)

// IDField имя внутреннего поля идентификатора в документах
const IDField = "_id"

// Document представляет полуструктурированную запись коллекции:
// известные поля плюс произвольные расширения
type Document map[string]interface{}

// ID возвращает внутренний идентификатор документа
func (d Document) ID() string {
	return String(d[IDField])
}

// Public возвращает копию документа с идентификатором,
// переименованным из внутреннего "_id" в публичное "id"
func (d Document) Public() Document {
	out := make(Document, len(d))
	for k, v := range d {
		if k == IDField {
			out["id"] = v
			continue
		}
		out[k] = v
	}
	return out
}

// Clone возвращает глубокую копию документа, чтобы вызывающий
// не мог изменить внутреннее состояние хранилища
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case Document:
		return t.Clone()
	case map[string]interface{}:
		return Document(t).Clone()
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// String приводит значение документа к строке
func String(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Int приводит числовое значение документа к int;
// после JSON-декодирования числа приходят как float64
func Int(v interface{}) int {
	switch t := v.(type) {
	case int:
		return t
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float64:
		return int(t)
	case float32:
		return int(t)
	default:
		return 0
	}
}

// Float64 приводит числовое значение документа к float64
func Float64(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return 0
	}
}

// Time приводит значение документа к time.Time
func Time(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
		return time.Time{}
	default:
		return time.Time{}
	}
}
