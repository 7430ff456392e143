package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"oakwoods-backend/models"
	"oakwoods-backend/storage"

	"github.com/xuri/excelize/v2"
)

// ErrNoData возвращается, когда под условия отчета не попал ни один документ
var ErrNoData = errors.New("no data found for the selected range")

// ErrBadDateRange возвращается, когда границы произвольного окна не разбираются
var ErrBadDateRange = errors.New("invalid startDate or endDate")

// Значения поля duration
const (
	DurationToday     = "today"
	DurationLastWeek  = "last_week"
	DurationLastMonth = "last_month"
	DurationCustom    = "custom"
)

// Категории отчетов
const (
	CategoryWorkers       = "Workers"
	CategoryPaint         = "Paint"
	CategoryHardwareTools = "Hardware/Tools"
)

// ExportRequest параметры выгрузки отчета
type ExportRequest struct {
	Category  string `json:"category"`
	Duration  string `json:"duration"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ReportGenerator строит табличные выгрузки xlsx по коллекциям
type ReportGenerator struct {
	store storage.Store
}

// NewReportGenerator создает новый ReportGenerator
func NewReportGenerator(store storage.Store) *ReportGenerator {
	return &ReportGenerator{store: store}
}

// Export выбирает документы категории за окно времени, проецирует их
// в плоскую таблицу и кодирует в xlsx. Весь набор материализуется в
// памяти, пагинации нет. Пустой результат — ErrNoData.
func (g *ReportGenerator) Export(ctx context.Context, req ExportRequest) (string, []byte, error) {
	from, to, err := reportWindow(req.Duration, req.StartDate, req.EndDate)
	if err != nil {
		return "", nil, err
	}

	filter := storage.Filter{TimeField: "created_at", From: from, To: to}
	collection := models.InventoryCollection

	switch req.Category {
	case CategoryWorkers:
		collection = models.LaborersCollection
	case CategoryPaint, CategoryHardwareTools:
		filter.Equals = map[string]interface{}{"category": req.Category}
	default:
		// Любая другая категория, включая "All" — весь склад
	}

	docs, err := g.store.Collection(collection).Find(ctx, filter)
	if err != nil {
		return "", nil, err
	}
	if len(docs) == 0 {
		return "", nil, ErrNoData
	}

	rows := make([]storage.Document, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, doc.Public())
	}

	data, err := encodeSheet(rows)
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("report_%s_%s.xlsx", req.Category, time.Now().UTC().Format("20060102"))
	return filename, data, nil
}

// reportWindow вычисляет включительное окно времени для отчета.
// Неизвестное значение duration означает отсутствие фильтра по времени.
func reportWindow(duration, startDate, endDate string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	switch duration {
	case DurationToday:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return midnight, now, nil
	case DurationLastWeek:
		return now.AddDate(0, 0, -7), now, nil
	case DurationLastMonth:
		return now.AddDate(0, 0, -30), now, nil
	case DurationCustom:
		// Без обеих границ окно не применяется; заданные, но
		// нечитаемые границы — ошибка запроса
		if startDate == "" || endDate == "" {
			return time.Time{}, time.Time{}, nil
		}
		from, errFrom := parseISODate(startDate)
		to, errTo := parseISODate(endDate)
		if errFrom != nil || errTo != nil {
			return time.Time{}, time.Time{}, ErrBadDateRange
		}
		return from, to, nil
	default:
		return time.Time{}, time.Time{}, nil
	}
}

// parseISODate принимает RFC3339 или дату без времени
func parseISODate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UTC(), nil
	}
	return time.Parse("2006-01-02", value)
}

// encodeSheet кодирует набор документов в однолистовую таблицу xlsx:
// заголовок — объединение полей всех документов, строка на документ
func encodeSheet(rows []storage.Document) ([]byte, error) {
	columns := sheetColumns(rows)

	file := excelize.NewFile()
	const sheet = "Report"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, column); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		for i, column := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, cellValue(row[column])); err != nil {
				return nil, err
			}
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// sheetColumns собирает объединение полей: "id" первым, остальные по алфавиту
func sheetColumns(rows []storage.Document) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		for field := range row {
			seen[field] = true
		}
	}

	columns := make([]string, 0, len(seen))
	for field := range seen {
		if field != "id" {
			columns = append(columns, field)
		}
	}
	sort.Strings(columns)

	if seen["id"] {
		columns = append([]string{"id"}, columns...)
	}
	return columns
}

// cellValue приводит значение поля к виду, пригодному для ячейки:
// вложенные структуры (история работника) уплощаются в JSON
func cellValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case map[string]interface{}, storage.Document, []interface{}:
		encoded, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(encoded)
	default:
		return v
	}
}
