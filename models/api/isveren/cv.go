package isverenapimodels

import (
	"encoding/json"
	"strconv"
)

// PageResponse ответ на запрос одной страницы списка CV
type PageResponse struct {
	Cv *CvPage `json:"cv"`
}

type CvPage struct {
	CurrentPage int         `json:"current_page"`
	LastPage    int         `json:"last_page"`
	Data        []RawRecord `json:"data"`
}

// GetLastPage номер последней страницы, если источник его не прислал, считаем что страница одна
func (p CvPage) GetLastPage() int {
	if p.LastPage < 1 {
		return 1
	}
	return p.LastPage
}

// RawRecord запись CV как её отдаёт источник, без каких-либо гарантий по составу и типам полей
type RawRecord map[string]interface{}

func (r RawRecord) GetString(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		// числовые поля (телефон, даты) иногда приходят числом
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}
	return ""
}

func (r RawRecord) GetInt(key string) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		num, err := v.Int64()
		if err == nil {
			return int(num)
		}
	case string:
		num, err := strconv.Atoi(v)
		if err == nil {
			return num
		}
	}
	return 0
}

func (r RawRecord) GetMap(key string) RawRecord {
	if v, ok := r[key].(map[string]interface{}); ok {
		return RawRecord(v)
	}
	return RawRecord{}
}

// GetLocalized значение поля, которое может быть как строкой, так и объектом вида {"az": "..."}
func (r RawRecord) GetLocalized(key, locale string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case map[string]interface{}:
		if s, ok := v[locale].(string); ok {
			return s
		}
	}
	return ""
}

// GetJSONList поле со списком, закодированным строкой JSON.
// Пустое, отсутствующее или битое значение считаем пустым списком
func (r RawRecord) GetJSONList(key string) []interface{} {
	value, ok := r[key].(string)
	if !ok || value == "" || value == "[]" {
		return nil
	}
	var list []interface{}
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return nil
	}
	return list
}
