package normalizer

import (
	"testing"

	"github.com/stretchr/testify/require"
	isverenapimodels "isveren-scraper/models/api/isveren"
)

func getInstance() impl {
	return impl{locale: "az"}
}

func TestNormalize(t *testing.T) {
	i := getInstance()

	t.Run(`декодирование справочных полей`, func(t *testing.T) {
		rec := isverenapimodels.RawRecord{
			"id":             float64(7),
			"gender_status":  float64(2),
			"married_status": float64(3),
			"is_child":       float64(1),
		}
		list := i.Normalize([]isverenapimodels.RawRecord{rec})
		require.Len(t, list, 1)
		require.Equal(t, "Female", list[0].Gender)
		require.Equal(t, "Married - Has children", list[0].MaritalStatus)
		require.Equal(t, "Yes", list[0].HasChildren)

		rec["gender_status"] = float64(1)
		rec["married_status"] = float64(9)
		rec["is_child"] = nil
		list = i.Normalize([]isverenapimodels.RawRecord{rec})
		require.Equal(t, "Male", list[0].Gender)
		require.Equal(t, "Unknown", list[0].MaritalStatus)
		require.Equal(t, "Unknown", list[0].HasChildren)
	})

	t.Run(`локализованные и вложенные поля`, func(t *testing.T) {
		rec := isverenapimodels.RawRecord{
			"id": float64(1),
			"user": map[string]interface{}{
				"name":     "Anar",
				"surname":  "Mammadov",
				"position": "Engineer",
				"email":    "anar@example.com",
			},
			"city": map[string]interface{}{
				"name": map[string]interface{}{"az": "Bakı", "en": "Baku"},
			},
			"working_hour": map[string]interface{}{
				"name": "Full time",
			},
		}
		list := i.Normalize([]isverenapimodels.RawRecord{rec})
		require.Len(t, list, 1)
		require.Equal(t, "Anar", list[0].Name)
		require.Equal(t, "Mammadov", list[0].Surname)
		require.Equal(t, "Engineer", list[0].UserPosition)
		require.Equal(t, "Bakı", list[0].City)
		require.Equal(t, "Full time", list[0].WorkingHour)
	})

	t.Run(`битые json подполя дают пустые строки`, func(t *testing.T) {
		rec := isverenapimodels.RawRecord{
			"id":         float64(2),
			"skills":     "{not a list",
			"language":   "null",
			"experience": "",
			"education":  "[]",
			"hobby":      float64(5),
		}
		list := i.Normalize([]isverenapimodels.RawRecord{rec})
		require.Len(t, list, 1)
		require.Equal(t, "", list[0].Skills)
		require.Equal(t, "", list[0].Languages)
		require.Equal(t, "", list[0].Experience)
		require.Equal(t, "", list[0].Education)
		require.Equal(t, "", list[0].Hobbies)
	})

	t.Run(`повторная обработка даёт тот же результат`, func(t *testing.T) {
		rec := isverenapimodels.RawRecord{
			"id":     float64(3),
			"title":  "Mühasib",
			"skills": `["1C", "Excel"]`,
			"user":   map[string]interface{}{"name": "Leyla"},
			"reads":  float64(42),
		}
		first := i.Normalize([]isverenapimodels.RawRecord{rec})
		second := i.Normalize([]isverenapimodels.RawRecord{rec})
		require.Equal(t, first, second)
		require.Equal(t, "1C, Excel", first[0].Skills)
		require.Equal(t, 42, first[0].Views)
	})

	t.Run(`порядок записей сохраняется`, func(t *testing.T) {
		records := []isverenapimodels.RawRecord{
			{"id": float64(5)},
			{"id": float64(1)},
			{"id": float64(9)},
		}
		list := i.Normalize(records)
		require.Len(t, list, 3)
		require.Equal(t, 5, list[0].ID)
		require.Equal(t, 1, list[1].ID)
		require.Equal(t, 9, list[2].ID)
	})

	t.Run(`число колонок совпадает с заголовком`, func(t *testing.T) {
		list := i.Normalize([]isverenapimodels.RawRecord{{"id": float64(1)}})
		require.Len(t, list[0].Row(), len(isverenapimodels.FlatHeaders))
	})
}

func TestFormatLanguages(t *testing.T) {
	t.Run(`уровень в скобках, записи без названия отбрасываются`, func(t *testing.T) {
		languages := []interface{}{
			map[string]interface{}{"name": "Azərbaycan", "currentlyWorked": "Native"},
			map[string]interface{}{"name": "English"},
			map[string]interface{}{"currentlyWorked": "B2"},
			"просто строка",
		}
		require.Equal(t, "Azərbaycan (Native), English", formatLanguages(languages))
	})

	t.Run(`пустой список`, func(t *testing.T) {
		require.Equal(t, "", formatLanguages(nil))
	})
}

func TestFormatExperience(t *testing.T) {
	t.Run(`текущее место работы`, func(t *testing.T) {
		experience := []interface{}{
			map[string]interface{}{
				"company":          "Acme",
				"position":         "Dev",
				"skill_start_date": "2020",
				"currentlyWorked":  "1",
			},
		}
		require.Equal(t, "Dev at Acme (2020 - Present)", formatExperience(experience))
	})

	t.Run(`завершённый период и объединение через разделитель`, func(t *testing.T) {
		experience := []interface{}{
			map[string]interface{}{
				"company":          "Acme",
				"position":         "Dev",
				"skill_start_date": "2018",
				"skill_end_date":   "2020",
				"currentlyWorked":  "0",
			},
			map[string]interface{}{
				"position": "QA",
			},
		}
		require.Equal(t, "Dev at Acme (2018 - 2020) | QA", formatExperience(experience))
	})

	t.Run(`нет даты окончания - считается текущим`, func(t *testing.T) {
		experience := []interface{}{
			map[string]interface{}{
				"company":          "Acme",
				"skill_start_date": "2021",
			},
		}
		require.Equal(t, "Acme (2021 - Present)", formatExperience(experience))
	})

	t.Run(`без даты начала суффикса нет`, func(t *testing.T) {
		experience := []interface{}{
			map[string]interface{}{
				"company":        "Acme",
				"skill_end_date": "2020",
			},
		}
		require.Equal(t, "Acme", formatExperience(experience))
	})
}

func TestFormatEducation(t *testing.T) {
	t.Run(`название со специализацией и периодом`, func(t *testing.T) {
		education := []interface{}{
			map[string]interface{}{
				"name":                 "BDU",
				"specialization":       "İqtisadiyyat",
				"education_start_date": "2015",
				"education_end_date":   "2019",
				"currentlyStudying":    "0",
			},
			map[string]interface{}{
				"name":                 "ADA",
				"education_start_date": "2023",
				"currentlyStudying":    "1",
			},
		}
		require.Equal(t, "BDU - İqtisadiyyat (2015 - 2019) | ADA (2023 - Present)", formatEducation(education))
	})

	t.Run(`пустые элементы отбрасываются`, func(t *testing.T) {
		education := []interface{}{
			map[string]interface{}{},
			"not a map",
		}
		require.Equal(t, "", formatEducation(education))
	})
}
