package isverenapimodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawRecordGetters(t *testing.T) {
	t.Run(`GetString терпит отсутствие и чужой тип`, func(t *testing.T) {
		rec := RawRecord{
			"title": "Satış meneceri",
			"phone": float64(994501234567),
			"note":  nil,
			"bad":   []interface{}{"x"},
		}
		require.Equal(t, "Satış meneceri", rec.GetString("title"))
		require.Equal(t, "994501234567", rec.GetString("phone"))
		require.Equal(t, "", rec.GetString("note"))
		require.Equal(t, "", rec.GetString("bad"))
		require.Equal(t, "", rec.GetString("missing"))
	})

	t.Run(`GetInt принимает число и числовую строку`, func(t *testing.T) {
		rec := RawRecord{
			"id":     float64(105),
			"status": "2",
			"share":  json.Number("7"),
			"reads":  "не число",
		}
		require.Equal(t, 105, rec.GetInt("id"))
		require.Equal(t, 2, rec.GetInt("status"))
		require.Equal(t, 7, rec.GetInt("share"))
		require.Equal(t, 0, rec.GetInt("reads"))
		require.Equal(t, 0, rec.GetInt("missing"))
	})

	t.Run(`GetMap возвращает пустую запись вместо nil`, func(t *testing.T) {
		rec := RawRecord{
			"user": map[string]interface{}{"name": "Nigar"},
			"city": "строка вместо объекта",
		}
		require.Equal(t, "Nigar", rec.GetMap("user").GetString("name"))
		require.Equal(t, "", rec.GetMap("city").GetString("name"))
		require.Equal(t, "", rec.GetMap("missing").GetString("name"))
	})

	t.Run(`GetLocalized строка или объект с локалями`, func(t *testing.T) {
		rec := RawRecord{
			"plain":  "Bakı",
			"object": map[string]interface{}{"az": "Gəncə", "en": "Ganja"},
			"broken": map[string]interface{}{"az": float64(1)},
		}
		require.Equal(t, "Bakı", rec.GetLocalized("plain", "az"))
		require.Equal(t, "Gəncə", rec.GetLocalized("object", "az"))
		require.Equal(t, "Ganja", rec.GetLocalized("object", "en"))
		require.Equal(t, "", rec.GetLocalized("object", "ru"))
		require.Equal(t, "", rec.GetLocalized("broken", "az"))
		require.Equal(t, "", rec.GetLocalized("missing", "az"))
	})

	t.Run(`GetJSONList пустое, null и битое значение дают пустой список`, func(t *testing.T) {
		rec := RawRecord{
			"skills":   `["Go", "SQL"]`,
			"empty":    "",
			"brackets": "[]",
			"null":     "null",
			"broken":   "{oops",
			"typed":    float64(3),
		}
		require.Equal(t, []interface{}{"Go", "SQL"}, rec.GetJSONList("skills"))
		require.Empty(t, rec.GetJSONList("empty"))
		require.Empty(t, rec.GetJSONList("brackets"))
		require.Empty(t, rec.GetJSONList("null"))
		require.Empty(t, rec.GetJSONList("broken"))
		require.Empty(t, rec.GetJSONList("typed"))
		require.Empty(t, rec.GetJSONList("missing"))
	})
}

func TestCvPageGetLastPage(t *testing.T) {
	require.Equal(t, 1, CvPage{}.GetLastPage())
	require.Equal(t, 1, CvPage{LastPage: -2}.GetLastPage())
	require.Equal(t, 14, CvPage{LastPage: 14}.GetLastPage())
}
