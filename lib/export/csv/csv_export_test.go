package csvexport

import (
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"
	isverenapimodels "isveren-scraper/models/api/isveren"
)

func TestExportCvList(t *testing.T) {
	t.Run(`заголовок и строки данных`, func(t *testing.T) {
		list := []isverenapimodels.FlatRecord{
			{ID: 1, Title: "Mühasib", Gender: "Female", Skills: "1C, Excel"},
			{ID: 2, Title: "Satış, meneceri", Gender: "Male"},
		}
		buf, err := impl{}.ExportCvList(list)
		require.Nil(t, err)

		lines, err := csv.NewReader(buf).ReadAll()
		require.Nil(t, err)
		require.Len(t, lines, 3)
		require.Equal(t, isverenapimodels.FlatHeaders, lines[0])
		for _, line := range lines[1:] {
			require.Len(t, line, len(isverenapimodels.FlatHeaders))
		}
		require.Equal(t, "1", lines[1][0])
		require.Equal(t, "Mühasib", lines[1][1])
		require.Equal(t, "1C, Excel", lines[1][18])
		require.Equal(t, "Satış, meneceri", lines[2][1])
	})

	t.Run(`пустой список даёт только заголовок`, func(t *testing.T) {
		buf, err := impl{}.ExportCvList(nil)
		require.Nil(t, err)
		lines, err := csv.NewReader(buf).ReadAll()
		require.Nil(t, err)
		require.Len(t, lines, 1)
	})
}
