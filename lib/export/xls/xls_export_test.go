package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	isverenapimodels "isveren-scraper/models/api/isveren"
)

func TestExportCvList(t *testing.T) {
	t.Run(`лист с заголовком и данными`, func(t *testing.T) {
		list := []isverenapimodels.FlatRecord{
			{ID: 3, Title: "Proqramçı", City: "Bakı", Experience: "Dev at Acme (2020 - Present)"},
		}
		buf, err := impl{}.ExportCvList(list)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		rows, err := f.GetRows("CVs")
		require.Nil(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, isverenapimodels.FlatHeaders, rows[0][:len(isverenapimodels.FlatHeaders)])
		require.Equal(t, "3", rows[1][0])
		require.Equal(t, "Proqramçı", rows[1][1])
		require.Equal(t, "Bakı", rows[1][9])
	})

	t.Run(`пустой список не ломает выгрузку`, func(t *testing.T) {
		buf, err := impl{}.ExportCvList(nil)
		require.Nil(t, err)
		require.NotZero(t, buf.Len())
	})
}
