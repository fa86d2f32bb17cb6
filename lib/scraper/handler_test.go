package scraper

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"isveren-scraper/config"
	csvexport "isveren-scraper/lib/export/csv"
	xlsexport "isveren-scraper/lib/export/xls"
	"isveren-scraper/lib/normalizer"
	isverenapimodels "isveren-scraper/models/api/isveren"
)

type fakeClient struct {
	resp *isverenapimodels.PageResponse
	err  error
}

func (f fakeClient) GetPage(ctx context.Context, page int) (*isverenapimodels.PageResponse, error) {
	return f.resp, f.err
}

func setupConf(t *testing.T) {
	enabled := true
	disabled := false
	config.Conf = &config.Configuration{}
	config.Conf.Export.Dir = t.TempDir()
	config.Conf.Export.Csv = &enabled
	config.Conf.Export.Xlsx = &enabled
	config.Conf.S3.Enabled = &disabled
}

func getTestInstance(client fakeClient) impl {
	normalizer.NewHandler("az")
	csvexport.NewHandler()
	xlsexport.NewHandler()
	return impl{
		client:    client,
		collector: NewCollector(0),
		csvSink:   csvexport.Instance,
		xlsSink:   xlsexport.Instance,
	}
}

func TestRun(t *testing.T) {
	t.Run(`успешный запуск пишет csv и xlsx`, func(t *testing.T) {
		setupConf(t)
		client := fakeClient{
			resp: &isverenapimodels.PageResponse{
				Cv: &isverenapimodels.CvPage{
					CurrentPage: 1,
					LastPage:    1,
					Data: []isverenapimodels.RawRecord{
						{"id": float64(1), "title": "Mühasib"},
						{"id": float64(2), "title": "Proqramçı"},
					},
				},
			},
		}
		report, err := getTestInstance(client).Run(context.TODO())
		require.Nil(t, err)
		require.NotEmpty(t, report.RunID)
		require.Equal(t, 2, report.Collected)
		require.Equal(t, 2, report.Processed)
		require.Equal(t, 0, report.Skipped)
		require.Len(t, report.Files, 2)
		for _, fileName := range report.Files {
			info, err := os.Stat(filepath.Join(config.Conf.Export.Dir, fileName))
			require.Nil(t, err)
			require.NotZero(t, info.Size())
		}
	})

	t.Run(`ничего не собрано - отдельная ошибка`, func(t *testing.T) {
		setupConf(t)
		client := fakeClient{err: errors.New("connection refused")}
		report, err := getTestInstance(client).Run(context.TODO())
		require.NotNil(t, err)
		require.Equal(t, "не удалось собрать ни одного CV", err.Error())
		require.Equal(t, 0, report.Collected)
	})

	t.Run(`выгрузка из БД при выключенном хранении`, func(t *testing.T) {
		setupConf(t)
		_, err := getTestInstance(fakeClient{}).ExportStoredXlsx("")
		require.NotNil(t, err)
	})
}
