package scraper

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"isveren-scraper/config"
	"isveren-scraper/db"
	cvstore "isveren-scraper/lib/cv-store"
	csvexport "isveren-scraper/lib/export/csv"
	xlsexport "isveren-scraper/lib/export/xls"
	filestorage "isveren-scraper/lib/file-storage"
	isverenclient "isveren-scraper/lib/isveren/client"
	"isveren-scraper/lib/normalizer"
	"isveren-scraper/lib/utils/helpers"
	isverenapimodels "isveren-scraper/models/api/isveren"
	scrapeapimodels "isveren-scraper/models/api/scrape"
)

type Provider interface {
	Run(ctx context.Context) (scrapeapimodels.Report, error)
	// ExportStoredXlsx выгрузка сохранённых в БД CV, runID пустой - все записи
	ExportStoredXlsx(runID string) (*bytes.Buffer, error)
}

// Sink табличная выгрузка плоских записей, формат определяет реализация
type Sink interface {
	ExportCvList(list []isverenapimodels.FlatRecord) (*bytes.Buffer, error)
}

var Instance Provider

type impl struct {
	client    isverenclient.Provider
	collector Collector
	csvSink   Sink
	xlsSink   Sink
	cvStore   cvstore.Provider //nil, если БД выключена
}

func NewHandler() {
	var store cvstore.Provider
	if *config.Conf.Database.Enabled {
		store = cvstore.NewInstance(db.DB)
	}
	Instance = &impl{
		client:    isverenclient.Instance,
		collector: NewCollector(time.Duration(config.Conf.Isveren.PageDelayMs) * time.Millisecond),
		csvSink:   csvexport.Instance,
		xlsSink:   xlsexport.Instance,
		cvStore:   store,
	}
}

func (i impl) Run(ctx context.Context) (scrapeapimodels.Report, error) {
	runID := uuid.NewString()
	logger := log.WithField("run_id", runID)
	logger.Info("Запуск сбора CV")

	records := i.collector.Collect(ctx, i.client.GetPage)
	report := scrapeapimodels.Report{
		RunID:     runID,
		Collected: len(records),
	}
	if len(records) == 0 {
		return report, errors.New("не удалось собрать ни одного CV")
	}
	logger.Infof("Сбор завершён, собрано %v CV", len(records))

	list := normalizer.Instance.Normalize(records)
	report.Processed = len(list)
	report.Skipped = len(records) - len(list)
	if len(list) == 0 {
		return report, errors.New("ни одна запись не прошла обработку")
	}

	now := time.Now()
	if *config.Conf.Export.Csv {
		data, err := i.csvSink.ExportCvList(list)
		if err != nil {
			return report, errors.Wrap(err, "ошибка выгрузки в csv")
		}
		fileName := helpers.ExportFileName("isveren_cvs", "csv", now)
		if err = i.saveExport(ctx, logger, fileName, "text/csv", data); err != nil {
			return report, err
		}
		report.Files = append(report.Files, fileName)
	}
	if *config.Conf.Export.Xlsx {
		data, err := i.xlsSink.ExportCvList(list)
		if err != nil {
			return report, errors.Wrap(err, "ошибка выгрузки в xlsx")
		}
		fileName := helpers.ExportFileName("isveren_cvs", "xlsx", now)
		if err = i.saveExport(ctx, logger, fileName, "application/vnd.ms-excel", data); err != nil {
			return report, err
		}
		report.Files = append(report.Files, fileName)
	}

	if i.cvStore != nil {
		if err := i.cvStore.SaveList(runID, list); err != nil {
			// файлы уже записаны, ошибка БД запуск не заваливает
			logger.WithError(err).Error("ошибка сохранения CV в БД")
		} else {
			logger.Infof("В БД сохранено %v CV", len(list))
		}
	}

	logger.
		WithField("collected", report.Collected).
		WithField("processed", report.Processed).
		Info("Сбор CV завершён")
	return report, nil
}

func (i impl) ExportStoredXlsx(runID string) (*bytes.Buffer, error) {
	if i.cvStore == nil {
		return nil, errors.New("хранение CV в БД выключено")
	}
	recs, err := i.cvStore.List(runID)
	if err != nil {
		return nil, err
	}
	list := make([]isverenapimodels.FlatRecord, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToFlatRecord())
	}
	return i.xlsSink.ExportCvList(list)
}

func (i impl) saveExport(ctx context.Context, logger *log.Entry, fileName, contentType string, data *bytes.Buffer) error {
	if err := os.MkdirAll(config.Conf.Export.Dir, 0o755); err != nil {
		return errors.Wrap(err, "ошибка создания каталога выгрузки")
	}
	path := filepath.Join(config.Conf.Export.Dir, fileName)
	if err := os.WriteFile(path, data.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "ошибка записи файла выгрузки")
	}
	logger.WithField("file", path).Info("Файл выгрузки сохранён")

	if *config.Conf.S3.Enabled && filestorage.Instance != nil {
		if err := filestorage.Instance.UploadExport(ctx, fileName, contentType, data); err != nil {
			// загрузка в S3 вспомогательная, файл уже лежит на диске
			logger.WithError(err).WithField("file", fileName).Error("ошибка загрузки выгрузки в S3")
		}
	}
	return nil
}
