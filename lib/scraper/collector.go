package scraper

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	isverenapimodels "isveren-scraper/models/api/isveren"
)

// PageFetcher запрос одной страницы списка CV
type PageFetcher func(ctx context.Context, page int) (*isverenapimodels.PageResponse, error)

type Collector struct {
	pageDelay time.Duration
}

func NewCollector(pageDelay time.Duration) Collector {
	return Collector{
		pageDelay: pageDelay,
	}
}

// Collect обходит страницы начиная с первой и накапливает записи.
// Ошибка запроса или неожиданная форма ответа не прерывает запуск,
// возвращается уже собранная часть
func (c Collector) Collect(ctx context.Context, fetch PageFetcher) []isverenapimodels.RawRecord {
	allCvs := make([]isverenapimodels.RawRecord, 0)
	page := 1
	for {
		logger := log.WithField("page", page)
		logger.Info("Запрос страницы")
		resp, err := fetch(ctx, page)
		if err != nil {
			logger.WithError(err).Error("ошибка получения страницы, сбор остановлен")
			return allCvs
		}
		if resp == nil || resp.Cv == nil {
			logger.Error("в ответе нет блока cv, сбор остановлен")
			return allCvs
		}
		cvPage := resp.Cv
		if len(cvPage.Data) == 0 {
			logger.Info("Страница без CV, сбор завершён")
			return allCvs
		}
		allCvs = append(allCvs, cvPage.Data...)
		logger.
			WithField("found", len(cvPage.Data)).
			WithField("total", len(allCvs)).
			Info("Страница обработана")

		if page >= cvPage.GetLastPage() {
			logger.Infof("Достигнута последняя страница (%v)", cvPage.GetLastPage())
			return allCvs
		}
		page++

		// пауза между страницами, чтобы не нагружать источник
		select {
		case <-ctx.Done():
			log.Info("Сбор прерван")
			return allCvs
		case <-time.After(c.pageDelay):
		}
	}
}
