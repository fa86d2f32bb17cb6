package scrapeworker

import (
	"context"
	"time"

	"isveren-scraper/config"
	"isveren-scraper/lib/scraper"
	baseworker "isveren-scraper/lib/utils/base-worker"
	"isveren-scraper/lib/utils/helpers"
)

const firstRunDelay = 10 * time.Second

// StartWorker периодический сбор CV по расписанию из конфигурации
func StartWorker(ctx context.Context) {
	worker := baseworker.NewInstance("CvScrapeJob",
		firstRunDelay,
		time.Duration(config.Conf.Worker.RunIntervalMin)*time.Minute)
	go worker.Run(ctx, func(ctx context.Context) {
		if helpers.IsContextDone(ctx) {
			return
		}
		_, err := scraper.Instance.Run(ctx)
		if err != nil {
			worker.GetLogger().WithError(err).Error("сбор CV завершился с ошибкой")
		}
	})
}
