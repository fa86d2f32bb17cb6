package initializers

import (
	"context"

	"isveren-scraper/config"
	"isveren-scraper/fiberlog"
	csvexport "isveren-scraper/lib/export/csv"
	xlsexport "isveren-scraper/lib/export/xls"
	isverenclient "isveren-scraper/lib/isveren/client"
	"isveren-scraper/lib/normalizer"
	scrapeworker "isveren-scraper/lib/scrape-worker"
	"isveren-scraper/lib/scraper"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	if *config.Conf.Database.Enabled {
		InitDBConnection()
	}
	if *config.Conf.S3.Enabled {
		InitS3(ctx)
	}
	isverenclient.NewProvider(config.Conf.Isveren.BaseURL)
	normalizer.NewHandler(config.Conf.Isveren.DefaultLocale)
	csvexport.NewHandler()
	xlsexport.NewHandler()
	scraper.NewHandler()
	if *config.Conf.Worker.Enabled {
		scrapeworker.StartWorker(ctx)
	}
}
