package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"isveren-scraper/config"
	apiv1 "isveren-scraper/controllers/v1"
	"isveren-scraper/fiberlog"
	"isveren-scraper/initializers"
	"isveren-scraper/lib/scraper"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	if !*config.Conf.App.ServerMode {
		runOnce(ctx, cancel)
		return
	}

	app := fiber.New(fiber.Config{})
	app.Use(fiberRecover.New())

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST",
	}))
	apiv1.InitScrapeApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}

// runOnce одиночный запуск сбора без HTTP сервера
func runOnce(ctx context.Context, cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		log.Info("Остановка по сигналу")
		cancel()
	}()

	report, err := scraper.Instance.Run(ctx)
	if err != nil {
		log.WithError(err).Fatal("Сбор CV завершился с ошибкой")
	}
	log.
		WithField("run_id", report.RunID).
		WithField("files", report.Files).
		Infof("Сбор завершён, обработано %v CV", report.Processed)
}
