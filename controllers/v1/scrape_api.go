package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"isveren-scraper/controllers"
	"isveren-scraper/lib/scraper"
	apimodels "isveren-scraper/models/api"
)

type scrapeApiController struct {
	controllers.BaseAPIController
}

func InitScrapeApiRouters(app *fiber.App) {
	controller := scrapeApiController{}
	app.Route("scrape", func(router fiber.Router) {
		router.Post("run", controller.run)
		router.Get("export/xlsx", controller.exportXlsx)
	})
}

// запуск сбора CV, выполняется синхронно и возвращает итог запуска
func (c *scrapeApiController) run(ctx *fiber.Ctx) error {
	report, err := scraper.Instance.Run(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сбора CV")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(report))
}

// выгрузка сохранённых в БД CV в Excel, query параметр run_id ограничивает запуск
func (c *scrapeApiController) exportXlsx(ctx *fiber.Ctx) error {
	runID := ctx.Query("run_id")
	data, err := scraper.Instance.ExportStoredXlsx(runID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки CV в Excel")
	}
	fileName := fmt.Sprintf("isveren_cvs-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
