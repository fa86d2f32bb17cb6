package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "isveren-scraper/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.CvRecord{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CvRecord")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
