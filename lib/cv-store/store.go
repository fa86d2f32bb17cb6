package cvstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	isverenapimodels "isveren-scraper/models/api/isveren"
	dbmodels "isveren-scraper/models/db"
)

type Provider interface {
	SaveList(runID string, list []isverenapimodels.FlatRecord) error
	List(runID string) ([]dbmodels.CvRecord, error)
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveList(runID string, list []isverenapimodels.FlatRecord) error {
	for _, flat := range list {
		rec := dbmodels.NewCvRecord(runID, flat)
		tx := i.db.Save(&rec)
		if tx.Error != nil {
			return errors.Wrap(tx.Error, "ошибка сохранения CV")
		}
	}
	return nil
}

func (i impl) List(runID string) ([]dbmodels.CvRecord, error) {
	var result []dbmodels.CvRecord
	tx := i.db.Model(dbmodels.CvRecord{})
	if runID != "" {
		tx.Where("run_id = ?", runID)
	}
	err := tx.Order("created_at, cv_id").Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка CV")
	}
	return result, nil
}

func (i impl) Count() (int64, error) {
	var count int64
	err := i.db.Model(dbmodels.CvRecord{}).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка подсчёта CV")
	}
	return count, nil
}
