package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	isverenapimodels "isveren-scraper/models/api/isveren"
)

type Provider interface {
	ExportCvList(list []isverenapimodels.FlatRecord) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) ExportCvList(list []isverenapimodels.FlatRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, isverenapimodels.FlatHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeCvData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "CVs")
	return f.WriteToBuffer()
}

func writeCvData(f *excelize.File, sheet string, list []isverenapimodels.FlatRecord, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(isverenapimodels.FlatHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		for idx, value := range item.Row() {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
