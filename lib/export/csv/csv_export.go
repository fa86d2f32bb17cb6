package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/pkg/errors"
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
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(isverenapimodels.FlatHeaders); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в csv")
	}
	line := make([]string, len(isverenapimodels.FlatHeaders))
	for _, item := range list {
		for idx, value := range item.Row() {
			line[idx] = fmt.Sprint(value)
		}
		if err := w.Write(line); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования строки в csv")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "ошибка записи csv")
	}
	return buf, nil
}
