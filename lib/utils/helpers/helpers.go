package helpers

import (
	"context"
	"fmt"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// ExportFileName имя файла выгрузки с меткой времени, например isveren_cvs_20260830_120000.csv
func ExportFileName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("20060102_150405"), ext)
}
