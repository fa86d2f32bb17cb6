package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 30, 45, 0, time.UTC)
	require.Equal(t, "isveren_cvs_20260830_123045.csv", ExportFileName("isveren_cvs", "csv", now))
}

func TestIsContextDone(t *testing.T) {
	require.True(t, IsContextDone(nil))
	require.False(t, IsContextDone(context.TODO()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.True(t, IsContextDone(ctx))
}
