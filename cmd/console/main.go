package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/kisaanstar/console/internal/app/client"
	"github.com/kisaanstar/console/internal/app/config"
	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/logger"
	"github.com/kisaanstar/console/internal/app/usecase/export"
	"github.com/kisaanstar/console/internal/app/usecase/report"
	"go.uber.org/zap"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		zap.L().Fatal("error while loading report timezone", zap.Error(err))
	}

	format, err := export.ParseFormat(config.ExportFormat)
	if err != nil {
		zap.L().Fatal("error while parsing export format", zap.Error(err))
	}

	apiClient, err := client.New(config)
	if err != nil {
		zap.L().Fatal("error while creating api client", zap.Error(err))
	}

	view := report.NewView(apiClient, location)

	ctx := context.Background()
	if err := view.Load(ctx); err != nil {
		zap.L().Fatal("error while loading orders", zap.Error(err))
	}

	if err := view.SetStatusFilter(entity.OrderStatus(config.StatusFilter)); err != nil {
		zap.L().Fatal("error while applying status filter", zap.Error(err))
	}

	if len(config.ReportDate) != 0 {
		day, err := time.ParseInLocation(time.DateOnly, config.ReportDate, location)
		if err != nil {
			zap.L().Fatal("error while parsing report date", zap.Error(err))
		}
		view.SetDateFilter(day)
	}

	revenue := view.Revenue()
	zap.L().Info("revenue summary",
		zap.Float64("total", revenue.Total),
		zap.Float64("pending", revenue.Pending),
		zap.Float64("confirm", revenue.Confirm),
		zap.Float64("cancel", revenue.Cancel),
	)

	path := filepath.Join(config.ExportDir, format.FileName())
	if err := exportReport(view, format, path, location); err != nil {
		zap.L().Fatal("error while exporting orders report", zap.Error(err))
	}

	zap.L().Info("orders report exported",
		zap.String("path", path),
		zap.Int("orders", len(view.Current())),
	)
}

func exportReport(view *report.View, format export.Format, path string, location *time.Location) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	rows := export.BuildRows(view.Current(), location)

	return export.Write(file, format, rows)
}
