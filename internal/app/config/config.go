package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	APIAddr        string        `env:"KISAANSTAR_API_ADDRESS"`
	LogLevel       string        `env:"LOG_LEVEL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	Timezone       string        `env:"REPORT_TIMEZONE"`
	ExportDir      string        `env:"EXPORT_DIR"`
	ExportFormat   string        `env:"EXPORT_FORMAT"`
	StatusFilter   string        `env:"STATUS_FILTER"`
	ReportDate     string        `env:"REPORT_DATE"`
}

func InitConfig() (config Config) {
	flag.StringVar(&config.APIAddr, "a", "http://localhost:5000", "kisaanstar api address")
	flag.StringVar(&config.LogLevel, "l", "info", "log level")
	flag.DurationVar(&config.RequestTimeout, "t", 10*time.Second, "http request timeout")
	flag.StringVar(&config.Timezone, "z", "Asia/Kolkata", "timezone used for report date comparison")
	flag.StringVar(&config.ExportDir, "o", ".", "directory for exported order reports")
	flag.StringVar(&config.ExportFormat, "f", "csv", "export format: spreadsheet, csv or pdf")
	flag.StringVar(&config.StatusFilter, "s", "", "order status filter: Pending, Confirm or Cancel, empty for all")
	flag.StringVar(&config.ReportDate, "d", "", "calendar date filter in format 2006-01-02, empty for all")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	return
}
