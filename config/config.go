package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		ServerMode *bool  `default:"false" env:"APP_SERVER_MODE"`
	}
	Isveren struct {
		BaseURL       string `default:"https://isveren.az/cv/" env:"ISVEREN_BASE_URL"`
		PageDelayMs   int    `default:"1000" env:"ISVEREN_PAGE_DELAY_MS"`
		DefaultLocale string `default:"az" env:"ISVEREN_DEFAULT_LOCALE"`
	}
	Export struct {
		Dir  string `default:"./export" env:"EXPORT_DIR"`
		Csv  *bool  `default:"true" env:"EXPORT_CSV"`
		Xlsx *bool  `default:"true" env:"EXPORT_XLSX"`
	}
	Worker struct {
		Enabled        *bool `default:"false" env:"SCRAPE_WORKER_ENABLED"`
		RunIntervalMin int   `default:"720" env:"SCRAPE_WORKER_INTERVAL_MIN"`
	}
	Database struct {
		Enabled        *bool  `default:"false" env:"DB_ENABLED"`
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"isveren-cv" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Enabled         *bool  `default:"false" env:"S3_ENABLED"`
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
		BucketName      string `default:"isveren-export" env:"S3_BUCKET_NAME"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
