package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Warehouse WarehouseConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	DataDir string
}

// WarehouseConfig is consumed by the ETL binary only; the API server never
// touches Postgres.
type WarehouseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movieflix-app")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DATA_DIR", "/data-lake")
	viper.SetDefault("POSTGRES_HOST", "movieflix-postgres")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_USER", "movieflix")
	viper.SetDefault("POSTGRES_DB", "movieflix_dw")
	viper.SetDefault("DB_MAX_CONNS", 10)

	// .env is optional; env vars and defaults cover a bare container.
	if _, err := os.Stat(".env"); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			DataDir: viper.GetString("DATA_DIR"),
		},
		Warehouse: WarehouseConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetString("POSTGRES_PORT"),
			Name:     viper.GetString("POSTGRES_DB"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
	}

	return config, nil
}
