package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir  string
	QRDir    string
	HTTPAddr string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load .env file, using default values", "error", err)
	}

	cfg := &Config{
		DataDir:  os.Getenv("BRT_DATA_DIR"),
		QRDir:    os.Getenv("BRT_QR_DIR"),
		HTTPAddr: os.Getenv("HTTP_ADDR"),
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "brt_data"
	}
	if cfg.QRDir == "" {
		cfg.QRDir = "qr_codes"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	slog.Info("config loaded", "data_dir", cfg.DataDir, "qr_dir", cfg.QRDir, "http_addr", cfg.HTTPAddr)
	return cfg
}
