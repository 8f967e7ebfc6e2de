package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string // vazio = SQLite local (ltip.db)
	Host          string
	Port          string
	SessionSecret string
	Debug         bool
	UploadDir     string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Host:          os.Getenv("HOST"),
		Port:          os.Getenv("PORT"),
		SessionSecret: os.Getenv("SECRET_KEY"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
	}

	debug := strings.ToLower(os.Getenv("DEBUG"))
	cfg.Debug = debug == "1" || debug == "true" || debug == "yes"

	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SessionSecret == "" {
		// padrão apenas para desenvolvimento; defina SECRET_KEY em produção
		cfg.SessionSecret = "troque-esta-chave-em-producao"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}

	return cfg
}
