package app

import (
	"time"

	server "github.com/Kiranxer/k-Anony/internal/adapters/primary/http"
	alerterAdapter "github.com/Kiranxer/k-Anony/internal/adapters/secondary/alerter"
	"github.com/Kiranxer/k-Anony/internal/adapters/secondary/storage/file"
	"github.com/Kiranxer/k-Anony/internal/adapters/secondary/telegram"
	"github.com/Kiranxer/k-Anony/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Log      *logger.Config         `envconfig:"LOG"`
	Server   *server.Config         `envconfig:"APISERVER"`
	Telegram *telegram.Config       `envconfig:"TELEGRAM"`
	Storage  *file.Config           `envconfig:"STORAGE"`
	Chat     *ChatConfig            `envconfig:"CHAT"`
	Alerter  *alerterAdapter.Config `envconfig:"ALERTER"`
}

// ChatConfig настройки анонимного чата
type ChatConfig struct {
	AdminIDs             []int64       `envconfig:"ADMIN_IDS"` // через запятую
	PremiumStarsPrice    int64         `envconfig:"PREMIUM_STARS_PRICE" default:"300"`
	PremiumDurationHours int           `envconfig:"PREMIUM_DURATION_HOURS" default:"14"`
	AutosaveInterval     time.Duration `envconfig:"AUTOSAVE_INTERVAL" default:"30s"`
}

func (c *ChatConfig) PremiumDuration() time.Duration {
	return time.Duration(c.PremiumDurationHours) * time.Hour
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
