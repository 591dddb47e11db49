package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"squadmatch/internal/domain"
)

type Server struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	Debug        bool   `toml:"debug_mode"`
	SqliteFile   string `toml:"sqlite_file"`
	TgBotEnabled bool   `toml:"tg_bot_enabled"`
}

// Rating holds the tuning knobs the domain consumes. Validated here so the
// core never observes an out-of-range value.
type Rating struct {
	DefaultRating int `toml:"default_rating"`
	KFactor       int `toml:"k_factor"`
	TeamSize      int `toml:"team_size"`
}

type TgBot struct {
	TelegramAPIToken string `toml:"telegram_api_token"`
	SqliteFile       string `toml:"sqlite_file"`
}

type Config struct {
	Server Server `toml:"server"`
	Rating Rating `toml:"rating"`
	TgBot  TgBot  `toml:"tg_bot"`
}

func New() (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile("configs/server.toml", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read server config: %w", err)
	}
	_, err = toml.DecodeFile("configs/bot.toml", &cfg.TgBot)
	if err != nil {
		return Config{}, fmt.Errorf("read bot config: %w", err)
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		cfg.TgBot.TelegramAPIToken = token
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Rating.DefaultRating == 0 {
		c.Rating.DefaultRating = 1000
	}
	if c.Rating.KFactor == 0 {
		c.Rating.KFactor = 32
	}
	if c.Rating.TeamSize == 0 {
		c.Rating.TeamSize = domain.DefaultTeamSize
	}
	if c.Server.SqliteFile == "" {
		c.Server.SqliteFile = "squadmatch.sqlite"
	}
}

func (c Config) Validate() error {
	if c.Rating.KFactor <= 0 {
		return errors.New("k_factor must be positive")
	}
	if c.Rating.TeamSize < 1 {
		return errors.New("team_size must be at least 1")
	}
	if _, err := domain.NewRating(c.Rating.DefaultRating); err != nil {
		return fmt.Errorf("default_rating: %w", err)
	}
	return nil
}
