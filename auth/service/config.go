package service

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Token          string `toml:"token"`
	Expiration     string `toml:"expiration"`
	PasswordPepper string `toml:"password_pepper"`
	RootEmail      string `toml:"root_email"`
	RootPassword   string `toml:"root_password"`
}

func NewConfig() (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile("configs/auth.toml", &cfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("AUTH_TOKEN_SECRET"); token != "" {
		cfg.Token = token
	}
	if pass := os.Getenv("AUTH_ROOT_PASSWORD"); pass != "" {
		cfg.RootPassword = pass
	}
	if cfg.Token == "" {
		return Config{}, errors.New("auth token secret must be set")
	}
	if cfg.Expiration == "" {
		cfg.Expiration = "24h"
	}
	return cfg, nil
}
