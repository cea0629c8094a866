package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	LogLevel string `koanf:"log_level"`

	Server   ServerConfig   `koanf:"server"`
	Auction  AuctionConfig  `koanf:"auction"`
	Accounts AccountsConfig `koanf:"accounts"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
}

type AuctionConfig struct {
	// DefaultDuration is the listing window used when a create request
	// does not specify one.
	DefaultDuration time.Duration `koanf:"default_duration"`
	// IDBase seeds the shared user/item identifier sequence.
	IDBase int64 `koanf:"id_base"`
}

type AccountsConfig struct {
	// InitialBalance is credited to every newly registered account.
	InitialBalance float64 `koanf:"initial_balance"`
}

// Load builds the configuration from defaults, an optional
// configs/config.yaml, and AUCTION_-prefixed environment variables,
// in that precedence order.
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := &Config{
		LogLevel: "info",
		Server: ServerConfig{
			Port: 8080,
		},
		Auction: AuctionConfig{
			DefaultDuration: 60 * time.Minute,
			IDBase:          1000,
		},
		Accounts: AccountsConfig{
			InitialBalance: 1000,
		},
	}

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Config file is optional; a missing file is not an error.
	_ = k.Load(file.Provider("configs/config.yaml"), yaml.Parser())

	if err := k.Load(env.Provider("AUCTION_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "AUCTION_")), "_", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
