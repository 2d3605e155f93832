package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"faregate/internal/core/domain"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Machine MachineConfig `mapstructure:"machine"`
	Seed    SeedConfig    `mapstructure:"seed"`
	NATS    NATSConfig    `mapstructure:"nats"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

type MachineConfig struct {
	Origin   string `mapstructure:"origin"`
	Currency string `mapstructure:"currency"`
}

// SeedConfig is the catalogue and user directory loaded at startup.
// There is no persistence: this is all the machine ever knows until an
// admin mutates it in memory.
type SeedConfig struct {
	Stations []StationSeed `mapstructure:"stations"`
	Users    []UserSeed    `mapstructure:"users"`
}

type StationSeed struct {
	Name   string  `mapstructure:"name"`
	Single float64 `mapstructure:"single"`
	Return float64 `mapstructure:"return"`
}

type UserSeed struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Admin    bool   `mapstructure:"admin"`
}

type NATSConfig struct {
	URL     string `mapstructure:"url"`
	Enabled bool   `mapstructure:"enabled"`
}

type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret"`
	TokenExpiryMinutes int    `mapstructure:"token_expiry_minutes"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DomainStations converts the seed list to domain stations, in order.
func (s SeedConfig) DomainStations() []domain.Station {
	out := make([]domain.Station, 0, len(s.Stations))
	for _, st := range s.Stations {
		out = append(out, domain.Station{
			Name:        st.Name,
			SinglePrice: st.Single,
			ReturnPrice: st.Return,
		})
	}
	return out
}

// DomainUsers converts the seed list to domain users.
func (s SeedConfig) DomainUsers() []domain.User {
	out := make([]domain.User, 0, len(s.Users))
	for _, u := range s.Users {
		out = append(out, domain.User{
			Username: u.Username,
			Password: u.Password,
			IsAdmin:  u.Admin,
		})
	}
	return out
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults: the stock catalogue and users the original machine
	// shipped with.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("machine.origin", "Central")
	v.SetDefault("machine.currency", "£")
	v.SetDefault("seed.stations", []map[string]any{
		{"name": "London", "single": 12.50, "return": 20.00},
		{"name": "Bristol", "single": 8.00, "return": 14.00},
		{"name": "Oxford", "single": 6.50, "return": 11.00},
	})
	v.SetDefault("seed.users", []map[string]any{
		{"username": "admin", "password": "adminpass", "admin": true},
		{"username": "guest", "password": "guestpass", "admin": false},
	})
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.enabled", false)
	v.SetDefault("auth.jwt_secret", "dev-secret")
	v.SetDefault("auth.token_expiry_minutes", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: FAREGATE_MACHINE_ORIGIN → machine.origin
	v.SetEnvPrefix("FAREGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Machine.Origin == "" {
		errs = append(errs, "machine.origin is required")
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, "auth.jwt_secret is required")
	}
	if c.Auth.TokenExpiryMinutes <= 0 {
		errs = append(errs, "auth.token_expiry_minutes must be positive")
	}
	if c.NATS.Enabled && c.NATS.URL == "" {
		errs = append(errs, "nats.url is required when nats.enabled")
	}
	for i, st := range c.Seed.Stations {
		if st.Name == "" {
			errs = append(errs, fmt.Sprintf("seed.stations[%d].name is required", i))
		}
		if st.Single < 0 || st.Return < 0 {
			errs = append(errs, fmt.Sprintf("seed.stations[%d] prices must not be negative", i))
		}
	}
	for i, u := range c.Seed.Users {
		if u.Username == "" {
			errs = append(errs, fmt.Sprintf("seed.users[%d].username is required", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
