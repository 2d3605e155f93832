package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Machine.Origin != "Central" {
		t.Errorf("origin = %s, want Central", cfg.Machine.Origin)
	}
	if cfg.Machine.Currency != "£" {
		t.Errorf("currency = %s", cfg.Machine.Currency)
	}

	stations := cfg.Seed.DomainStations()
	if len(stations) != 3 || stations[0].Name != "London" || stations[0].SinglePrice != 12.50 {
		t.Errorf("seed stations = %+v", stations)
	}

	users := cfg.Seed.DomainUsers()
	if len(users) != 2 || !users[0].IsAdmin || users[1].IsAdmin {
		t.Errorf("seed users = %+v", users)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FAREGATE_MACHINE_ORIGIN", "Paddington")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Machine.Origin != "Paddington" {
		t.Errorf("origin = %s, want Paddington", cfg.Machine.Origin)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:  ServerConfig{Port: 8080, ReadTimeout: 10, WriteTimeout: 10},
		Machine: MachineConfig{Origin: "Central"},
		Auth:    AuthConfig{JWTSecret: "s", TokenExpiryMinutes: 60},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := valid
	bad.Server.Port = 0
	bad.Machine.Origin = ""
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	for _, want := range []string{"server.port", "machine.origin"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}

func TestValidate_RejectsNegativeSeedPrices(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Port: 8080, ReadTimeout: 10, WriteTimeout: 10},
		Machine: MachineConfig{Origin: "Central"},
		Auth:    AuthConfig{JWTSecret: "s", TokenExpiryMinutes: 60},
		Seed: SeedConfig{
			Stations: []StationSeed{{Name: "Typo", Single: -8.00, Return: 14.00}},
		},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation failure for negative seed price")
	}
	if !strings.Contains(err.Error(), "seed.stations[0]") {
		t.Errorf("error missing seed reference: %v", err)
	}
}

func TestValidate_NATSURLRequiredWhenEnabled(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Port: 8080, ReadTimeout: 10, WriteTimeout: 10},
		Machine: MachineConfig{Origin: "Central"},
		Auth:    AuthConfig{JWTSecret: "s", TokenExpiryMinutes: 60},
		NATS:    NATSConfig{Enabled: true},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation failure for missing nats.url")
	}
}
