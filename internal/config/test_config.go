package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadTestConfig reads the TEST_DB_* environment variables used by the
// integration tests. Missing variables leave the corresponding fields zero so
// tests can fall back to a local default DSN.
func LoadTestConfig() (*Config, error) {
	_ = godotenv.Load("./../../.env")
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Database.Host = os.Getenv("TEST_DB_HOST")
	cfg.Database.User = os.Getenv("TEST_DB_USER")
	cfg.Database.Password = os.Getenv("TEST_DB_PASSWORD")
	cfg.Database.DBName = os.Getenv("TEST_DB_NAME")

	port, err := envIntOr("TEST_DB_PORT", 3306)
	if err != nil {
		return nil, err
	}
	cfg.Database.Port = port

	return cfg, nil
}
