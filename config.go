package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config contém a configuração do serviço carregada do ambiente
type Config struct {
	Port        string `envconfig:"PORT" default:"3000"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"inventory-service"`

	DatabaseUser     string `envconfig:"DATABASE_USER" default:"root"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD" default:"pass"`
	DatabaseHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort     string `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"inventory_db"`

	AIEndpoint   string `envconfig:"AI_ENDPOINT" default:"https://api.openai.com/v1/chat/completions"`
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`

	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4318"`
}

// LoadConfig carrega a configuração do ambiente com defaults
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	return &cfg, nil
}

// DatabaseDSN monta a string de conexão com o PostgreSQL
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
	)
}

// PoolDSN monta a string de conexão usada pelo pgxpool
func (c *Config) PoolDSN() string {
	return c.DatabaseDSN() + "&pool_max_conns=25&pool_min_conns=5"
}
