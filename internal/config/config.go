package config

import "fmt"

type HTTPConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0" yaml:"host"`
	Port int    `env:"PORT" envDefault:"5000" yaml:"port"`
	// Upper bound for request bodies, in bytes.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576" yaml:"max_body_bytes"`
}

func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DBConfig struct {
	// Driver is either "sqlite3" or "pgx".
	Driver string `env:"DRIVER" envDefault:"sqlite3" yaml:"driver"`
	// Path of the sqlite database file.
	Path string `env:"PATH" envDefault:"users.db" yaml:"path"`
	// DSN is used as-is for pgx.
	DSN string `env:"DSN" yaml:"dsn"`
}

func (c DBConfig) DataSource() string {
	if c.Driver == "pgx" {
		return c.DSN
	}
	return c.Path
}

type KafkaConfig struct {
	Enabled     bool     `env:"ENABLED" envDefault:"false" yaml:"enabled"`
	Brokers     []string `env:"BROKERS" envSeparator:"," yaml:"brokers"`
	ClientID    string   `env:"CLIENT_ID" envDefault:"users-service" yaml:"client_id"`
	GroupID     string   `env:"GROUP_ID" envDefault:"users-service" yaml:"group_id"`
	TopicPrefix string   `env:"TOPIC_PREFIX" yaml:"topic_prefix"`
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false" yaml:"enabled"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"users-service" yaml:"service_name"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development" yaml:"service_env"`
	// e.g. "otel-collector:4317"
	OtelEndpoint string `env:"ENDPOINT" yaml:"otel_endpoint"`
}

type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info" yaml:"level"`
}

type Config struct {
	Environment string `env:"APP_ENV" envDefault:"Development" yaml:"environment"`

	HTTP          HTTPConfig          `envPrefix:"HTTP_" yaml:"http"`
	DB            DBConfig            `envPrefix:"DB_" yaml:"db"`
	Kafka         KafkaConfig         `envPrefix:"KAFKA_" yaml:"kafka"`
	Observability ObservabilityConfig `envPrefix:"OTEL_" yaml:"observability"`
	Log           LogConfig           `envPrefix:"LOG_" yaml:"log"`
}
