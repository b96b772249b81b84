package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	MinPort = 1
	MaxPort = 65535
)

type Config struct {
	AppEnv   string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxRetries  int
	AutoMigrate bool
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker        string
	ConsumerGroup string
	PollInterval  time.Duration
}

type AuthConfig struct {
	JWTSecret string
	// TokenTTL of zero issues tokens without an exp claim.
	TokenTTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads the process environment. Call godotenv.Load before it to pick up
// a local .env file.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "3001"),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
		},
		Kafka: KafkaConfig{
			Broker:        os.Getenv("KAFKA_BROKER"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "recruitment-audit"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		},
	}

	var err error
	if cfg.Database.MaxRetries, err = getInt("DB_MAX_RETRIES", 5); err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate, err = getBool("DB_AUTO_MIGRATE", false); err != nil {
		return nil, err
	}
	if cfg.Auth.TokenTTL, err = getDuration("JWT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Kafka.PollInterval, err = getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// ValidateAPIConfig checks what the HTTP service cannot start without.
func (c *Config) ValidateAPIConfig() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < MinPort || port > MaxPort {
		return fmt.Errorf("invalid server port: %q (must be between %d and %d)", c.Server.Port, MinPort, MaxPort)
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if c.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

// ValidateWorkerConfig checks the outbox worker settings.
func (c *Config) ValidateWorkerConfig() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if c.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required")
	}
	if c.Kafka.PollInterval <= 0 {
		return errors.New("OUTBOX_POLL_INTERVAL must be greater than 0")
	}
	return nil
}

// ValidateConsumerConfig checks the audit consumer, which never touches the
// database.
func (c *Config) ValidateConsumerConfig() error {
	if c.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required")
	}
	if c.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Host == "" {
		return errors.New("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return errors.New("DB_NAME is required")
	}
	if c.Database.MaxRetries <= 0 {
		return errors.New("DB_MAX_RETRIES must be greater than 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
