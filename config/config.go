// config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Event backends selectable with EVENTS_BACKEND.
const (
	EventsNone     = "none"
	EventsKafka    = "kafka"
	EventsRabbitMQ = "rabbitmq"
)

// Config holds everything the tracker process reads from its environment.
type Config struct {
	HTTPAddr          string
	GraphQLPath       string
	PlaygroundEnabled bool
	MockRoleHeader    string
	DefaultPageSize   int
	SeedDemoData      bool
	LogLevel          string

	EventsBackend string
	KafkaBroker   string
	KafkaTopic    string

	RabbitMQUser     string
	RabbitMQPassword string
	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQQueue    string
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables and validates it.
func FromEnv() (*Config, error) {
	var errs []error

	cfg := &Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		GraphQLPath:       getEnv("GRAPHQL_PATH", "/query"),
		PlaygroundEnabled: getBool("PLAYGROUND_ENABLED", true, &errs),
		MockRoleHeader:    getEnv("MOCK_ROLE_HEADER", "X-Mock-Role"),
		DefaultPageSize:   getInt("DEFAULT_PAGE_SIZE", 20, &errs),
		SeedDemoData:      getBool("SEED_DEMO_DATA", true, &errs),
		LogLevel:          getEnv("LOG_LEVEL", "info"),

		EventsBackend: strings.ToLower(getEnv("EVENTS_BACKEND", EventsNone)),
		KafkaBroker:   getEnv("KAFKA_BROKER", ""),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "shipment.events"),

		RabbitMQUser:     getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPassword: getEnv("RABBITMQ_PASSWORD", "guest"),
		RabbitMQHost:     getEnv("RABBITMQ_HOST", "localhost"),
		RabbitMQPort:     getEnv("RABBITMQ_PORT", "5672"),
		RabbitMQQueue:    getEnv("RABBITMQ_QUEUE", "shipment_events"),
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.DefaultPageSize < 1 || c.DefaultPageSize > 100 {
		errs = append(errs, fmt.Errorf("DEFAULT_PAGE_SIZE must be between 1 and 100, got %d", c.DefaultPageSize))
	}
	if !strings.HasPrefix(c.GraphQLPath, "/") {
		errs = append(errs, fmt.Errorf("GRAPHQL_PATH must start with /, got %q", c.GraphQLPath))
	}
	if c.GraphQLPath == "/" && c.PlaygroundEnabled {
		errs = append(errs, errors.New("GRAPHQL_PATH cannot be / while the playground is enabled"))
	}
	if strings.TrimSpace(c.MockRoleHeader) == "" {
		errs = append(errs, errors.New("MOCK_ROLE_HEADER must not be empty"))
	}
	switch c.EventsBackend {
	case EventsNone:
	case EventsKafka:
		if c.KafkaBroker == "" {
			errs = append(errs, errors.New("KAFKA_BROKER is required when EVENTS_BACKEND=kafka"))
		}
		if c.KafkaTopic == "" {
			errs = append(errs, errors.New("KAFKA_TOPIC is required when EVENTS_BACKEND=kafka"))
		}
	case EventsRabbitMQ:
		if c.RabbitMQQueue == "" {
			errs = append(errs, errors.New("RABBITMQ_QUEUE is required when EVENTS_BACKEND=rabbitmq"))
		}
	default:
		errs = append(errs, fmt.Errorf("EVENTS_BACKEND must be one of none, kafka, rabbitmq, got %q", c.EventsBackend))
	}
	return errors.Join(errs...)
}

// RabbitMQURL formats the connection settings as an amqp:// URL.
func (c *Config) RabbitMQURL() string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(c.RabbitMQUser, c.RabbitMQPassword),
		Host:   net.JoinHostPort(c.RabbitMQHost, c.RabbitMQPort),
		Path:   "/",
	}
	return u.String()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be an integer, got %q", key, v))
		return def
	}
	return n
}

func getBool(key string, def bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be a boolean, got %q", key, v))
		return def
	}
	return b
}
