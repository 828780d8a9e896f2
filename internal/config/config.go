package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Auth Auth `validate:"required"`

	Cache Cache

	Session Session
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
}

type Kafka struct {
	GroupID            string   `validate:"required"`
	Brokers            []string `validate:"required,min=1,dive,hostname_port"`
	AssignmentsTopic   string   `validate:"required"`
	NotificationsTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Auth struct {
	// Подпись HS256 токенов провайдера идентификации.
	JWTSecret string `validate:"required,min=16"`
}

type Cache struct {
	Capacity        int           `validate:"gte=1"`
	TTL             time.Duration `validate:"gt=0"`
	JanitorInterval time.Duration `validate:"gt=0"`
}

type Session struct {
	IdleTTL        time.Duration `validate:"gt=0"`
	ConfirmTimeout time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:            env("KAFKA_GROUP_ID", "driver-dashboard"),
			AssignmentsTopic:   env("KAFKA_ASSIGNMENTS_TOPIC", "order-assignments"),
			NotificationsTopic: env("KAFKA_NOTIFICATIONS_TOPIC", "driver-notifications"),
			Brokers:            strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "deliveries"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
		},

		Cache: Cache{
			Capacity:        envInt("CACHE_CAPACITY", 1000),
			TTL:             envDuration("CACHE_TTL", 10*time.Second),
			JanitorInterval: envDuration("CACHE_JANITOR_INTERVAL", 2*time.Minute),
		},

		Session: Session{
			IdleTTL:        envDuration("SESSION_IDLE_TTL", 30*time.Minute),
			ConfirmTimeout: envDuration("CONFIRM_TIMEOUT", 10*time.Second),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
