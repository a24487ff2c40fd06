package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Tracing      TracingConfig      `toml:"tracing"`
	Auth         AuthConfig         `toml:"auth"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
	Availability AvailabilityConfig `toml:"availability"`
	Booking      BookingConfig      `toml:"booking"`
	Geocoder     GeocoderConfig     `toml:"geocoder"`
	Notifier     NotifierConfig     `toml:"notifier"`
	AMQP         AMQPConfig         `toml:"amqp"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	// CartTTLHours сколько хранится неотправленная корзина
	CartTTLHours int `toml:"cart_ttl_hours"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type TracingConfig struct {
	Endpoint string `toml:"endpoint"`
	Insecure bool   `toml:"insecure"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	AdminRole string `toml:"admin_role"`
}

type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
}

type AvailabilityConfig struct {
	// PollIntervalSeconds период опроса занятых слотов
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
	// HorizonDays на сколько дней вперед держим снимок
	HorizonDays int `toml:"horizon_days"`
	// RealtimeChannel канал LISTEN/NOTIFY, пустой = realtime выключен
	RealtimeChannel string `toml:"realtime_channel"`
	// Timezone часовой пояс бизнеса (для "сегодня" и воскресений)
	Timezone string `toml:"timezone"`
}

type BookingConfig struct {
	DurationMinutes int `toml:"duration_minutes"`
}

type GeocoderConfig struct {
	BaseURL      string  `toml:"base_url"`
	Token        string  `toml:"token"`
	Country      string  `toml:"country"`
	ProximityLon float64 `toml:"proximity_lon"`
	ProximityLat float64 `toml:"proximity_lat"`
	MinResults   int     `toml:"min_results"`
	Limit        int     `toml:"limit"`
	Timeout      int     `toml:"timeout"`
}

type NotifierConfig struct {
	FormURL  string `toml:"form_url"`
	FormName string `toml:"form_name"`
	Timeout  int    `toml:"timeout"`
}

type AMQPConfig struct {
	URL   string `toml:"url"`
	Queue string `toml:"queue"`
}

// Load читает .env (если есть), затем config.toml, затем применяет переопределения из окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:         "localhost:6379",
			CartTTLHours: 72,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "cleanhome-booking",
		},
		Auth: AuthConfig{AdminRole: "admin"},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 120,
			Burst:             30,
		},
		Availability: AvailabilityConfig{
			PollIntervalSeconds: 30,
			HorizonDays:         90,
			RealtimeChannel:     "reservations_changed",
			Timezone:            "Europe/Zurich",
		},
		Booking: BookingConfig{DurationMinutes: 180},
		Geocoder: GeocoderConfig{
			BaseURL:      "https://api.mapbox.com",
			Country:      "ch",
			ProximityLon: 6.6323,
			ProximityLat: 46.5197,
			MinResults:   3,
			Limit:        5,
			Timeout:      5,
		},
		Notifier: NotifierConfig{
			FormName: "reservation",
			Timeout:  5,
		},
		AMQP: AMQPConfig{Queue: "reservation.created"},
	}
}

// applyEnv переопределяет секреты из окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("GEOCODER_TOKEN"); v != "" {
		cfg.Geocoder.Token = v
	}
	if v := os.Getenv("AMQP_URL"); v != "" {
		cfg.AMQP.URL = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.Tracing.Endpoint = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required (or JWT_SECRET)")
	}
	if c.Availability.PollIntervalSeconds <= 0 {
		return fmt.Errorf("config: availability.poll_interval_seconds must be positive")
	}
	if c.Booking.DurationMinutes <= 0 {
		return fmt.Errorf("config: booking.duration_minutes must be positive")
	}
	return nil
}
