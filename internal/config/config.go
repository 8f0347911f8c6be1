package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"1m"`
	MigrateOnStart  bool          `yaml:"MIGRATE_ON_START" env:"PG_MIGRATE_ON_START" env-default:"true"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-required:"true"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-required:"true"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`
}

type Security struct {
	JWTKey         string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	JWTExpiryHours int    `yaml:"JWT_EXPIRY_HOURS" env:"JWT_EXPIRY_HOURS" env-default:"24"`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"orders@example.com"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Local Commerce"`
}

type OtelConfig struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"local-commerce-platform"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
	CartTTL    time.Duration `yaml:"cart_ttl" env:"CACHE_CART_TTL" env-default:"720h"`
	ShopTTL    time.Duration `yaml:"shop_ttl" env:"CACHE_SHOP_TTL" env-default:"10m"`
}

type Storage struct {
	Bucket        string `yaml:"S3_BUCKET" env:"S3_BUCKET" env-default:""`
	Region        string `yaml:"S3_REGION" env:"S3_REGION" env-default:"ap-south-1"`
	Endpoint      string `yaml:"S3_ENDPOINT" env:"S3_ENDPOINT" env-default:""`
	PublicBaseURL string `yaml:"S3_PUBLIC_BASE_URL" env:"S3_PUBLIC_BASE_URL" env-default:""`
	AccessKeyID   string `yaml:"S3_ACCESS_KEY_ID" env:"S3_ACCESS_KEY_ID" env-default:""`
	SecretKey     string `yaml:"S3_SECRET_ACCESS_KEY" env:"S3_SECRET_ACCESS_KEY" env-default:""`
	MaxUploadMB   int64  `yaml:"MAX_UPLOAD_MB" env:"S3_MAX_UPLOAD_MB" env-default:"5"`
}

type Commerce struct {
	OrderCodePrefix       string   `yaml:"ORDER_CODE_PREFIX" env:"ORDER_CODE_PREFIX" env-default:"TDN"`
	OrderCodeDigits       int      `yaml:"ORDER_CODE_DIGITS" env:"ORDER_CODE_DIGITS" env-default:"4"`
	DefaultCommissionRate float64  `yaml:"DEFAULT_COMMISSION_RATE" env:"DEFAULT_COMMISSION_RATE" env-default:"10"`
	FeedChannelPrefix     string   `yaml:"FEED_CHANNEL_PREFIX" env:"FEED_CHANNEL_PREFIX" env-default:"orders"`
	AllowedOrigins        []string `yaml:"ALLOWED_ORIGINS" env:"ALLOWED_ORIGINS" env-default:""`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	LogLevel     string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Security     Security     `yaml:"security"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Otel         OtelConfig   `yaml:"otel"`
	Cache        CacheConfig  `yaml:"cache"`
	Storage      Storage      `yaml:"storage"`
	Commerce     Commerce     `yaml:"commerce"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = "config/local.yaml"
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}
