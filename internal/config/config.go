package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full server configuration, loaded from environment
// variables (optionally backed by a config file for local development).
type Config struct {
	Port string `mapstructure:"port"`

	DB struct {
		Host    string `mapstructure:"host"`
		Port    string `mapstructure:"port"`
		User    string `mapstructure:"user"`
		Pass    string `mapstructure:"pass"`
		Name    string `mapstructure:"name"`
		SSLMode string `mapstructure:"sslmode"`
	} `mapstructure:"db"`

	Redis struct {
		Addr string `mapstructure:"addr"`
		Pass string `mapstructure:"pass"`
		DB   int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	AWS struct {
		Region string `mapstructure:"region"`
		Bucket string `mapstructure:"bucket"`
		Prefix string `mapstructure:"prefix"`
	} `mapstructure:"aws"`

	JWT struct {
		Secret     string        `mapstructure:"secret"`
		AccessTTL  time.Duration `mapstructure:"access_ttl"`
		RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
		Issuer     string        `mapstructure:"issuer"`
	} `mapstructure:"jwt"`

	Auth struct {
		ResetTokenTTL time.Duration `mapstructure:"reset_token_ttl"`
		BcryptCost    int           `mapstructure:"bcrypt_cost"`
	} `mapstructure:"auth"`

	Certificados struct {
		VerificationURL string `mapstructure:"verification_url"`
		QueueName       string `mapstructure:"queue_name"`
		Workers         int    `mapstructure:"workers"`
	} `mapstructure:"certificados"`

	Catalogo struct {
		CacheTTL time.Duration `mapstructure:"cache_ttl"`
	} `mapstructure:"catalogo"`
}

// DSN builds the Postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Pass, c.DB.Name, c.DB.SSLMode)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "vinculo")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "vinculo")
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.pass", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.bucket", "vinculo-artifacts")
	v.SetDefault("aws.prefix", "uploads")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_ttl", 30*time.Minute)
	v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("jwt.issuer", "vinculo")

	v.SetDefault("auth.reset_token_ttl", time.Hour)
	v.SetDefault("auth.bcrypt_cost", 0) // 0 = bcrypt default

	v.SetDefault("certificados.verification_url", "http://localhost:8080/api/verificacion")
	v.SetDefault("certificados.queue_name", "certificados:delivery")
	v.SetDefault("certificados.workers", 3)

	v.SetDefault("catalogo.cache_ttl", 10*time.Minute)
}

// Load reads configuration from the environment (VINCULO_DB_HOST,
// VINCULO_JWT_SECRET, ...) and, when present, a config.yaml in the
// working directory.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("VINCULO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; env vars and defaults carry the config
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
