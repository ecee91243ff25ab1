package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"

	"jacsonsite/crypto"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	placeholderSecret = "CHANGE_ME_IN_PRODUCTION"
	devDatabaseURL    = "sqlite://jacson.db"
)

type Config struct {
	AppName     string        `mapstructure:"app_name"`
	Env         string        `mapstructure:"env"`
	ListenIP    string        `mapstructure:"listen_ip"`
	ListenPort  int           `mapstructure:"listen_port"`
	DatabaseURL string        `mapstructure:"database_url"`
	JWTSecret   string        `mapstructure:"jwt_secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
	DefaultLang string        `mapstructure:"default_lang"`
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, EnvProduction)
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ListenIP, c.ListenPort)
}

// LoadConfig reads the JSON config file at path (optional when empty) and
// applies environment overrides. In production a database URL and a token
// secret are mandatory; in development both fall back to local defaults
// with a warning.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("app_name", "Jacson Topografia & Agrimensura")
	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("listen_ip", "0.0.0.0")
	v.SetDefault("listen_port", 3002)
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("default_lang", "pt")

	// Environment names kept compatible with existing deployments.
	v.BindEnv("app_name", "APP_NAME")
	v.BindEnv("env", "APP_ENV", "NODE_ENV")
	v.BindEnv("listen_ip", "LISTEN_IP")
	v.BindEnv("listen_port", "PORT")
	v.BindEnv("database_url", "DATABASE_URL", "MONGO_URI")
	v.BindEnv("jwt_secret", "JWT_SECRET")
	v.BindEnv("token_ttl", "TOKEN_TTL")
	v.BindEnv("default_lang", "DEFAULT_LANG")

	v.SetConfigType("json")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.applyEnvironmentDefaults(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvironmentDefaults() error {
	if c.JWTSecret == placeholderSecret {
		c.JWTSecret = ""
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive, got %s", c.TokenTTL)
	}

	if c.IsProduction() {
		var missing []string
		if c.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
		if c.JWTSecret == "" {
			missing = append(missing, "JWT_SECRET")
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing required configuration in production: %s", strings.Join(missing, ", "))
		}
		return nil
	}

	if c.DatabaseURL == "" {
		log.Printf("WARNING: No database URL configured. Using local database %s.", devDatabaseURL)
		c.DatabaseURL = devDatabaseURL
	}
	if c.JWTSecret == "" {
		log.Println("WARNING: No JWT secret configured. Generating a random secret. Tokens will be invalidated on restart.")
		secret, err := crypto.RandomSecret(32)
		if err != nil {
			return err
		}
		c.JWTSecret = secret
	}
	return nil
}
