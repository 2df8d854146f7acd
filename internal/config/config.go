package config

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
	Shop     ShopConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

// DatabaseConfig points at the remote row store. An empty Host disables
// mirroring entirely and the app runs off built-in data.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c DatabaseConfig) Configured() bool {
	return c.Host != ""
}

// AIConfig points at the text-completion service. An empty APIKey makes
// every call return its static fallback text.
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type ShopConfig struct {
	AdminPassword string
	DeliveryFee   decimal.Decimal
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "melmagia")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_NAME", "melmagia")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("AI_API_KEY", "")
	viper.SetDefault("AI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("AI_BASE_URL", "")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("DELIVERY_FEE", "5.00")
	viper.SetDefault("LOG_LEVEL", "info")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	deliveryFee, err := decimal.NewFromString(viper.GetString("DELIVERY_FEE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		AI: AIConfig{
			APIKey:  viper.GetString("AI_API_KEY"),
			Model:   viper.GetString("AI_MODEL"),
			BaseURL: viper.GetString("AI_BASE_URL"),
		},
		Shop: ShopConfig{
			AdminPassword: viper.GetString("ADMIN_PASSWORD"),
			DeliveryFee:   deliveryFee,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
