package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	JWT          JWTConfig          `yaml:"jwt"`
	Security     SecurityConfig     `yaml:"security"`
	Google       GoogleConfig       `yaml:"google"`
	Stripe       StripeConfig       `yaml:"stripe"`
	Email        EmailConfig        `yaml:"email"`
	Sessions     SessionsConfig     `yaml:"sessions"`
	DefaultAdmin DefaultAdminConfig `yaml:"default_admin"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"`
}

type DatabaseConfig struct {
	Type   string       `yaml:"type"`
	SQLite SQLiteConfig `yaml:"sqlite"`
	MySQL  MySQLConfig  `yaml:"mysql"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	Charset  string `yaml:"charset"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	ExpiresIn string `yaml:"expires_in"`
	Issuer    string `yaml:"issuer"`
}

type SecurityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type GoogleConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
}

type StripeConfig struct {
	SecretKey string `yaml:"secret_key"`
	Currency  string `yaml:"currency"`
}

type EmailConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// SessionsConfig selects the active-session store. The memory store is
// single-instance only: a restart invalidates every session even while the
// bearer tokens themselves remain cryptographically valid until expiry.
type SessionsConfig struct {
	Store string      `yaml:"store"` // memory, redis
	Redis RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DefaultAdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

var Global *Config

// Load reads the configuration file and environment variables
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		cfg.JWT.Secret = jwtSecret
	}

	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		cfg.Database.Type = dbType
	}

	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.Database.SQLite.Path = dbPath
	}

	if mysqlHost := os.Getenv("MYSQL_HOST"); mysqlHost != "" {
		cfg.Database.MySQL.Host = mysqlHost
	}

	if mysqlUser := os.Getenv("MYSQL_USER"); mysqlUser != "" {
		cfg.Database.MySQL.Username = mysqlUser
	}

	if mysqlPass := os.Getenv("MYSQL_PASSWORD"); mysqlPass != "" {
		cfg.Database.MySQL.Password = mysqlPass
	}

	if mysqlDB := os.Getenv("MYSQL_DATABASE"); mysqlDB != "" {
		cfg.Database.MySQL.Database = mysqlDB
	}

	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" {
		cfg.Google.ClientID = clientID
	}

	if clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET"); clientSecret != "" {
		cfg.Google.ClientSecret = clientSecret
	}

	if stripeKey := os.Getenv("STRIPE_SECRET_KEY"); stripeKey != "" {
		cfg.Stripe.SecretKey = stripeKey
	}

	if emailHost := os.Getenv("EMAIL_HOST"); emailHost != "" {
		cfg.Email.Host = emailHost
	}

	if emailPort := os.Getenv("EMAIL_PORT"); emailPort != "" {
		if port, err := strconv.Atoi(emailPort); err == nil {
			cfg.Email.Port = port
		}
	}

	if emailUser := os.Getenv("EMAIL_USER"); emailUser != "" {
		cfg.Email.Username = emailUser
	}

	if emailPass := os.Getenv("EMAIL_PASS"); emailPass != "" {
		cfg.Email.Password = emailPass
	}

	if emailFrom := os.Getenv("EMAIL_FROM"); emailFrom != "" {
		cfg.Email.From = emailFrom
	}

	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		cfg.Sessions.Redis.Addr = redisAddr
	}

	// Ensure data directory exists for SQLite
	if cfg.Database.Type == "sqlite" {
		dataDir := filepath.Dir(cfg.Database.SQLite.Path)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// Validate MySQL configuration if MySQL is selected
	if cfg.Database.Type == "mysql" {
		if cfg.Database.MySQL.Username == "" {
			return nil, fmt.Errorf("MySQL username is required")
		}
		if cfg.Database.MySQL.Database == "" {
			return nil, fmt.Errorf("MySQL database name is required")
		}
	}

	if cfg.Sessions.Store == "" {
		cfg.Sessions.Store = "memory"
	}

	if cfg.Stripe.Currency == "" {
		cfg.Stripe.Currency = "usd"
	}

	Global = &cfg
	return &cfg, nil
}
