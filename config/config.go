package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port     string         `yaml:"port"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	R2       R2Config       `yaml:"r2"`

	CORSOrigins        []string `yaml:"cors_origins"`
	LoginRatePerMinute int      `yaml:"login_rate_per_minute"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // postgres or sqlite
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
	AdminName     string `yaml:"admin_name"`
}

func defaults() *Config {
	return &Config{
		Port: "8080",
		Database: DatabaseConfig{
			Driver:  "postgres",
			Host:    "localhost",
			Port:    "5432",
			SSLMode: "disable",
		},
		Auth: AuthConfig{AdminName: "Admin"},
		Log: LogConfig{
			Level:      "info",
			Format:     "json",
			MaxSize:    100,
			MaxAge:     30,
			MaxBackups: 5,
		},
		R2:                 R2Config{Region: "auto"},
		CORSOrigins:        []string{"*"},
		LoginRatePerMinute: 20,
	}
}

// Load reads .env (if present), an optional YAML file named by CONFIG_FILE,
// then applies environment overrides.
func Load() (*Config, error) {
	// Missing .env is fine in production.
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.Port, "PORT")

	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")

	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.Auth.AdminEmail, "ADMIN_EMAIL")
	setString(&c.Auth.AdminPassword, "ADMIN_PASSWORD")
	setString(&c.Auth.AdminName, "ADMIN_NAME")

	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")
	setString(&c.Log.File, "LOG_FILE")

	setString(&c.R2.AccountID, "CLOUDFLARE_ACCOUNT_ID")
	setString(&c.R2.AccessKeyID, "CLOUDFLARE_ACCESS_KEY_ID")
	setString(&c.R2.SecretAccessKey, "CLOUDFLARE_SECRET_ACCESS_KEY")
	setString(&c.R2.BucketName, "CLOUDFLARE_BUCKET_NAME")
	setString(&c.R2.PublicURL, "CLOUDFLARE_PUBLIC_URL")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSOrigins = origins
	}
	if v := os.Getenv("LOGIN_RATE_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LoginRatePerMinute = n
		}
	}
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.Database.Driver {
	case "postgres":
		if c.Database.URL == "" && c.Database.Name == "" {
			return errors.New("DATABASE_URL or DB_NAME is required")
		}
	case "sqlite":
		if c.Database.URL == "" {
			return errors.New("DATABASE_URL is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if (c.Auth.AdminEmail == "") != (c.Auth.AdminPassword == "") {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}
	if c.Auth.AdminPassword != "" && len(c.Auth.AdminPassword) < 6 {
		return errors.New("ADMIN_PASSWORD must be at least 6 characters")
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
