package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		Mode           string   `yaml:"mode"`
		ClientURL      string   `yaml:"clientUrl"`
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"server"`

	Database struct {
		URI            string `yaml:"uri"`
		Driver         string `yaml:"driver"` // "mongo" or "memory"
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	JWT struct {
		Secret string `yaml:"secret"`
		Expiry int    `yaml:"expiry"` // Token expiry in minutes
	} `yaml:"jwt"`

	Google struct {
		ClientID     string `yaml:"clientId"`
		ClientSecret string `yaml:"clientSecret"`
		RedirectURL  string `yaml:"redirectUrl"`
		Issuer       string `yaml:"issuer"`
	} `yaml:"google"`

	Log struct {
		Mode string `yaml:"mode"`
	} `yaml:"log"`

	RateLimit struct {
		TrackPerMinute int `yaml:"trackPerMinute"`
		QuizPerMinute  int `yaml:"quizPerMinute"`
	} `yaml:"rateLimit"`
}

// LoadConfig reads the configuration file. A missing file is not an error
// when path is empty; environment variables override whatever was read.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Database.URI, "MONGO_URI")
	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.JWT.Secret, "JWT_SECRET")
	setString(&c.Google.ClientID, "GOOGLE_CLIENT_ID")
	setString(&c.Google.ClientSecret, "GOOGLE_CLIENT_SECRET")
	setString(&c.Google.RedirectURL, "GOOGLE_REDIRECT_URL")
	setString(&c.Server.ClientURL, "CLIENT_URL")
	setString(&c.Server.Mode, "GIN_MODE")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Log.Mode, "LOG_MODE")

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "debug"
	}
	if len(c.Server.AllowedOrigins) == 0 && c.Server.ClientURL != "" {
		c.Server.AllowedOrigins = []string{c.Server.ClientURL}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "mongo"
	}
	if c.Database.TimeoutSeconds <= 0 {
		c.Database.TimeoutSeconds = 10
	}
	if c.JWT.Expiry <= 0 {
		c.JWT.Expiry = 7 * 24 * 60
	}
	if c.Google.Issuer == "" {
		c.Google.Issuer = "https://accounts.google.com"
	}
	if c.Google.RedirectURL == "" && c.Server.ClientURL != "" {
		c.Google.RedirectURL = strings.TrimRight(c.Server.ClientURL, "/") + "/auth/google/callback"
	}
	if c.Log.Mode == "" {
		c.Log.Mode = "dev"
	}
	if c.RateLimit.TrackPerMinute <= 0 {
		c.RateLimit.TrackPerMinute = 120
	}
	if c.RateLimit.QuizPerMinute <= 0 {
		c.RateLimit.QuizPerMinute = 20
	}
}

// Validate reports settings the server cannot start without
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mongo":
		if c.Database.URI == "" {
			return fmt.Errorf("database.uri is required for the mongo driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	return nil
}

// GoogleEnabled reports whether OAuth login can be offered
func (c *Config) GoogleEnabled() bool {
	return c.Google.ClientID != "" && c.Google.ClientSecret != "" && c.Google.RedirectURL != ""
}
