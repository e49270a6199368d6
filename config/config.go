package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

var ConsoleConfig *Config

type (
	// Config -.
	Config struct {
		App      `yaml:"app"`
		HTTP     `yaml:"http"`
		Log      `yaml:"logger"`
		Auth     `yaml:"auth"`
		Upstream `yaml:"upstream"`
		DB       `yaml:"sqlite"`
		Secrets  `yaml:"secrets"`
		Cache    `yaml:"cache"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Repo    string `env-required:"true" yaml:"repo" env:"APP_REPO"`
		Version string `env-required:"true"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `env-required:"true" yaml:"host" env:"HTTP_HOST"`
		Port           string   `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		AllowedOrigins []string `env-required:"true" yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
		AllowedHeaders []string `env-required:"true" yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS"`
		TLS            TLS      `yaml:"tls"`
	}

	// TLS -.
	TLS struct {
		Enabled  bool   `yaml:"enabled" env:"HTTP_TLS_ENABLED"`
		CertFile string `yaml:"certFile" env:"HTTP_TLS_CERT_FILE"`
		KeyFile  string `yaml:"keyFile" env:"HTTP_TLS_KEY_FILE"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// Auth -.
	Auth struct {
		Disabled        bool          `yaml:"disabled" env:"AUTH_DISABLED"`
		JWTKey          string        `env-required:"true" yaml:"jwtKey" env:"AUTH_JWT_KEY"`
		SessionDuration time.Duration `yaml:"sessionDuration" env:"AUTH_SESSION_DURATION"`
		LoginPath       string        `yaml:"loginPath" env:"AUTH_LOGIN_PATH"`
		// OAUTH CONFIG, if provided token verification goes through the OIDC issuer
		ClientID string `yaml:"clientId" env:"AUTH_CLIENT_ID"`
		Issuer   string `yaml:"issuer" env:"AUTH_ISSUER"`
	}

	// Upstream holds the connection settings for the platform REST API.
	Upstream struct {
		BaseURL string        `env-required:"true" yaml:"base_url" env:"UPSTREAM_BASE_URL"`
		Timeout time.Duration `yaml:"timeout" env:"UPSTREAM_TIMEOUT"`
	}

	// DB -.
	DB struct {
		Path    string `env-required:"true" yaml:"path" env:"DB_PATH"`
		PoolMax int    `env-required:"true" yaml:"pool_max" env:"DB_POOL_MAX"`
	}

	// Secrets -.
	Secrets struct {
		Address string `yaml:"address" env:"SECRETS_ADDR"`
		Token   string `yaml:"token" env:"SECRETS_TOKEN"`
		Path    string `yaml:"path" env:"SECRETS_PATH"`
	}

	// Cache -.
	Cache struct {
		RefDataTTL time.Duration `yaml:"refdata_ttl" env:"CACHE_REFDATA_TTL"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "console",
			Repo:    "estatekit/console",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host:           "localhost",
			Port:           "8181",
			AllowedOrigins: []string{"*"},
			AllowedHeaders: []string{"*"},
			TLS: TLS{
				Enabled:  false,
				CertFile: "",
				KeyFile:  "",
			},
		},
		Log: Log{
			Level: "info",
		},
		Auth: Auth{
			JWTKey:          "your_secret_jwt_key",
			SessionDuration: 45 * time.Minute,
			LoginPath:       "/login",
			ClientID:        "",
			Issuer:          "",
		},
		Upstream: Upstream{
			BaseURL: "http://localhost:8000",
			Timeout: 30 * time.Second,
		},
		DB: DB{
			Path:    "console.db",
			PoolMax: 2,
		},
		Secrets: Secrets{
			Address: "",
			Token:   "",
			Path:    "secret/data/console",
		},
		Cache: Cache{
			RefDataTTL: 30 * time.Second,
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		// Write config file out to disk
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		if encErr := encoder.Encode(cfg); encErr != nil {
			return encErr
		}

		return nil
	}

	return err
}

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	// set defaults
	ConsoleConfig = defaultConfig()

	// Define a command line flag for the config path
	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	// Determine the config path
	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(configPath, ConsoleConfig); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(ConsoleConfig); err != nil {
		return nil, err
	}

	return ConsoleConfig, nil
}
