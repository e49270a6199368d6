package main

import (
	"errors"
	"log"

	"github.com/estatekit/console/config"
	"github.com/estatekit/console/internal/app"
	"github.com/estatekit/console/pkg/secrets"
)

// Sentinel errors for configuration.
var (
	ErrSecretStoreAddressNotConfigured = errors.New("secret store address not configured")
	ErrSecretStoreTokenNotConfigured   = errors.New("secret store token not configured")
)

// Function pointers for better testability.
var (
	initializeConfigFunc = config.NewConfig
	runAppFunc           = app.Run
	newSecretsClientFunc = func(cfg *config.Secrets) (secrets.Storager, error) {
		return secrets.NewClient(cfg)
	}
)

func main() {
	cfg, err := initializeConfigFunc()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	handleSigningKey(cfg)
	runAppFunc(cfg)
}

// handleSigningKey replaces the placeholder JWT key with one held in the
// secret store, when one is configured. A missing store is not fatal; the
// configured key stays in effect.
func handleSigningKey(cfg *config.Config) {
	store, err := handleSecretsConfig(cfg)
	if err != nil {
		return
	}

	key, err := store.GetKeyValue("jwt-signing-key")
	if err != nil {
		log.Printf("Signing key not found in secret store, keeping configured key: %v", err)

		return
	}

	cfg.JWTKey = key

	log.Println("Signing key loaded from secret store")
}

func handleSecretsConfig(cfg *config.Config) (secrets.Storager, error) {
	if cfg.Address == "" {
		return nil, ErrSecretStoreAddressNotConfigured
	}

	if cfg.Token == "" {
		return nil, ErrSecretStoreTokenNotConfigured
	}

	secretsClient, err := newSecretsClientFunc(&cfg.Secrets)
	if err != nil {
		log.Printf("Failed to connect to secret store: %v", err)

		return nil, err
	}

	log.Printf("Connected to secret store at: %s", cfg.Address)

	return secretsClient, nil
}
