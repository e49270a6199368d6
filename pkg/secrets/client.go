// Package secrets provides key/value access to a HashiCorp Vault KV v2 store.
package secrets

import (
	"github.com/hashicorp/vault/api"

	"github.com/estatekit/console/config"
)

// Storager is the key/value contract the console needs from a secret store.
type Storager interface {
	GetKeyValue(key string) (string, error)
	SetKeyValue(key, value string) error
	DeleteKeyValue(key string) error
}

// Client implements Storager for HashiCorp Vault.
type Client struct {
	client *api.Client
	path   string
}

// Ensure Client implements the Storager interface.
var _ Storager = (*Client)(nil)

// NewVaultClient creates a new Vault Client instance with an existing Vault API client (for testing).
func NewVaultClient(vaultClient *api.Client, path string) *Client {
	return &Client{client: vaultClient, path: path}
}

// NewClient creates a new Vault Client instance from configuration (production use).
func NewClient(cfg *config.Secrets) (*Client, error) {
	vaultConfig := api.DefaultConfig()
	vaultConfig.Address = cfg.Address

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, err
	}

	client.SetToken(cfg.Token)

	return &Client{client: client, path: cfg.Path}, nil
}
