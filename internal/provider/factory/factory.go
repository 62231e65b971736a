package factory

import (
	"fmt"

	"github.com/matheuscscp/oauth2-device-bridge/internal/config"
	"github.com/matheuscscp/oauth2-device-bridge/internal/provider"
	"github.com/matheuscscp/oauth2-device-bridge/internal/provider/azureb2c"
)

const (
	providerAzureADB2C = "azureadb2c"
)

func New(conf *config.ProviderConfig, callbackURL string) (provider.Interface, error) {
	switch conf.Name {
	case providerAzureADB2C:
		return azureb2c.New(conf, callbackURL), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", conf.Name)
	}
}
