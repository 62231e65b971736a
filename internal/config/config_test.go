package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func newValidConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Name:         "azureadb2c",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			Tenant:       "contoso",
			Policy:       "B2C_1_signin",
			Scopes:       []string{"openid"},
		},
		Server: ServerConfig{
			SiteURL: "https://bridge.example.com",
		},
	}
}

func TestLoad(t *testing.T) {
	t.Run("valid config file", func(t *testing.T) {
		g := NewWithT(t)

		fileName := filepath.Join(t.TempDir(), "config.yaml")
		g.Expect(os.WriteFile(fileName, []byte(`
provider:
  name: azureadb2c
  clientID: client-id
  clientSecret: client-secret
  tenant: contoso
  policy: B2C_1_signin
  scopes: [openid, offline_access]
device:
  codeLength: 6
  codeTTL: 10m
  sweepInterval: 1m
server:
  addr: ":8080"
  siteURL: https://bridge.example.com
`), 0o600)).To(Succeed())
		t.Setenv("OAUTH2_DEVICE_BRIDGE_CONFIG", fileName)

		cfg, err := Load()

		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(cfg.Provider.Name).To(Equal("azureadb2c"))
		g.Expect(cfg.Provider.Scopes).To(Equal([]string{"openid", "offline_access"}))
		g.Expect(cfg.Device.CodeLength).To(Equal(6))
		g.Expect(cfg.Device.TTL()).To(Equal(10 * time.Minute))
		g.Expect(cfg.Device.SweepEvery()).To(Equal(time.Minute))
		g.Expect(cfg.Server.Addr).To(Equal(":8080"))
	})

	t.Run("missing config file", func(t *testing.T) {
		g := NewWithT(t)

		t.Setenv("OAUTH2_DEVICE_BRIDGE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

		_, err := Load()

		g.Expect(err).To(HaveOccurred())
	})

	t.Run("invalid yaml", func(t *testing.T) {
		g := NewWithT(t)

		fileName := filepath.Join(t.TempDir(), "config.yaml")
		g.Expect(os.WriteFile(fileName, []byte("provider: ["), 0o600)).To(Succeed())
		t.Setenv("OAUTH2_DEVICE_BRIDGE_CONFIG", fileName)

		_, err := Load()

		g.Expect(err).To(HaveOccurred())
	})
}

func TestConfig_ValidateAndInitialize(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:        "missing provider name",
			mutate:      func(c *Config) { c.Provider.Name = "" },
			expectError: "provider.name must be set",
		},
		{
			name:        "missing client ID",
			mutate:      func(c *Config) { c.Provider.ClientID = "" },
			expectError: "provider.clientID must be set",
		},
		{
			name:        "missing client secret",
			mutate:      func(c *Config) { c.Provider.ClientSecret = "" },
			expectError: "provider.clientSecret must be set",
		},
		{
			name:        "missing tenant",
			mutate:      func(c *Config) { c.Provider.Tenant = "" },
			expectError: "provider.tenant must be set",
		},
		{
			name:        "missing policy",
			mutate:      func(c *Config) { c.Provider.Policy = "" },
			expectError: "provider.policy must be set",
		},
		{
			name:        "missing site URL",
			mutate:      func(c *Config) { c.Server.SiteURL = "" },
			expectError: "server.siteURL must be set",
		},
		{
			name:        "relative site URL",
			mutate:      func(c *Config) { c.Server.SiteURL = "/just/a/path" },
			expectError: "must be an absolute URL",
		},
		{
			name:        "negative code length",
			mutate:      func(c *Config) { c.Device.CodeLength = -1 },
			expectError: "device.codeLength must be positive",
		},
		{
			name:        "invalid code TTL",
			mutate:      func(c *Config) { c.Device.CodeTTL = "five minutes" },
			expectError: "failed to parse device.codeTTL",
		},
		{
			name:        "negative sweep interval",
			mutate:      func(c *Config) { c.Device.SweepInterval = "-1m" },
			expectError: "device.sweepInterval must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			cfg := newValidConfig()
			tt.mutate(cfg)

			err := cfg.ValidateAndInitialize()

			if tt.expectError != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(ContainSubstring(tt.expectError))
			} else {
				g.Expect(err).ToNot(HaveOccurred())
			}
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	g := NewWithT(t)

	cfg := newValidConfig()
	g.Expect(cfg.ValidateAndInitialize()).To(Succeed())

	g.Expect(cfg.Server.Addr).To(Equal(":32468"))
	g.Expect(cfg.Server.StaticDir).To(Equal("www"))
	g.Expect(cfg.Device.CodeLength).To(Equal(8))
	g.Expect(cfg.Device.TTL()).To(Equal(5 * time.Minute))
	g.Expect(cfg.Device.SweepEvery()).To(Equal(2 * time.Minute))
}

func TestServerConfig_URLs(t *testing.T) {
	g := NewWithT(t)

	cfg := newValidConfig()
	cfg.Server.SiteURL = "https://bridge.example.com/"
	g.Expect(cfg.ValidateAndInitialize()).To(Succeed())

	g.Expect(cfg.Server.CallbackURL()).To(Equal("https://bridge.example.com/auth/callback"))
	g.Expect(cfg.Server.DevicePageURL()).To(Equal("https://bridge.example.com/device.html"))
}
