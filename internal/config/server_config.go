package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/matheuscscp/oauth2-device-bridge/internal/constants"
)

const (
	defaultServerAddr = ":32468"
	defaultStaticDir  = "www"
)

type ServerConfig struct {
	Addr      string `yaml:"addr" json:"addr"`
	SiteURL   string `yaml:"siteURL" json:"siteURL"`
	StaticDir string `yaml:"staticDir" json:"staticDir"`
}

func (s *ServerConfig) validateAndInitialize() error {
	if s.Addr == "" {
		s.Addr = defaultServerAddr
	}
	if s.StaticDir == "" {
		s.StaticDir = defaultStaticDir
	}

	if s.SiteURL == "" {
		return errFieldMustBeSet("server.siteURL")
	}
	s.SiteURL = strings.TrimSuffix(s.SiteURL, "/")
	u, err := url.Parse(s.SiteURL)
	if err != nil {
		return fmt.Errorf("failed to parse server.siteURL '%s': %w", s.SiteURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.siteURL '%s' must be an absolute URL", s.SiteURL)
	}

	return nil
}

// CallbackURL is the redirect target registered with the identity provider.
func (s *ServerConfig) CallbackURL() string {
	return s.SiteURL + constants.CallbackPath
}

// DevicePageURL is where a human enters the device code.
func (s *ServerConfig) DevicePageURL() string {
	return s.SiteURL + constants.DevicePagePath
}
