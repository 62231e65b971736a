package config

type ProviderConfig struct {
	Name         string   `yaml:"name" json:"name"`
	ClientID     string   `yaml:"clientID" json:"clientID"`
	ClientSecret string   `yaml:"clientSecret" json:"clientSecret"`
	Tenant       string   `yaml:"tenant" json:"tenant"`
	Policy       string   `yaml:"policy" json:"policy"`
	Scopes       []string `yaml:"scopes" json:"scopes"`
}

func (p *ProviderConfig) validateAndInitialize() error {
	if p.Scopes == nil {
		p.Scopes = []string{}
	}

	if p.Name == "" {
		return errFieldMustBeSet("provider.name")
	}
	if p.ClientID == "" {
		return errFieldMustBeSet("provider.clientID")
	}
	if p.ClientSecret == "" {
		return errFieldMustBeSet("provider.clientSecret")
	}
	if p.Tenant == "" {
		return errFieldMustBeSet("provider.tenant")
	}
	if p.Policy == "" {
		return errFieldMustBeSet("provider.policy")
	}

	return nil
}
