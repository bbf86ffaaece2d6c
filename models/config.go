package models

type Config struct {
	DatabaseURL    string
	DatabaseName   string
	ServerPort     string
	ServiceName    string
	ElasticUrl     string
	FrontendOrigin string
	BlizzardConfig BlizzardConfig
}

type BlizzardConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	// Optional overrides, used by tests and regional deployments. Empty means
	// the us defaults.
	OAuthBaseURL string
	APIBaseURL   string
}
