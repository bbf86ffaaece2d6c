package config

import (
	"fmt"
	"os"

	"github.com/JosephVasc/arenameta/models"
	"github.com/joho/godotenv"
)

// LoadEnvironment reads the process configuration into one struct. A missing
// .env file is fine in deployed environments; missing Battle.net credentials
// are not.
func LoadEnvironment() (*models.Config, error) {
	godotenv.Load()

	config := &models.Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseName:   os.Getenv("DATABASE_NAME"),
		ServerPort:     os.Getenv("PORT"),
		ServiceName:    os.Getenv("SERVICE_NAME"),
		ElasticUrl:     os.Getenv("ELASTIC_URL"),
		FrontendOrigin: os.Getenv("FRONTEND_ORIGIN"),
		BlizzardConfig: models.BlizzardConfig{
			ClientID:     os.Getenv("BLIZZARD_CLIENT_ID"),
			ClientSecret: os.Getenv("BLIZZARD_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("BLIZZARD_REDIRECT_URI"),
			OAuthBaseURL: os.Getenv("BLIZZARD_OAUTH_BASE_URL"),
			APIBaseURL:   os.Getenv("BLIZZARD_API_BASE_URL"),
		},
	}

	if config.BlizzardConfig.ClientID == "" || config.BlizzardConfig.ClientSecret == "" {
		return nil, fmt.Errorf("BLIZZARD_CLIENT_ID and BLIZZARD_CLIENT_SECRET must be set")
	}

	if config.ServerPort == "" {
		config.ServerPort = "8000"
	}

	if config.FrontendOrigin == "" {
		config.FrontendOrigin = "http://localhost:3000"
	}

	return config, nil
}
