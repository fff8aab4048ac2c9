package config

import (
	"os"
	"strings"
)

// AppConfig holds the non-secret runtime settings: listen port, the frontend
// base URL used when building links in emails, the external renderer/search
// endpoints, and the CORS allow-list.
type AppConfig struct {
	Port             string
	FrontendBaseURL  string
	PDFRenderURL     string
	PlacesAPIURL     string
	PlacesAPIKey     string
	CORSAllowOrigins []string
}

func LoadAppConfig() AppConfig {
	LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	frontend := strings.TrimRight(os.Getenv("FRONTEND_URL"), "/")

	var origins []string
	if raw := os.Getenv("CORS_ALLOW_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return AppConfig{
		Port:             port,
		FrontendBaseURL:  frontend,
		PDFRenderURL:     os.Getenv("PDF_RENDER_URL"),
		PlacesAPIURL:     os.Getenv("PLACES_API_URL"),
		PlacesAPIKey:     os.Getenv("PLACES_API_KEY"),
		CORSAllowOrigins: origins,
	}
}
