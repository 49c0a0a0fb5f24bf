package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds process-level settings for both the wizard and the
// companion service. Values come from the environment, optionally seeded
// from a .env file.
type Config struct {
	// Wizard side
	APIBase string // base URL of the companion service, including /api
	Lang    string // "it" or "en"

	// Service side
	Port         string
	UploadDir    string
	GeneratorURL string // upstream generator; /generate fails without it
}

// Load reads the environment into a Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Println("Warning: error loading .env file")
		}
	}

	return &Config{
		APIBase:      getEnv("COPYFORGE_API", "http://127.0.0.1:8787/api"),
		Lang:         getEnv("COPYFORGE_LANG", "it"),
		Port:         getEnv("PORT", "8787"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		GeneratorURL: getEnv("GENERATOR_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
