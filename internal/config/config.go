package config

import (
  "os"

  "github.com/joho/godotenv"
)

const defaultSourceBaseURL = "https://fakestoreapi.com"

type Config struct {
  Sanity SanityConfig
  Source SourceConfig
}

type SanityConfig struct {
  ProjectID string
  Dataset   string
  Token     string
}

type SourceConfig struct {
  BaseURL string
}

// Load reads a local .env file when present, then the process environment.
// Missing values are passed through empty and fail at client construction.
func Load() *Config {
  _ = godotenv.Load()

  return &Config{
    Sanity: SanityConfig{
      ProjectID: os.Getenv("NEXT_PUBLIC_SANITY_PROJECT_ID"),
      Dataset:   os.Getenv("NEXT_PUBLIC_SANITY_DATASET"),
      Token:     os.Getenv("SANITY_API_TOKEN"),
    },
    Source: SourceConfig{
      BaseURL: getEnv("SOURCE_BASE_URL", defaultSourceBaseURL),
    },
  }
}

func getEnv(key, fallback string) string {
  if value := os.Getenv(key); value != "" {
    return value
  }
  return fallback
}
