package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all process configuration. It is loaded once at startup
// and read-only afterwards; handlers and adapters receive it by
// injection, never through ambient lookups.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	OpenAI     OpenAIConfig
	ElevenLabs ElevenLabsConfig
	HeyGen     HeyGenConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type CORSConfig struct {
	AllowedOrigin string
}

// OpenAIConfig covers both transcription and chat; the provider uses a
// single key for both.
type OpenAIConfig struct {
	APIKey string
}

type ElevenLabsConfig struct {
	APIKey string
}

type HeyGenConfig struct {
	APIKey string
}

func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey: getEnv("ELEVEN_API_KEY", ""),
		},
		HeyGen: HeyGenConfig{
			APIKey: getEnv("HEYGEN_API_KEY", ""),
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// MissingKeys lists provider credentials that are unset. A missing key
// is not fatal at startup: each endpoint fails fast per request
// instead, so the other providers keep working.
func (c *Config) MissingKeys() []string {
	var missing []string
	if c.OpenAI.APIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.ElevenLabs.APIKey == "" {
		missing = append(missing, "ELEVEN_API_KEY")
	}
	if c.HeyGen.APIKey == "" {
		missing = append(missing, "HEYGEN_API_KEY")
	}
	return missing
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
