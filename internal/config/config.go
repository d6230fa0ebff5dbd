package config

import (
	"fmt"
	"os"
	"strings"

	"dishly/internal/extract"
	"dishly/internal/llm"
	"dishly/internal/storage"

	"github.com/joho/godotenv"
)

// required variables; everything else has a default or degrades at
// request time.
var required = []string{
	"JWT_SECRET",
	"DATABASE_URL",
}

type Config struct {
	Env         string
	Port        string
	LogLevel    string
	DatabaseURL string
	CORSOrigins []string

	LLMProvider string
	LLMAPIKey   string
	LLMModel    string
	LLMBaseURL  string

	R2           storage.R2Config
	MapsEmbedKey string
}

// Load reads the environment, loading .env first outside production.
func Load() (*Config, error) {
	env := getenv("APP_ENV", "development")
	if env != "production" {
		_ = godotenv.Load()
	}

	var missing []string
	for _, k := range required {
		if os.Getenv(k) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing env vars: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		Env:         env,
		Port:        getenv("PORT", "8000"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),

		LLMProvider: strings.ToLower(getenv("LLM_PROVIDER", "openai")),

		R2: storage.R2Config{
			Endpoint:  os.Getenv("R2_ENDPOINT"),
			Region:    os.Getenv("R2_REGION"),
			AccessKey: os.Getenv("R2_ACCESS_KEY"),
			SecretKey: os.Getenv("R2_SECRET_KEY"),
		},
		MapsEmbedKey: os.Getenv("GOOGLE_MAPS_EMBED_API_KEY"),
	}

	switch cfg.LLMProvider {
	case "openai":
		cfg.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
		cfg.LLMModel = os.Getenv("OPENAI_MODEL")
		cfg.LLMBaseURL = os.Getenv("OPENAI_BASE_URL")
	case "gemini":
		cfg.LLMAPIKey = os.Getenv("GEMINI_API_KEY")
		cfg.LLMModel = os.Getenv("GEMINI_MODEL")
		cfg.LLMBaseURL = os.Getenv("GEMINI_BASE_URL")
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want openai or gemini)", cfg.LLMProvider)
	}

	return cfg, nil
}

// UsesObjectStorage reports whether bucket credentials are configured.
func (c *Config) UsesObjectStorage() bool {
	return c.R2.AccessKey != "" && c.R2.SecretKey != ""
}

// ExtractionDisabledReason names what keeps menu extraction from running,
// or is empty when it can run.
func (c *Config) ExtractionDisabledReason() string {
	var missing []string
	if !c.UsesObjectStorage() {
		missing = append(missing, "R2 credentials")
	}
	if c.LLMAPIKey == "" {
		missing = append(missing, c.LLMProvider+" api key")
	}
	if len(missing) == 0 {
		return ""
	}
	return strings.Join(missing, " and ") + " not set"
}

// Extraction is the configuration the extraction pipeline checks before
// every run. The bucket secret is the privileged credential it acts with.
func (c *Config) Extraction() extract.Config {
	return extract.Config{
		DatabaseURL:       c.DatabaseURL,
		ServiceCredential: c.R2.SecretKey,
		LLMAPIKey:         c.LLMAPIKey,
	}
}

func (c *Config) Extractor() llm.Extractor {
	if c.LLMProvider == "gemini" {
		return llm.NewGeminiClient(c.LLMAPIKey, c.LLMModel, c.LLMBaseURL)
	}
	return llm.NewOpenAIClient(c.LLMAPIKey, c.LLMModel, c.LLMBaseURL)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
