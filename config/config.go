package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// SiteOrigin is the public club site; it is always allowed to call the chatbot.
const SiteOrigin = "http://i-keeper.site"

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Chat   ChatConfig
	CORS   CORSConfig
	App    AppConfig
}

type ServerConfig struct {
	Port string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ChatConfig struct {
	ReferencePath string
	PromptFile    string
}

type CORSConfig struct {
	BackURL      string
	ExtraOrigins []string
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "4004"),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GOOGLE_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Chat: ChatConfig{
			ReferencePath: getEnv("CLUB_INFO_PATH", "club_info.txt"),
			PromptFile:    os.Getenv("PROMPT_FILE"),
		},
		CORS: CORSConfig{
			BackURL:      strings.TrimSpace(os.Getenv("BACK_URL")),
			ExtraOrigins: getEnvAsList("CORS_EXTRA_ORIGINS"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY is required")
	}

	if c.Chat.ReferencePath == "" {
		return fmt.Errorf("CLUB_INFO_PATH is required")
	}

	for _, o := range c.AllowedOrigins() {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("origin %q must start with http:// or https://", o)
		}
	}

	return nil
}

// AllowedOrigins returns the CORS allow-list: the club site, BACK_URL and any
// extras, without duplicates or trailing slashes.
func (c *Config) AllowedOrigins() []string {
	candidates := append([]string{SiteOrigin, c.CORS.BackURL}, c.CORS.ExtraOrigins...)

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, o := range candidates {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return nil
	}

	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
