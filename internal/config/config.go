package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port          string `envconfig:"PORT" default:"8080"`
	Environment   string `envconfig:"ENV" default:"development"`
	DBPath        string `envconfig:"DB_PATH" default:"coursecraft.db"`
	SessionSecret string `envconfig:"SESSION_SECRET" required:"true"`

	// Gemini settings (course outline and module content generation)
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" required:"true"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`

	// OpenAI settings (quiz generation)
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY" required:"true"`
	OpenAIModel  string `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`

	// Path to the wkhtmltopdf binary; resolved from PATH when empty.
	WkhtmltopdfPath string `envconfig:"WKHTMLTOPDF_PATH"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
