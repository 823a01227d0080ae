package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Voice-to-Jira specifics
	Locale    LocaleConfig
	Generator GeneratorConfig
	Jira      JiraConfig
	Whisper   WhisperConfig
	Session   SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LocaleConfig anchors relative-date resolution.
type LocaleConfig struct {
	Timezone string
}

// GeneratorConfig configures the text-generation endpoint.
type GeneratorConfig struct {
	// BaseURL enables endpoint autodiscovery (chat, then responses).
	BaseURL string
	// URL pins one exact endpoint and skips probing. Optional.
	URL string
	// Model pins the model; otherwise the best listed model is picked.
	Model string

	APIKey     string
	AuthHeader string
	AuthScheme string

	TimeoutSeconds int
}

// JiraConfig configures the issue tracker export.
type JiraConfig struct {
	BaseURL  string
	Email    string
	APIToken string
	Project  string

	RatePerMin int
}

// WhisperConfig configures the optional transcription endpoint.
type WhisperConfig struct {
	URL   string
	Model string
}

// SessionConfig bounds the in-memory session store.
type SessionConfig struct {
	Capacity int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Locale
	cfg.Locale.Timezone = viper.GetString("locale.timezone")

	// Generator endpoint
	cfg.Generator.BaseURL = viper.GetString("generator.base_url")
	cfg.Generator.URL = viper.GetString("generator.url")
	cfg.Generator.Model = viper.GetString("generator.model")
	cfg.Generator.APIKey = viper.GetString("generator.api_key")
	cfg.Generator.AuthHeader = viper.GetString("generator.auth_header")
	cfg.Generator.AuthScheme = viper.GetString("generator.auth_scheme")
	cfg.Generator.TimeoutSeconds = viper.GetInt("generator.timeout_seconds")
	if baseURL := viper.GetString("llama_base_url"); baseURL != "" {
		cfg.Generator.BaseURL = baseURL
	}
	if url := viper.GetString("llama_url"); url != "" {
		cfg.Generator.URL = url
	}
	if model := viper.GetString("llama_model"); model != "" {
		cfg.Generator.Model = model
	}
	if key := viper.GetString("llama_api_key"); key != "" {
		cfg.Generator.APIKey = key
	}

	// Jira
	cfg.Jira.BaseURL = viper.GetString("jira.base_url")
	cfg.Jira.Email = viper.GetString("jira.email")
	cfg.Jira.APIToken = viper.GetString("jira.api_token")
	cfg.Jira.Project = viper.GetString("jira.project")
	cfg.Jira.RatePerMin = viper.GetInt("jira.rate_per_min")
	if jiraURL := viper.GetString("jira_base_url"); jiraURL != "" {
		cfg.Jira.BaseURL = jiraURL
	}
	if jiraEmail := viper.GetString("jira_email"); jiraEmail != "" {
		cfg.Jira.Email = jiraEmail
	}
	if jiraToken := viper.GetString("jira_api_token"); jiraToken != "" {
		cfg.Jira.APIToken = jiraToken
	}
	if jiraProject := viper.GetString("jira_project"); jiraProject != "" {
		cfg.Jira.Project = jiraProject
	}

	// Whisper (optional)
	cfg.Whisper.URL = viper.GetString("whisper.url")
	cfg.Whisper.Model = viper.GetString("whisper.model")
	if whisperURL := viper.GetString("whisper_url"); whisperURL != "" {
		cfg.Whisper.URL = whisperURL
	}

	// Session store
	cfg.Session.Capacity = viper.GetInt("session.capacity")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Generator.BaseURL == "" && c.Generator.URL == "" {
		return fmt.Errorf("generator endpoint not configured - set generator.base_url or generator.url")
	}
	if c.Jira.BaseURL == "" || c.Jira.Email == "" || c.Jira.APIToken == "" {
		return fmt.Errorf("jira credentials not configured - set jira.base_url, jira.email and jira.api_token")
	}
	if c.Jira.Project == "" {
		return fmt.Errorf("jira.project is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("locale.timezone", "Asia/Almaty")
	viper.SetDefault("generator.auth_header", "Authorization")
	viper.SetDefault("generator.auth_scheme", "Bearer")
	viper.SetDefault("generator.timeout_seconds", 180)
	viper.SetDefault("jira.rate_per_min", 60)
	viper.SetDefault("session.capacity", 256)
}
