package types

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	OpenAI   OpenAIConfig
	Gemini   GeminiConfig
}

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	AppEnv         string
	LogLevel       string
	MaxUploadBytes int64
}

// ProviderConfig selects which generative model backend serves localization requests.
type ProviderConfig struct {
	Name string
}

// BaseURL overrides the API endpoint, e.g. for a proxy. Empty means the SDK default.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

const (
	DefaultServerPort     = "8080"
	DefaultProvider       = "gemini"
	DefaultGeminiModel    = "gemini-2.5-flash-lite"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultMaxUploadBytes = 10 << 20
)

// LoadConfig reads configuration from a .env file (if present) and environment variables.
// A missing model API key is not an error here: requests report it instead.
func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(envFile string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", DefaultServerPort)
	v.SetDefault("LLM_PROVIDER", DefaultProvider)
	v.SetDefault("GEMINI_MODEL", DefaultGeminiModel)
	v.SetDefault("OPENAI_MODEL", DefaultOpenAIModel)
	v.SetDefault("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)

	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Print("No config file found, falling back to environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Host:           v.GetString("SERVER_HOST"),
			Port:           v.GetString("SERVER_PORT"),
			ReadTimeout:    v.GetDuration("READ_TIMEOUT"),
			WriteTimeout:   v.GetDuration("WRITE_TIMEOUT"),
			AppEnv:         v.GetString("APP_ENV"),
			LogLevel:       v.GetString("LOG_LEVEL"),
			MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
		},
		Provider: ProviderConfig{
			Name: strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER"))),
		},
		OpenAI: OpenAIConfig{
			APIKey:  strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
			Model:   v.GetString("OPENAI_MODEL"),
			BaseURL: v.GetString("OPENAI_BASE_URL"),
		},
		Gemini: GeminiConfig{
			APIKey:  strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
			Model:   v.GetString("GEMINI_MODEL"),
			BaseURL: v.GetString("GEMINI_BASE_URL"),
		},
	}

	if config.Server.Port == "" {
		config.Server.Port = DefaultServerPort
	}
	if config.Server.MaxUploadBytes <= 0 {
		config.Server.MaxUploadBytes = DefaultMaxUploadBytes
	}

	return config, nil
}

// GetServerAddress returns the full server address
func (c *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsProduction reports whether the server runs with APP_ENV=production.
func (c *ServerConfig) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
