package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env    string
	Server ServerConfig
	Logger LoggerConfig
	Redis  RedisConfig
	LLM    LLMConfig
	Cache  CacheConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LLMConfig holds provider model names. API keys are not part of it; see APIKey.
type LLMConfig struct {
	Timeout      time.Duration
	GeminiModel  string
	MistralModel string
	OpenAIModel  string
	OllamaServer string
	OllamaModel  string
	// MaxQuestions caps numQuestions per request; 0 means no cap.
	MaxQuestions int
}

type CacheConfig struct {
	QuestionSetTTL string
}

// Environment variable names for provider keys.
const (
	GeminiAPIKey  = "gemini_api_key"
	MistralAPIKey = "mistral_api_key"
	OpenAIAPIKey  = "openai_api_key"
)

const DefaultQuestionSetTTL = 24 * time.Hour

func setDefaults() {
	viper.SetDefault("env", "development")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "60s")
	viper.SetDefault("server.write_timeout", "60s")
	viper.SetDefault("server.idle_timeout", "60s")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("llm.timeout", "0s")
	viper.SetDefault("llm.gemini_model", "gemini-2.5-flash")
	viper.SetDefault("llm.mistral_model", "mistral-large-latest")
	viper.SetDefault("llm.openai_model", "gpt-4o-mini")
	viper.SetDefault("llm.server", "http://localhost:11434")
	viper.SetDefault("llm.ollama_model", "qwen3:0.6b")
	viper.SetDefault("llm.max_questions", 0)
	viper.SetDefault("cache.question_set_ttl", "24h")
}

// LoadConfig reads config.yaml when present and applies environment overrides.
// A missing config file is not an error.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Env: viper.GetString("env"),
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout"),
			WriteTimeout: viper.GetDuration("server.write_timeout"),
			IdleTimeout:  viper.GetDuration("server.idle_timeout"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("log.level"),
			Env:   viper.GetString("env"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			Timeout:      viper.GetDuration("llm.timeout"),
			GeminiModel:  viper.GetString("llm.gemini_model"),
			MistralModel: viper.GetString("llm.mistral_model"),
			OpenAIModel:  viper.GetString("llm.openai_model"),
			OllamaServer: viper.GetString("llm.server"),
			OllamaModel:  viper.GetString("llm.ollama_model"),
			MaxQuestions: viper.GetInt("llm.max_questions"),
		},
		Cache: CacheConfig{
			QuestionSetTTL: viper.GetString("cache.question_set_ttl"),
		},
	}

	// SERVER_PORT and ENV are the names used by deployment scripts.
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("server_port")
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Env = env
		config.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}

	return config, nil
}

// APIKey returns a resolver for the named provider key. The key is looked up
// on every call, so a generator sees the environment as it is at call time.
func APIKey(name string) func() string {
	return func() string {
		if v := viper.GetString(name); v != "" {
			return v
		}
		return os.Getenv(strings.ToUpper(name))
	}
}

// ParseTTLStringOrDefault parses a duration string such as "30m" or "24h".
func (c *Config) ParseTTLStringOrDefault(ttl string, defaultTTL time.Duration) time.Duration {
	if ttl == "" {
		return defaultTTL
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return defaultTTL
	}
	return d
}

// QuestionSetTTL is the lifetime of a cached question set.
func (c *Config) QuestionSetTTL() time.Duration {
	return c.ParseTTLStringOrDefault(c.Cache.QuestionSetTTL, DefaultQuestionSetTTL)
}
