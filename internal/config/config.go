package config

import (
	"time"

	"github.com/phrazzld/leflux-api/internal/domain/srs"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database" validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	SRS        srs.ParamsConfig `mapstructure:"srs"`
	Review     ReviewConfig     `mapstructure:"review" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// LogFile enables a rotating log file instead of stdout when set.
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb" validate:"gte=0"`
	LogMaxBackups int    `mapstructure:"log_max_backups" validate:"gte=0"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days" validate:"gte=0"`
	LogCompress   bool   `mapstructure:"log_compress"`

	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url" validate:"required,url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

// LLMConfig contains story generation settings. Generation is disabled when
// GeminiAPIKey is empty.
type LLMConfig struct {
	GeminiAPIKey  string        `mapstructure:"gemini_api_key"`
	ModelName     string        `mapstructure:"model_name" validate:"required"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxStoryChars int           `mapstructure:"max_story_chars" validate:"gte=120"`
}

// Enabled reports whether story generation is configured.
func (c LLMConfig) Enabled() bool {
	return c.GeminiAPIKey != ""
}

// DictionaryConfig controls the public dictionary lookup used to fill in
// definitions and examples for new entries. The URLs are bases without a
// trailing slash; WiktionaryURL may contain a {lang} placeholder for the
// language subdomain. A source with an empty URL is skipped.
type DictionaryConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"gt=0"`
	CacheSize         int           `mapstructure:"cache_size" validate:"gte=0"`
	DictionaryAPIURL  string        `mapstructure:"dictionary_api_url" validate:"omitempty,url"`
	FreeDictionaryURL string        `mapstructure:"free_dictionary_url" validate:"omitempty,url"`
	WiktionaryURL     string        `mapstructure:"wiktionary_url"`
}

// ReviewConfig bounds review session sizes.
type ReviewConfig struct {
	DefaultSessionSize int `mapstructure:"default_session_size" validate:"gte=1"`
	MaxSessionSize     int `mapstructure:"max_session_size" validate:"gte=1,gtefield=DefaultSessionSize"`
}
