package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// LEFLUX_DATABASE_URL or LEFLUX_SERVER_PORT.
const EnvPrefix = "LEFLUX"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_file", "")
	v.SetDefault("server.log_max_size_mb", 100)
	v.SetDefault("server.log_max_backups", 3)
	v.SetDefault("server.log_max_age_days", 28)
	v.SetDefault("server.log_compress", false)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.timeout", "45s")
	v.SetDefault("llm.max_story_chars", 800)

	v.SetDefault("dictionary.enabled", true)
	v.SetDefault("dictionary.timeout", "8s")
	v.SetDefault("dictionary.cache_size", 1000)
	v.SetDefault("dictionary.dictionary_api_url", "https://api.dictionaryapi.dev")
	v.SetDefault("dictionary.free_dictionary_url", "https://freedictapi.onrender.com")
	v.SetDefault("dictionary.wiktionary_url", "https://{lang}.wiktionary.org")

	// Zero values keep the scheduler defaults; the keys are registered so
	// environment overrides are picked up by Unmarshal.
	for _, key := range []string{
		"initial_ease", "min_ease", "fail_ease_penalty", "hard_ease_penalty",
		"easy_ease_bonus", "fail_interval", "hard_interval_multiplier",
		"max_interval", "mastery_streak", "mastery_interval", "demotion_ease",
	} {
		v.SetDefault("srs."+key, 0)
	}

	v.SetDefault("review.default_session_size", 20)
	v.SetDefault("review.max_session_size", 100)
}

// Load reads configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence.
//
// When configFile is empty, ./config.yaml is used if it exists.
// Returns a populated Config or an error if loading or validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags, then checks the scheduler
// overrides against each other using the effective values.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if err := validateSchedule(srs.NewParams(cfg.SRS)); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func validateSchedule(p *srs.Params) error {
	switch {
	case p.InitialEase < p.MinEase:
		return fmt.Errorf("srs.initial_ease (%g) must not be below srs.min_ease (%g)", p.InitialEase, p.MinEase)
	case p.FailInterval > p.MaxInterval:
		return fmt.Errorf("srs.fail_interval (%d) must not exceed srs.max_interval (%d)", p.FailInterval, p.MaxInterval)
	case p.MasteryInterval > p.MaxInterval:
		return fmt.Errorf("srs.mastery_interval (%d) must not exceed srs.max_interval (%d)", p.MasteryInterval, p.MaxInterval)
	}
	return nil
}
