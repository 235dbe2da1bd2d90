package config

import (
	"errors"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/angeloszaimis/enemy-behavior/internal/behavior"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	AddSource bool   `mapstructure:"add_source"`
}

// ActorConfig scripts one actor: its starting behavior and the one it
// switches to.
type ActorConfig struct {
	Name    string `mapstructure:"name"`
	Initial string `mapstructure:"initial"`
	Next    string `mapstructure:"next"`
}

type Config struct {
	Environment string        `mapstructure:"environment"`
	Logging     LoggingConfig `mapstructure:"logging"`
	Cast        []ActorConfig `mapstructure:"cast"`
}

func defaultCast() []map[string]any {
	return []map[string]any{
		{"name": "Goblin", "initial": string(behavior.KindAggressive), "next": string(behavior.KindDefensive)},
		{"name": "Golem", "initial": string(behavior.KindDefensive), "next": string(behavior.KindPassive)},
		{"name": "Elf", "initial": string(behavior.KindPassive), "next": string(behavior.KindAggressive)},
	}
}

// Load reads config.yaml from ./config or the working directory, applies
// environment overrides and validates the result. A missing file is not an
// error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", EnvDev)
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("logging.add_source", false)
	v.SetDefault("cast", defaultCast())

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Debug("config file not found, using defaults and environment variables")
	} else {
		slog.Debug("loaded config file", slog.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment,
			validation.Required,
			validation.In(EnvDev, EnvStaging, EnvProd),
		),
		validation.Field(&c.Logging,
			validation.Required,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
				)
			}),
		),
		validation.Field(&c.Cast,
			validation.Required,
			validation.Length(1, 0),
			validation.Each(validation.By(validateActorConfig)),
		),
	)
}

func validateActorConfig(value interface{}) error {
	actor, ok := value.(ActorConfig)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be an ActorConfig")
	}

	return validation.ValidateStruct(&actor,
		validation.Field(&actor.Name, validation.Required),
		validation.Field(&actor.Initial, validation.Required, validation.By(validateKind)),
		validation.Field(&actor.Next, validation.Required, validation.By(validateKind)),
	)
}

func validateKind(value interface{}) error {
	kind, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if _, err := behavior.ParseKind(kind); err != nil {
		return validation.NewError("validation_invalid_behavior", "must be one of aggressive, defensive, passive")
	}

	return nil
}
