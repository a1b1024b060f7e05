package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	DefaultSafariApp          = "Safari"
	DefaultResolveTimeout     = 10 * time.Second
	DefaultResolveCacheSize   = 512
	DefaultResolveConcurrency = 4
)

type Config struct {
	LogLevel  string `mapstructure:"log-level" yaml:"log-level" validate:"oneof=debug info warn error"`
	LogFile   string `mapstructure:"log-file" yaml:"log-file,omitempty"`
	SafariApp string `mapstructure:"safari-app" yaml:"safari-app" validate:"required"`
	Home      string `mapstructure:"home" yaml:"home,omitempty"`

	Resolve ResolveConfig `mapstructure:"resolve" yaml:"resolve"`

	// TidyRules are checked one by one when the engine is built, so a bad
	// entry is skipped rather than failing the whole config.
	TidyRules       []Rule           `mapstructure:"tidy-rules" yaml:"tidy-rules,omitempty"`
	ReferralTargets []ReferralTarget `mapstructure:"referral-targets" yaml:"referral-targets,omitempty" validate:"dive"`
}

type ResolveConfig struct {
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gt=0"`
	CacheSize   int           `mapstructure:"cache-size" yaml:"cache-size" validate:"gt=0"`
	Concurrency int           `mapstructure:"concurrency" yaml:"concurrency" validate:"gt=0"`
}

// Rule is a user-defined tidy rule.
type Rule struct {
	Type       string `mapstructure:"type" yaml:"type" validate:"required,oneof=DOMAIN DOMAIN-SUFFIX DOMAIN-KEYWORD URL-REGEX FINAL"`
	MatchValue string `mapstructure:"match-value" yaml:"match-value,omitempty" validate:"required_if=Type DOMAIN,required_if=Type DOMAIN-SUFFIX,required_if=Type DOMAIN-KEYWORD,required_if=Type URL-REGEX"`
	Action     string `mapstructure:"action" yaml:"action" validate:"required,oneof=RENAME-HOST CLEAR-QUERY CLEAR-FRAGMENT CLEAR-FRAGMENT-IF REMOVE-PARAM REMOVE-PARAM-PREFIX TRUNCATE-PATH STRIP-PATH-SUFFIX"`
	Value      string `mapstructure:"value" yaml:"value,omitempty" validate:"required_if=Action RENAME-HOST,required_if=Action CLEAR-FRAGMENT-IF,required_if=Action REMOVE-PARAM,required_if=Action REMOVE-PARAM-PREFIX,required_if=Action TRUNCATE-PATH,required_if=Action STRIP-PATH-SUFFIX"`
}

type ReferralTarget struct {
	Hostname   string `mapstructure:"hostname" yaml:"hostname" validate:"required,hostname_rfc1123"`
	Identifier string `mapstructure:"identifier" yaml:"identifier" validate:"required,numeric"`
}

var validate = validator.New()

// ValidateRule checks a single tidy rule.
func ValidateRule(r *Rule) error {
	return validate.Struct(r)
}

// SetDefaults registers the default value of every scalar key. Keys with a
// default are also the keys viper will pick up from the environment.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "info")
	v.SetDefault("log-file", "")
	v.SetDefault("safari-app", DefaultSafariApp)
	v.SetDefault("home", "")
	v.SetDefault("resolve.timeout", DefaultResolveTimeout)
	v.SetDefault("resolve.cache-size", DefaultResolveCacheSize)
	v.SetDefault("resolve.concurrency", DefaultResolveConcurrency)
}

// BuildConfigFromViper decodes the global viper instance.
func BuildConfigFromViper() (*Config, error) {
	return BuildConfig(viper.GetViper())
}

func BuildConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate home directory: %w", err)
		}
		cfg.Home = home
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Log Level", c.LogLevel),
		slog.String("Log File", c.LogFile),
		slog.String("Safari App", c.SafariApp),
		slog.String("Home", c.Home),
		slog.Duration("Resolve Timeout", c.Resolve.Timeout),
		slog.Int("Resolve Cache Size", c.Resolve.CacheSize),
		slog.Int("Resolve Concurrency", c.Resolve.Concurrency),
		slog.Int("Tidy Rules", len(c.TidyRules)),
		slog.Int("Referral Targets", len(c.ReferralTargets)),
	)
}

func (r Rule) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", r.Type),
		slog.String("match-value", r.MatchValue),
		slog.String("action", r.Action),
		slog.String("value", r.Value),
	)
}
