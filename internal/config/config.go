// Package config loads SPLTUI settings from an optional YAML file, SPLTUI_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/csheth/spltui/internal/session"
)

// ErrInvalid wraps every validation failure returned by Load.
var ErrInvalid = errors.New("invalid configuration")

const (
	envPrefix      = "SPLTUI"
	configName     = "spltui"
	defaultLogFile = "spltui.log"
)

type Config struct {
	UI    UIConfig    `mapstructure:"ui"`
	Input InputConfig `mapstructure:"input"`
	Log   LogConfig   `mapstructure:"log"`
}

type UIConfig struct {
	Theme     string `mapstructure:"theme" validate:"required,oneof=dark light"`
	Start     string `mapstructure:"start" validate:"required,oneof=menu splsv spldv info"`
	AltScreen bool   `mapstructure:"alt_screen"`
}

// InputConfig tunes key handling. A zero Debounce disables debouncing.
type InputConfig struct {
	Debounce time.Duration `mapstructure:"debounce" validate:"min=0"`
}

type LogConfig struct {
	Verbose bool   `mapstructure:"verbose"`
	File    string `mapstructure:"file" validate:"required_if=Verbose true"`
}

// StartScreen converts the configured start option.
func (c UIConfig) StartScreen() session.Start {
	return session.Start(c.Start)
}

type Loader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

// NewLoader prepares a loader. An empty configFile searches ./spltui.yaml and
// $HOME/.config/spltui/spltui.yaml; a missing file is not an error in that case.
func NewLoader(configFile string) (*Loader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/spltui")
	}

	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.start", string(session.StartMenu))
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("input.debounce", session.DefaultDebounce(runtime.GOOS))
	v.SetDefault("log.verbose", false)
	v.SetDefault("log.file", defaultLogFile)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{viper: v, validator: validate, translator: trans}, nil
}

// BindFlag lets a command-line flag override key when the flag is set.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: flag not defined", key)
	}
	if err := l.viper.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("bind %s: %w", key, err)
	}
	return nil
}

// Override forces key to value, above every other source.
func (l *Loader) Override(key string, value any) {
	l.viper.Set(key, value)
}

func (l *Loader) Load() (*Config, error) {
	v := l.viper
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.UI.Theme = strings.ToLower(strings.TrimSpace(cfg.UI.Theme))

	if err := l.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, e.Translate(l.translator))
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, ", "))
	}
	return &cfg, nil
}

// ConfigFileUsed reports the file Load read, or "" when none was found.
func (l *Loader) ConfigFileUsed() string {
	return l.viper.ConfigFileUsed()
}
