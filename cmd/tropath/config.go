package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	ModuleName = "tropath"

	OptionConfig     = "config"
	OptionGraph      = "graph"
	OptionLogLevel   = "log-level"
	OptionStrict     = "strict"
	OptionVerify     = "verify"
	OptionNoPathText = "no-path-text"

	DefaultOptionGraph      = ""
	DefaultOptionLogLevel   = "warn"
	DefaultOptionStrict     = false
	DefaultOptionVerify     = false
	DefaultOptionNoPathText = ""
)

// Config is the resolved CLI configuration: flags override environment
// (TROPATH_*), which overrides the optional config file.
type Config struct {
	Graph      string
	LogLevel   slog.Level
	Strict     bool
	Verify     bool
	NoPathText string
}

// newViper returns a viper instance with defaults and env binding set up.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(ModuleName)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(OptionGraph, DefaultOptionGraph)
	v.SetDefault(OptionLogLevel, DefaultOptionLogLevel)
	v.SetDefault(OptionStrict, DefaultOptionStrict)
	v.SetDefault(OptionVerify, DefaultOptionVerify)
	v.SetDefault(OptionNoPathText, DefaultOptionNoPathText)

	return v
}

// NewConfig reads the config file (if any) and resolves all options.
func NewConfig(v *viper.Viper) (*Config, error) {
	if file := v.GetString(OptionConfig); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(OptionLogLevel))); err != nil {
		return nil, fmt.Errorf("option %s: %w", OptionLogLevel, err)
	}

	return &Config{
		Graph:      v.GetString(OptionGraph),
		LogLevel:   level,
		Strict:     v.GetBool(OptionStrict),
		Verify:     v.GetBool(OptionVerify),
		NoPathText: v.GetString(OptionNoPathText),
	}, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
