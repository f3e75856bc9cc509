package internal

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/tuannm99/novatable/internal/record"
	"github.com/tuannm99/novatable/internal/table"
)

type NovaTableConfig struct {
	AppName string `mapstructure:"app_name"`

	Render struct {
		ColumnSeparator string `mapstructure:"column_separator"`
		FieldSeparator  string `mapstructure:"field_separator"`
		Rule            string `mapstructure:"rule"`
		FloatPrecision  int    `mapstructure:"float_precision"`
	} `mapstructure:"render"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	r := table.DefaultRenderConfig()
	v.SetDefault("app_name", "novatable")
	v.SetDefault("render.column_separator", r.ColumnSeparator)
	v.SetDefault("render.field_separator", r.FieldSeparator)
	v.SetDefault("render.rule", r.Rule)
	v.SetDefault("render.float_precision", record.DefaultFloatPrecision)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *NovaTableConfig {
	v := viper.New()
	setDefaults(v)

	var cfg NovaTableConfig
	// defaults only, cannot fail
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// LoadConfig reads a yaml file; keys missing from it keep their defaults.
func LoadConfig(path string) (*NovaTableConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg NovaTableConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Render.FloatPrecision < 0 {
		return nil, fmt.Errorf("config: render.float_precision must be >= 0, got %d", cfg.Render.FloatPrecision)
	}

	return &cfg, nil
}

func (c *NovaTableConfig) RenderConfig() table.RenderConfig {
	return table.RenderConfig{
		ColumnSeparator: c.Render.ColumnSeparator,
		FieldSeparator:  c.Render.FieldSeparator,
		Rule:            c.Render.Rule,
		FloatPrecision:  c.Render.FloatPrecision,
	}
}

// Logger builds a slog logger writing to w with the configured level and format.
func (c *NovaTableConfig) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("config: log.level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.Log.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("config: invalid log format: %s", c.Log.Format)
	}
}
