// Package config loads composition settings from a YAML file plus
// COMPOSE_-prefixed environment overrides (SPEC_FULL.md A.1).
//
// Grounded on rendis-doc-assembly's core/internal/infra/config: the
// same Viper-with-search-paths-and-env-prefix loader, trimmed to the
// settings this engine actually has (formatting overrides, page-number
// format, strict mode) instead of database/auth/signing config.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/chinmay-sawant/legalcompose/internal/formatting"
	"github.com/chinmay-sawant/legalcompose/internal/model"
)

// FormattingOverrideConfig mirrors model.FormattingOverride in a
// YAML/env-friendly shape (plain value types, no pointers);
// Config.FormattingOverridesModel converts populated fields into the pointer-delta form the formatter
// expects.
type FormattingOverrideConfig struct {
	LineSpacing        string `mapstructure:"line_spacing"`
	FontSize           float64 `mapstructure:"font_size"`
	MarginTop          float64 `mapstructure:"margin_top"`
	MarginBottom       float64 `mapstructure:"margin_bottom"`
	MarginLeft         float64 `mapstructure:"margin_left"`
	MarginRight        float64 `mapstructure:"margin_right"`
	PageNumberPosition string `mapstructure:"page_number_position"`
}

// PageNumberFormatConfig mirrors model.PageNumberFormat.
type PageNumberFormatConfig struct {
	Format         string `mapstructure:"format"`
	Prefix         string `mapstructure:"prefix"`
	Suffix         string `mapstructure:"suffix"`
	StartingNumber int    `mapstructure:"starting_number"`
}

// Config is the full recognized settings surface.
type Config struct {
	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"logging"`

	Strict              bool                                `mapstructure:"strict_mode"`
	PageNumberFormat    PageNumberFormatConfig              `mapstructure:"page_number_format"`
	FormattingOverrides map[string]FormattingOverrideConfig `mapstructure:"formatting_overrides"`

	Server struct {
		Port               string `mapstructure:"port"`
		MaxConcurrentJobs  int    `mapstructure:"max_concurrent_jobs"`
	} `mapstructure:"server"`
}

// Load reads settings/compose.yaml (searched in the conventional paths)
// merged with COMPOSE_-prefixed environment variables, falling back to
// defaults when no file is present.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("compose")
	v.SetConfigType("yaml")
	v.AddConfigPath("./settings")
	v.AddConfigPath("../settings")
	v.AddConfigPath(".")

	v.SetEnvPrefix("COMPOSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading compose config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling compose config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("strict_mode", false)
	v.SetDefault("page_number_format.format", "numeric")
	v.SetDefault("page_number_format.starting_number", 1)
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.max_concurrent_jobs", 4)
}

// PageNumberFormatModel converts the loaded config into model.PageNumberFormat.
func (c *Config) PageNumberFormatModel() model.PageNumberFormat {
	format := model.PageNumberNumeric
	switch c.PageNumberFormat.Format {
	case "roman":
		format = model.PageNumberRoman
	case "alpha":
		format = model.PageNumberAlpha
	}
	starting := c.PageNumberFormat.StartingNumber
	if starting == 0 {
		starting = 1
	}
	return model.PageNumberFormat{
		Format:         format,
		Prefix:         c.PageNumberFormat.Prefix,
		Suffix:         c.PageNumberFormat.Suffix,
		StartingNumber: starting,
	}
}

// FormattingOverridesModel converts the loaded per-type overrides into
// the map DocumentFormatter expects.
func (c *Config) FormattingOverridesModel() map[model.DocumentType]model.FormattingOverride {
	out := make(map[model.DocumentType]model.FormattingOverride, len(c.FormattingOverrides))
	for key, raw := range c.FormattingOverrides {
		dt := model.DocumentType(key)
		if !dt.Valid() {
			continue
		}
		override := model.FormattingOverride{}
		if raw.LineSpacing != "" {
			spacing := model.LineSpacing(raw.LineSpacing)
			override.LineSpacing = &spacing
		}
		if raw.FontSize != 0 {
			fontSize := raw.FontSize
			override.FontSize = &fontSize
		}
		if raw.MarginTop != 0 || raw.MarginBottom != 0 || raw.MarginLeft != 0 || raw.MarginRight != 0 {
			// Unset sides keep the document type's base margin.
			margins := formatting.RulesFor(dt, model.FormattingOverride{}).Margins
			if raw.MarginTop != 0 {
				margins.Top = raw.MarginTop
			}
			if raw.MarginBottom != 0 {
				margins.Bottom = raw.MarginBottom
			}
			if raw.MarginLeft != 0 {
				margins.Left = raw.MarginLeft
			}
			if raw.MarginRight != 0 {
				margins.Right = raw.MarginRight
			}
			override.Margins = &margins
		}
		if raw.PageNumberPosition != "" {
			pos := model.PageNumberPosition(raw.PageNumberPosition)
			override.PageNumberPosition = &pos
		}
		out[dt] = override
	}
	return out
}
