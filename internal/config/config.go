// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads docconv settings from a YAML file, DOCCONV_*
// environment variables, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pdiddy/docconv/pkg/types"
)

const (
	// Name is the config file base name and the environment prefix.
	Name      = "docconv"
	envPrefix = "DOCCONV"
)

// Defaults returns the built-in configuration.
func Defaults() types.Config {
	return types.Config{
		Backend:   types.BackendOffice,
		Timeout:   5 * time.Minute,
		Container: types.ContainerConfig{Image: "docconv-office:latest"},
		QPDF:      types.QPDFConfig{Binary: "qpdf"},
		Log:       types.LogConfig{Level: "warn", Format: "console"},
	}
}

// New returns a viper instance with defaults registered, environment
// overrides enabled, and search paths set. When file is non-empty it is the
// only config file consulted.
func New(file string) *viper.Viper {
	v := viper.New()

	d := Defaults()
	v.SetDefault("backend", string(d.Backend))
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("office.binary", d.Office.Binary)
	v.SetDefault("container.runtime", d.Container.Runtime)
	v.SetDefault("container.image", d.Container.Image)
	v.SetDefault("qpdf.binary", d.QPDF.Binary)
	v.SetDefault("journal.path", d.Journal.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (a missing file in the default search paths is
// not an error), decodes, and validates. It returns the file used, if any.
func Load(v *viper.Viper) (types.Config, string, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, "", fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return types.Config{}, "", err
	}
	return cfg, v.ConfigFileUsed(), nil
}

var validate = validator.New()

// Validate checks field constraints and reports every violation.
func Validate(cfg types.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", configKey(fe.Namespace()), fe.ActualTag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// configKey turns a validator namespace ("Config.Log.Level") into the
// config key a user writes ("log.level").
func configKey(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}
