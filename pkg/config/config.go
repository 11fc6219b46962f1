// SPDX-FileCopyrightText: Copyright (c) 2026 NetFabric, Inc. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads SDK settings from the config file, the process
// environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/netfabric/netfabric-sdk-go/pkg/client"
)

const envPrefix = "NETFABRIC"

// APISettings selects the API endpoints.
type APISettings struct {
	BaseURL  string `mapstructure:"base_url" yaml:"base_url"`
	TokenURL string `mapstructure:"token_url" yaml:"token_url,omitempty"`
}

// AuthSettings carries the OAuth2 client credentials or a static token.
type AuthSettings struct {
	ClientID     string `mapstructure:"client_id" yaml:"client_id,omitempty"`
	ClientSecret string `mapstructure:"client_secret" yaml:"client_secret,omitempty"`
	// Scope restricts issued tokens, e.g. "tsg_id:1234".
	Scope string `mapstructure:"scope" yaml:"scope,omitempty"`
	Token string `mapstructure:"token" yaml:"token,omitempty"`
}

// HTTPSettings tunes the transport behavior.
type HTTPSettings struct {
	TimeoutSeconds int  `mapstructure:"timeout_seconds" yaml:"timeout_seconds,omitempty"`
	RetryAttempts  uint `mapstructure:"retry_attempts" yaml:"retry_attempts,omitempty"`
}

// LogSettings controls SDK logging.
type LogSettings struct {
	Level string `mapstructure:"level" yaml:"level,omitempty"`
}

// Settings is the full SDK configuration.
type Settings struct {
	API  APISettings  `mapstructure:"api" yaml:"api"`
	Auth AuthSettings `mapstructure:"auth" yaml:"auth"`
	HTTP HTTPSettings `mapstructure:"http" yaml:"http,omitempty"`
	Log  LogSettings  `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultPath returns the default config file location,
// ~/.netfabric/config.yaml.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".netfabric", "config.yaml")
}

// Load reads settings from the given config file (DefaultPath when empty),
// a .env file in the working directory when present, and NETFABRIC_*
// environment variables. Environment values win over file values.
func Load(path string) (*Settings, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys through Unmarshal.
	for _, key := range []string{
		"api.base_url", "api.token_url",
		"auth.client_id", "auth.client_secret", "auth.scope", "auth.token",
		"http.timeout_seconds", "http.retry_attempts",
		"log.level",
	} {
		_ = v.BindEnv(key)
	}

	v.SetDefault("http.timeout_seconds", 30)
	v.SetDefault("http.retry_attempts", 3)
	v.SetDefault("log.level", "info")

	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &s, nil
}

// Validate checks that the settings are usable: the base URL must be set,
// and OAuth2 credentials must be complete when no static token is given.
func (s *Settings) Validate() error {
	needsOAuth := s.Auth.Token == ""
	return validation.Errors{
		"api.base_url": validation.Validate(s.API.BaseURL,
			validation.Required, is.URL),
		"api.token_url": validation.Validate(s.API.TokenURL,
			validation.When(needsOAuth && s.Auth.ClientID != "", validation.Required)),
		"auth.client_id": validation.Validate(s.Auth.ClientID,
			validation.When(needsOAuth, validation.Required)),
		"auth.client_secret": validation.Validate(s.Auth.ClientSecret,
			validation.When(needsOAuth && s.Auth.ClientID != "", validation.Required)),
	}.Filter()
}

// LogLevel parses the configured level, defaulting to info.
func (s *Settings) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(s.Log.Level))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// ClientConfig translates the settings into a transport client
// configuration.
func (s *Settings) ClientConfig(logger *zerolog.Logger) client.Config {
	return client.Config{
		BaseURL:       s.API.BaseURL,
		TokenURL:      s.API.TokenURL,
		ClientID:      s.Auth.ClientID,
		ClientSecret:  s.Auth.ClientSecret,
		Scope:         s.Auth.Scope,
		Token:         s.Auth.Token,
		Timeout:       time.Duration(s.HTTP.TimeoutSeconds) * time.Second,
		RetryAttempts: s.HTTP.RetryAttempts,
		Logger:        logger,
	}
}
