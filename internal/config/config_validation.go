// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pankaj Shinde

package config

import (
	"fmt"
	"time"
)

// Fallback values applied by [StructuredConfig.setDefaults] for fields no
// source provided.
const (
	DefaultAppRoot              = "."
	DefaultLogLevel             = "info"
	DefaultTokenIssuer          = "eventroop"
	DefaultAccessTokenLifetime  = 60 * time.Minute
	DefaultRefreshTokenLifetime = 7 * 24 * time.Hour
	DefaultHost                 = "0.0.0.0"
	DefaultRequestTimeout       = 60 * time.Second
	DefaultShutdownTimeout      = 10 * time.Second
	DefaultMediaDir             = "media"
	DefaultMediaBaseURL         = "/media"
	DefaultCDNTimeout           = 30 * time.Second
	DefaultMaxOpenConns         = 10
	DefaultAutofillInterval     = 24 * time.Hour
)

// setDefaults fills fields left zero by every configuration source. Secrets
// (token sign key, DSN, CDN credentials) are deliberately never defaulted.
// Port is also left as provided: its absence must surface when the server
// binds, not here.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.Root == "" {
		cfg.App.Root = DefaultAppRoot
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.AccessTokenLifetime == 0 {
		cfg.App.AccessTokenLifetime = DefaultAccessTokenLifetime
	}
	if cfg.App.RefreshTokenLifetime == 0 {
		cfg.App.RefreshTokenLifetime = DefaultRefreshTokenLifetime
	}

	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}
	if cfg.Storage.Media.Mode == "" {
		cfg.Storage.Media.Mode = MediaModeLocal
	}
	if cfg.Storage.Media.Dir == "" {
		cfg.Storage.Media.Dir = DefaultMediaDir
	}
	if cfg.Storage.Media.BaseURL == "" {
		cfg.Storage.Media.BaseURL = DefaultMediaBaseURL
	}
	if cfg.Storage.Media.CDNTimeout == 0 {
		cfg.Storage.Media.CDNTimeout = DefaultCDNTimeout
	}

	if cfg.Workers.AttendanceAutofillInterval == 0 {
		cfg.Workers.AttendanceAutofillInterval = DefaultAutofillInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The DSN and Port are intentionally not validated here: commands that touch
// the database check the DSN themselves, and the Port contract defers
// checking to the moment the listener binds.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.RefreshTokenLifetime <= cfg.App.AccessTokenLifetime {
		return fmt.Errorf("%w: refresh token lifetime %s must exceed access token lifetime %s",
			ErrInvalidAppConfigs, cfg.App.RefreshTokenLifetime, cfg.App.AccessTokenLifetime)
	}

	switch cfg.Storage.Media.Mode {
	case MediaModeLocal:
	case MediaModeCDN:
		if cfg.Storage.Media.CDNURL == "" {
			return fmt.Errorf("%w: media mode %q requires a CDN URL",
				ErrInvalidStorageConfigs, MediaModeCDN)
		}
	default:
		return fmt.Errorf("%w: unknown media mode %q",
			ErrInvalidStorageConfigs, cfg.Storage.Media.Mode)
	}

	if cfg.Workers.AttendanceAutofillEnabled && cfg.Workers.AttendanceAutofillInterval <= 0 {
		return fmt.Errorf("%w: autofill interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
