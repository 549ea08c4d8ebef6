package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, giving the config file a stable shape decoupled
// from the runtime struct.
type StructuredJSONConfig struct {
	App struct {
		Root                 string   `json:"root"`
		LogLevel             string   `json:"log_level"`
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenLifetime  Duration `json:"access_token_lifetime"`
		RefreshTokenLifetime Duration `json:"refresh_token_lifetime"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Media struct {
			Mode       string   `json:"mode"`
			Dir        string   `json:"dir"`
			BaseURL    string   `json:"base_url"`
			CDNURL     string   `json:"cdn_url"`
			CDNKey     string   `json:"cdn_key"`
			CDNSecret  string   `json:"cdn_secret"`
			CDNTimeout Duration `json:"cdn_timeout"`
		} `json:"media,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Host            string   `json:"host"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		AttendanceAutofillEnabled  bool     `json:"attendance_autofill_enabled"`
		AttendanceAutofillInterval Duration `json:"attendance_autofill_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Root:                 jsonCfg.App.Root,
			LogLevel:             jsonCfg.App.LogLevel,
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			AccessTokenLifetime:  time.Duration(jsonCfg.App.AccessTokenLifetime),
			RefreshTokenLifetime: time.Duration(jsonCfg.App.RefreshTokenLifetime),
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
			Media: Media{
				Mode:       jsonCfg.Storage.Media.Mode,
				Dir:        jsonCfg.Storage.Media.Dir,
				BaseURL:    jsonCfg.Storage.Media.BaseURL,
				CDNURL:     jsonCfg.Storage.Media.CDNURL,
				CDNKey:     jsonCfg.Storage.Media.CDNKey,
				CDNSecret:  jsonCfg.Storage.Media.CDNSecret,
				CDNTimeout: time.Duration(jsonCfg.Storage.Media.CDNTimeout),
			},
		},
		Server: Server{
			Host:            jsonCfg.Server.Host,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Workers: Workers{
			AttendanceAutofillEnabled:  jsonCfg.Workers.AttendanceAutofillEnabled,
			AttendanceAutofillInterval: time.Duration(jsonCfg.Workers.AttendanceAutofillInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
