package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		HookTokenKey    string `json:"hook_token_key"`
		HookTokenIssuer string `json:"hook_token_issuer"`
		Version         string `json:"version"`
	} `json:"app,omitempty"`

	Algolia struct {
		ApplicationID  string   `json:"application_id"`
		AdminAPIKey    string   `json:"admin_api_key"`
		IndexName      string   `json:"index_name"`
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"algolia,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Content struct {
			DSN string `json:"dsn"`
		} `json:"content,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`

	FieldsFilePath string `json:"fields_file"`
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
			HookTokenKey:    jsonCfg.App.HookTokenKey,
			HookTokenIssuer: jsonCfg.App.HookTokenIssuer,
			Version:         jsonCfg.App.Version,
		},
		Algolia: Algolia{
			ApplicationID:  jsonCfg.Algolia.ApplicationID,
			AdminAPIKey:    jsonCfg.Algolia.AdminAPIKey,
			IndexName:      jsonCfg.Algolia.IndexName,
			BaseURL:        jsonCfg.Algolia.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Algolia.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Content: Content{
				DSN: jsonCfg.Storage.Content.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		FieldsFilePath: jsonCfg.FieldsFilePath,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
