// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	Knack struct {
		BaseURL        string   `json:"base_url"`
		AppID          string   `json:"app_id"`
		APIKey         string   `json:"api_key"`
		ObjectKey      string   `json:"object_key"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     int      `json:"retry_count"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
	} `json:"knack,omitempty"`

	Fields Fields `json:"fields,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		AllowedOrigins []string `json:"allowed_origins"`
		AppOrigins     []string `json:"app_origins"`
	} `json:"server,omitempty"`

	Relay struct {
		SaveSettleDelay      Duration `json:"save_settle_delay"`
		AddToBankSettleDelay Duration `json:"add_to_bank_settle_delay"`
		SessionIdleTTL       Duration `json:"session_idle_ttl"`
		JanitorInterval      Duration `json:"janitor_interval"`
	} `json:"relay,omitempty"`

	LogLevel string `json:"log_level"`
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
		Knack: Knack{
			BaseURL:        jsonCfg.Knack.BaseURL,
			AppID:          jsonCfg.Knack.AppID,
			APIKey:         jsonCfg.Knack.APIKey,
			ObjectKey:      jsonCfg.Knack.ObjectKey,
			RequestTimeout: time.Duration(jsonCfg.Knack.RequestTimeout),
			RetryCount:     jsonCfg.Knack.RetryCount,
			RetryBaseDelay: time.Duration(jsonCfg.Knack.RetryBaseDelay),
		},
		Fields: jsonCfg.Fields,
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
			AppOrigins:     jsonCfg.Server.AppOrigins,
		},
		Relay: Relay{
			SaveSettleDelay:      time.Duration(jsonCfg.Relay.SaveSettleDelay),
			AddToBankSettleDelay: time.Duration(jsonCfg.Relay.AddToBankSettleDelay),
			SessionIdleTTL:       time.Duration(jsonCfg.Relay.SessionIdleTTL),
			JanitorInterval:      time.Duration(jsonCfg.Relay.JanitorInterval),
		},
		LogLevel: jsonCfg.LogLevel,
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

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
