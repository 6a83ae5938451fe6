// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Vault struct {
		Path        string `json:"path"`
		Description string `json:"description"`
	} `json:"vault,omitempty"`

	Crypto struct {
		KDFIterations int `json:"kdf_iterations"`
	} `json:"crypto,omitempty"`

	Logging struct {
		Level string `json:"level"`
	} `json:"logging,omitempty"`

	TUI struct {
		ClipboardTimeout Duration `json:"clipboard_timeout"`
	} `json:"tui,omitempty"`
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
		Vault: Vault{
			Path:        jsonCfg.Vault.Path,
			Description: jsonCfg.Vault.Description,
		},
		Crypto: Crypto{
			KDFIterations: jsonCfg.Crypto.KDFIterations,
		},
		Logging: Logging{
			Level: jsonCfg.Logging.Level,
		},
		TUI: TUI{
			ClipboardTimeout: time.Duration(jsonCfg.TUI.ClipboardTimeout),
		},
		JSONFilePath: "",
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
