package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mvberkel/tripdiary/internal/flagx"
)

// duration accepts either a string such as "30m" or integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return json.Unmarshal(b, &d.Duration)
	}
}

// JsonConfig is the intermediate DTO used only for reading JSON config
// files; its values are copied into the runtime Config.
type JsonConfig struct {
	Addr                        string   `json:"addr"`
	DataDir                     string   `json:"data_dir"`
	SecretKey                   string   `json:"secret_key"`
	AccessTokenValidityDuration duration `json:"access_token_validity_duration"`
}

// parseJson loads configuration from the file given via -c/-config.
// If no flag is set, nothing is loaded. Unreadable or invalid files panic:
// a half-applied config is worse than a refusal to start.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.DataDir != "" {
		config.DataDir = c.DataDir
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
}
