package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mvberkel/tripdiary/internal/flagx"
)

// duration accepts either a string such as "10s" or integer nanoseconds.
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
	ServerEndpointAddr  string   `json:"server_endpoint_addr"`
	DataDir             string   `json:"data_dir"`
	RequestTimeout      duration `json:"request_timeout"`
	OnlineCheckInterval duration `json:"online_check_interval"`
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

	if c.ServerEndpointAddr != "" {
		config.ServerEndpointAddr = c.ServerEndpointAddr
	}
	if c.DataDir != "" {
		config.DataDir = c.DataDir
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.OnlineCheckInterval.Duration != 0 {
		config.OnlineCheckInterval = c.OnlineCheckInterval.Duration
	}
}
