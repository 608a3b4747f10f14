package config

import (
	"github.com/dmitrijs2005/gophcontacts/internal/flagx"
	"github.com/dmitrijs2005/gophcontacts/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// durations distinguish a missing key from a zero value.
type JsonConfig struct {
	ServerEndpointAddr  string          `json:"server_endpoint_addr"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	DatabasePath        string          `json:"database_path"`
	ImagesDir           string          `json:"images_dir"`
	APIKey              string          `json:"api_key"`
	SeedDelay           *timex.Duration `json:"seed_delay"`
	LogLevel            string          `json:"log_level"`
}

// parseJson overlays Config with values loaded from the file named by
// -c/-config. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	jc, err := flagx.LoadJSON[JsonConfig](jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ImagesDir != "" {
		cfg.ImagesDir = jc.ImagesDir
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.SeedDelay != nil {
		cfg.SeedDelay = jc.SeedDelay.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
