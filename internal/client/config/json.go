package config

import (
	"encoding/json"
	"os"

	"taskhub/internal/flagx"
)

// JsonConfig is the JSON-file shape of the client configuration.
type JsonConfig struct {
	ServerURL   string `json:"server_url"`
	SessionPath string `json:"session_path"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c/-config flags; without them no
// JSON file is loaded. An unreadable or invalid file panics.
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

	config.ServerURL = c.ServerURL
	config.SessionPath = c.SessionPath
}
