package config

import (
	"encoding/json"
	"os"
)

type AppConfig struct {
	Name  string `json:"name"`
	Mode  string `json:"mode"`
	Debug bool   `json:"debug"`
}

type CorsConfig struct {
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
	AllowedMethods []string `json:"allowed_methods,omitempty"`
	AllowedHeaders []string `json:"allowed_headers,omitempty"`
}

type ServerConfig struct {
	Host                string     `json:"host"`
	Port                int        `json:"port"`
	ReadTimeoutSeconds  int        `json:"read_timeout_seconds"`
	WriteTimeoutSeconds int        `json:"write_timeout_seconds"`
	Cors                CorsConfig `json:"cors,omitempty"`
}

type DatabaseConfig struct {
	Type     string `json:"type"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	SSLMode  string `json:"sslmode"`
}

type Config struct {
	App      AppConfig      `json:"app"`
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
}

// Load reads a JSON file into v.
func Load(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

var ConfigVar Config

// LoadConfig reads the JSON config file at path into ConfigVar.
func LoadConfig(path string) error {
	return Load(path, &ConfigVar)
}

func MustLoadConfig(path string) {
	if err := LoadConfig(path); err != nil {
		panic(err)
	}
}
