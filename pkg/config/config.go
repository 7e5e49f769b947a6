package config

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

type Config struct {
	App       AppConfig                 `json:"app"`
	Providers map[string]ProviderConfig `json:"providers"`
	Gateways  map[string]GatewayConfig  `json:"gateways"`
	Executor  ExecutorConfig            `json:"executor"`
	Memory    MemoryConfig              `json:"memory"`
}

type AppConfig struct {
	Name     string `json:"name"`
	ImageDir string `json:"image_dir"`
	LogDir   string `json:"log_dir"`
}

type ProviderConfig struct {
	APIKey  string `json:"api_key"`
	Model   string `json:"model"`
	BaseURL string `json:"base_url,omitempty"`
	Enabled bool   `json:"enabled"`
}

type GatewayConfig struct {
	Token   string `json:"token"`
	Enabled bool   `json:"enabled"`
}

type ExecutorConfig struct {
	StepDelayMs int `json:"step_delay_ms"`
}

type MemoryConfig struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

func LoadConfig(path string) *Config {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open config file: %v", err)
	}
	defer file.Close()

	var cfg Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("failed to decode config file: %v", err)
	}

	cfg.ApplyDefaults()
	return &cfg
}

// ApplyDefaults fills in the settings the config file may omit.
func (c *Config) ApplyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "edith"
	}
	if c.App.ImageDir == "" {
		c.App.ImageDir = "images"
	}
	if c.App.LogDir == "" {
		c.App.LogDir = "logs"
	}
	if c.Executor.StepDelayMs == 0 {
		c.Executor.StepDelayMs = 1000
	}
	if c.Memory.Path == "" {
		c.Memory.Path = "edith.db"
	}
}

// StepDelay returns the executor's per-step pause as a duration.
func (c *Config) StepDelay() time.Duration {
	return time.Duration(c.Executor.StepDelayMs) * time.Millisecond
}

// GetDefaultProvider returns the first enabled provider
func (c *Config) GetDefaultProvider() (string, ProviderConfig) {
	for name, p := range c.Providers {
		if p.Enabled {
			return name, p
		}
	}
	return "", ProviderConfig{}
}

// GetTelegramConfig returns telegram config if enabled
func (c *Config) GetTelegramConfig() (GatewayConfig, bool) {
	tg, ok := c.Gateways["telegram"]
	if ok && tg.Enabled {
		return tg, true
	}
	return GatewayConfig{}, false
}
