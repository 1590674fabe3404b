package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`
	Catalog struct {
		Dir         string `yaml:"dir"`          // directory of YAML catalogs; empty = embedded defaults
		EnrichRanks bool   `yaml:"enrich_ranks"` // scrape live port traffic ranks at startup
	} `yaml:"catalog"`
	Cascade struct {
		DefaultDisruption float64 `yaml:"default_disruption"`
	} `yaml:"cascade"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Logging struct {
		Level        string `yaml:"level"`
		EnableColors bool   `yaml:"enable_colors"`
	} `yaml:"logging"`
}

var Global Config

// Load reads the config.yaml file.
func Load() error {
	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, &Global); err != nil {
		return err
	}
	if Global.Cascade.DefaultDisruption == 0 {
		Global.Cascade.DefaultDisruption = 1.0
	}
	return nil
}
