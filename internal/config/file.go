package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML layout of ~/.timereport.yaml. Only the
// fields present in the file override the in-memory configuration.
type fileConfig struct {
	Service struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"service"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Report struct {
		NumDays int `yaml:"num_days"`
	} `yaml:"report"`
}

// LoadFromFile loads configuration from a YAML file. A missing file is
// not an error; the caller falls back to environment and flag values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ConfigError{Field: "file", Message: err.Error()}
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return &ConfigError{Field: "file", Message: "invalid YAML: " + err.Error()}
	}

	if fc.Service.URL != "" {
		c.Service.URL = fc.Service.URL
	}
	if fc.Service.Username != "" {
		c.Service.Username = fc.Service.Username
	}
	if fc.Service.Password != "" {
		c.Service.Password = fc.Service.Password
	}
	if fc.Database.Path != "" {
		c.Database.Path = fc.Database.Path
	}
	if fc.Report.NumDays > 0 {
		c.Report.NumDays = fc.Report.NumDays
	}

	return nil
}
