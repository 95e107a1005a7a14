package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xhd2015/searchfield/internal/config"
	"github.com/xhd2015/searchfield/models"
)

func LoadConfig() (*models.Config, error) {
	configFile, err := config.GetConfigJSONFile()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(configFile)
}

// LoadConfigFile returns nil without error when the file is missing or empty.
func LoadConfigFile(configFile string) (*models.Config, error) {
	configData, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	if len(configData) == 0 {
		return nil, nil
	}

	var config models.Config
	err = json.Unmarshal(configData, &config)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}

	return &config, nil
}

func SaveConfig(conf *models.Config) error {
	configFile, err := config.GetConfigJSONFile()
	if err != nil {
		return err
	}
	return SaveConfigFile(configFile, conf)
}

func SaveConfigFile(configFile string, conf *models.Config) error {
	data, err := json.MarshalIndent(conf, "", "  ")
	if err != nil {
		return err
	}
	err = os.MkdirAll(filepath.Dir(configFile), 0755)
	if err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return os.WriteFile(configFile, data, 0644)
}

// LoadItems reads one item per line, skipping blank lines.
func LoadItems(file string) ([]string, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	var items []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	return items, nil
}
