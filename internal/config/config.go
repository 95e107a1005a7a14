package config

import (
	"os"
	"path/filepath"
)

const appName = "searchfield"

// GetConfigDir is <UserConfigDir>/searchfield; config.json and logs/ live there.
func GetConfigDir() (string, error) {
	return configPath()
}

func GetConfigJSONFile() (string, error) {
	return configPath("config.json")
}

func GetLogDir() (string, error) {
	return configPath("logs")
}

func configPath(elem ...string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{dir, appName}, elem...)...), nil
}
