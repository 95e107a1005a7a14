package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	base, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(base, "searchfield") {
		t.Errorf("Unexpected config dir %q", dir)
	}

	file, err := GetConfigJSONFile()
	if err != nil {
		t.Fatal(err)
	}
	if file != filepath.Join(dir, "config.json") {
		t.Errorf("Unexpected config file %q", file)
	}

	logDir, err := GetLogDir()
	if err != nil {
		t.Fatal(err)
	}
	if logDir != filepath.Join(dir, "logs") {
		t.Errorf("Unexpected log dir %q", logDir)
	}
}
