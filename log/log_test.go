package log

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInfoAndError(t *testing.T) {
	var info, errs bytes.Buffer
	SetInfoOutput(&info)
	SetErrorOutput(&errs)

	ctx := context.Background()
	Info(ctx, "search committed", "query", "cats")
	Errorf(ctx, "copy failed: %s", "no clipboard")

	if !strings.Contains(info.String(), "query=cats") {
		t.Errorf("Expected query attribute in info log, got %q", info.String())
	}
	if !strings.Contains(errs.String(), "copy failed: no clipboard") {
		t.Errorf("Expected message in error log, got %q", errs.String())
	}
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	if err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Infof(context.Background(), "hello %d", 1)

	content, err := os.ReadFile(filepath.Join(dir, "info.log"))
	if err != nil {
		t.Fatalf("read info.log: %v", err)
	}
	if !strings.Contains(string(content), "hello 1") {
		t.Errorf("Expected message in info.log, got %q", content)
	}
	if _, err := os.Stat(filepath.Join(dir, "error.log")); err != nil {
		t.Errorf("Expected error.log to exist: %v", err)
	}
}
