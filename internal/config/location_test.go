package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestGetConfigPathEnvOverride(t *testing.T) {
	t.Setenv("SLIP39C_CONFIG", "/custom/path/config")
	path, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != "/custom/path/config" {
		t.Errorf("path = %q, want env override", path)
	}
}

func TestGetConfigPathDefault(t *testing.T) {
	t.Setenv("SLIP39C_CONFIG", "")
	// An empty env var falls through to the home-directory default.
	path, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, filepath.Join(".slip39c", "config")) {
		t.Errorf("path = %q, want ~/.slip39c/config", path)
	}
}
