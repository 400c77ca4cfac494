package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigShowReadsFile(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, env.configPath)
	requireContains(t, out, "minds_dir")
	requireContains(t, out, env.cfg.Paths.MindsDir)
}

func TestConfigInitWritesSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "confmind", "config.toml")

	out, _, err := runCLI(t, []string{"config", "init"}, path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample config: %v", err)
	}
	requireContains(t, string(data), "[paths]")
	requireContains(t, string(data), "minds_dir")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"config", "init"}, env.configPath)
	if err == nil {
		t.Fatal("expected error when config already exists")
	}
	requireContains(t, err.Error(), "already exists")

	if _, _, err := runCLI(t, []string{"config", "init", "--force"}, env.configPath); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
}
