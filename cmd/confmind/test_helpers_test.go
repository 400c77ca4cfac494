package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"confmind/internal/config"
	"confmind/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	configPath := filepath.Join(filepath.Dir(cfg.Paths.MindsDir), "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nminds_dir = %q\nlog_dir = %q\nsocket_path = %q\n\n[logging]\nformat = %q\nlevel = %q\n",
		cfg.Paths.MindsDir,
		cfg.Paths.LogDir,
		cfg.Paths.SocketPath,
		cfg.Logging.Format,
		cfg.Logging.Level,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func writeTranscriptFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "transcript.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}
	return path
}

const cliTranscript = `Alice: Our kubernetes cluster runs every deployment through the pipeline. The infrastructure team scaled the cluster twice this quarter.
Bob: However, I would argue the cluster is not the bottleneck. On the other hand, our database layer needs attention before we scale further.
Alice: That said, the deployment pipeline still benefits from cluster automation. Kubernetes makes our infrastructure reproducible.
Bob: But actually the security review found gaps in the cluster configuration. Disagree with shipping before we fix authentication.
`
