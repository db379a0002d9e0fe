package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "helmsman.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize_Defaults(t *testing.T) {
	dir := writeConfig(t, "system:\n  environment: development\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 3, cfg.Policy.MaxIterations)
	assert.Equal(t, 5, cfg.Policy.MaxIterationsHardCap)
	assert.InDelta(t, 7.0, cfg.Policy.ApprovalThreshold, 0.001)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Second, cfg.Outbox.PollInterval)
	assert.Equal(t, 10, cfg.Outbox.BatchSize)
	assert.Equal(t, 168*time.Hour, cfg.Retention.OutboxRetention)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 1024, cfg.Bus.QueueSize)
	assert.Equal(t, "HELMSMAN_JWT_SECRET", cfg.Auth.JWTSecretEnv)
}

func TestInitialize_UserOverridesMergeOverDefaults(t *testing.T) {
	dir := writeConfig(t, `
system:
  environment: production
  dashboard_url: https://helmsman.example.com
policy:
  max_iterations: 4
  max_iterations_hard_cap: 5
queue:
  worker_count: 2
outbox:
  batch_size: 25
llm:
  provider: stub
bus:
  queue_size: 256
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://helmsman.example.com", cfg.DashboardURL)
	assert.Equal(t, 4, cfg.Policy.MaxIterations)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	// Unset queue fields keep defaults.
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentMissions)
	assert.Equal(t, 25, cfg.Outbox.BatchSize)
	assert.Equal(t, 5*time.Second, cfg.Outbox.PollInterval)
	assert.Equal(t, "stub", cfg.LLM.Provider)
	assert.Equal(t, 256, cfg.Bus.QueueSize)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("HELMSMAN_TEST_DASHBOARD", "https://dash.internal")

	dir := writeConfig(t, "system:\n  dashboard_url: \"{{.HELMSMAN_TEST_DASHBOARD}}\"\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "https://dash.internal", cfg.DashboardURL)
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "bad environment",
			yaml:    "system:\n  environment: staging\n",
			wantErr: "environment",
		},
		{
			name:    "hard cap below max iterations",
			yaml:    "policy:\n  max_iterations: 6\n  max_iterations_hard_cap: 5\n",
			wantErr: "max_iterations_hard_cap",
		},
		{
			name:    "threshold out of range",
			yaml:    "policy:\n  approval_threshold: 11\n",
			wantErr: "approval_threshold",
		},
		{
			name:    "unknown llm provider",
			yaml:    "llm:\n  provider: bedrock\n",
			wantErr: "provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Initialize(context.Background(), writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestExpandEnv_LiteralDollarsPreserved(t *testing.T) {
	in := []byte("pattern: \"^secret.*$\"\npassword: \"p@ss$word\"\n")
	assert.Equal(t, in, ExpandEnv(in))
}
