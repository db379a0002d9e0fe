package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig([]byte(`
services:
  - name: control-plane
    base_url: http://localhost:8081
routes:
  - path_prefix: /missions
    target_service: control-plane
`))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.ProbeInterval)
	assert.Equal(t, 5*time.Second, cfg.ProbeTimeout)

	svc := cfg.Services[0]
	assert.Equal(t, "/health", svc.HealthPath)
	assert.Equal(t, 30*time.Second, svc.Timeout)
	assert.Equal(t, 2, svc.RetryCount)
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := parseConfig([]byte(`
listen_addr: ":9000"
probe_interval: 10s
default_service: control-plane
services:
  - name: control-plane
    base_url: http://localhost:8081
    health_path: /healthz
    timeout: 5s
    retry_count: 4
`))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.ProbeInterval)
	assert.Equal(t, "control-plane", cfg.DefaultService)

	svc := cfg.Services[0]
	assert.Equal(t, "/healthz", svc.HealthPath)
	assert.Equal(t, 5*time.Second, svc.Timeout)
	assert.Equal(t, 4, svc.RetryCount)
}

func TestParseConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no services",
			yaml: `listen_addr: ":8080"`,
		},
		{
			name: "duplicate service name",
			yaml: `
services:
  - name: a
    base_url: http://localhost:1
  - name: a
    base_url: http://localhost:2
`,
		},
		{
			name: "invalid base_url",
			yaml: `
services:
  - name: a
    base_url: "not a url"
`,
		},
		{
			name: "route targets unknown service",
			yaml: `
services:
  - name: a
    base_url: http://localhost:1
routes:
  - path_prefix: /x
    target_service: missing
`,
		},
		{
			name: "unknown default service",
			yaml: `
default_service: missing
services:
  - name: a
    base_url: http://localhost:1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
