package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-simulator/internal/schedulers"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &SchedulerConfig{
		Port:          9095,
		DefaultPolicy: schedulers.PolicyFirstComeFirstServe,
		ReorderOnFCFS: true,
	}, cfg)
	assert.Equal(t, schedulers.DefaultOptions(), cfg.SimulatorOptions())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `port: 8081
scheduler:
  default_policy: sjf
  fcfs:
    reorder_registry: false
tracing:
  enabled: true
  output_file: spans.json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, schedulers.PolicyShortestJobFirst, cfg.DefaultPolicy)
	assert.False(t, cfg.ReorderOnFCFS)
	assert.Equal(t, TracingConfig{Enabled: true, OutputFile: "spans.json"}, cfg.Tracing)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SCHEDSIM_PORT", "7070")
	t.Setenv("SCHEDSIM_SCHEDULER_DEFAULT_POLICY", "sjf-arrival")
	cfg, err := Load(writeConfig(t, "port: 8081\n"))
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, schedulers.PolicyShortestJobFirstArrivalAware, cfg.DefaultPolicy)
}

func TestLoad_Invalid(t *testing.T) {
	var testCases = []struct {
		description string
		content     string
	}{
		{description: "unknown policy", content: "scheduler:\n  default_policy: rr\n"},
		{description: "bad port", content: "port: -1\n"},
	}
	for _, testCase := range testCases {
		_, err := Load(writeConfig(t, testCase.content))
		assert.Error(t, err, testCase.description)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
