package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadScenario_AllFields(t *testing.T) {
	path := writeScenarioFile(t, `
machines: 5
part_mean: 8.0
part_sigma: 1.5
mttf: 120.0
repair_duration: 25.0
other_job_duration: 40.0
seed: 7
log_capacity: 50
horizon: 1000.0
step: 0.5
`)

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	cfg := sc.Config()
	assert.Equal(t, 5, cfg.NumMachines)
	assert.Equal(t, 8.0, cfg.PartMean)
	assert.Equal(t, 1.5, cfg.PartSigma)
	assert.Equal(t, 120.0, cfg.MeanTimeToFailure)
	assert.Equal(t, 25.0, cfg.RepairDuration)
	assert.Equal(t, 40.0, cfg.OtherJobDuration)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 50, cfg.LogCapacity)
	assert.Equal(t, 1000.0, sc.Horizon)
	assert.Equal(t, 0.5, sc.Step)
}

func TestLoadScenario_PartialFileKeepsDefaults(t *testing.T) {
	path := writeScenarioFile(t, "machines: 3\nseed: 99\n")

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	def := DefaultConfig()
	cfg := sc.Config()
	assert.Equal(t, 3, cfg.NumMachines)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, def.PartMean, cfg.PartMean)
	assert.Equal(t, def.MeanTimeToFailure, cfg.MeanTimeToFailure)
	assert.Equal(t, def.RepairDuration, cfg.RepairDuration)
}

func TestLoadScenario_InvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"zero machines", "machines: 0\n"},
		{"negative mttf", "mttf: -5\n"},
		{"zero repair duration", "repair_duration: 0\n"},
		{"negative horizon", "horizon: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenarioFile(t, tt.contents)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenarioFile(t, "machines: [not a number\n")
	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestScenario_RoundTripsIntoSimulator(t *testing.T) {
	path := writeScenarioFile(t, "machines: 2\npart_sigma: 0.0\n")
	sc, err := LoadScenario(path)
	require.NoError(t, err)

	s, err := NewSimulator(sc.Config())
	require.NoError(t, err)
	assert.Len(t, s.Machines, 2)
}
