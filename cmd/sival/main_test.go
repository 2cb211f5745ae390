package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the root command and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestDerive(t *testing.T) {
	out, err := run(t, "derive", "testdata/woofer.json", "-o", "json")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "AW-200", got["model"])
	assert.InDelta(t, 0.4021, got["qes"], 1e-4)
	assert.InDelta(t, 0.3607, got["qts"], 1e-4)
}

func TestDerive_Role(t *testing.T) {
	_, err := run(t, "derive", "testdata/woofer.json", "--role", "woofer")
	require.NoError(t, err)

	_, err = run(t, "derive", "testdata/woofer.json", "--role", "tweeter")
	assert.Error(t, err)

	_, err = run(t, "derive", "testdata/missing.json")
	assert.Error(t, err)
}

func TestImpedance(t *testing.T) {
	out, err := run(t, "impedance", "testdata/woofer.json", "--volume", "20", "-f", "100", "-f", "1000", "-o", "json")
	require.NoError(t, err)

	var got responseOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Impedance", got.Kind)
	assert.Equal(t, "Ohm", got.Unit)
	require.Len(t, got.Points, 2)
	assert.InDelta(t, 18.060704297759465, got.Points[0].Value, 1e-9)
	assert.InDelta(t, 6.525633007200275, got.Points[1].Value, 1e-9)
	require.Len(t, got.Setup.Drivers, 1)
	assert.Equal(t, "woofer", got.Setup.Drivers[0].Role)
}

func TestSPL_YAMLGrid(t *testing.T) {
	out, err := run(t, "spl", "testdata/woofer.json", "--points", "16")
	require.NoError(t, err)

	var got responseOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Spl", got.Kind)
	assert.Len(t, got.Points, 16)
	assert.Equal(t, 10.0, got.Points[0].Frequency)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(filepath.Join("testdata", "woofer.json"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aw-200.json"), data, 0o644))
	cfgPath := filepath.Join(dir, "sival.yaml")
	cfg := "store:\n  driver_dir: " + dir + "\nsweep:\n  start: 20\n  stop: 200\n  points: 4\n  scale: lin\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := run(t, "--config", cfgPath, "impedance", "AW-200", "-o", "json")
	require.NoError(t, err)
	var got responseOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Points, 4)
	assert.Equal(t, 80.0, got.Points[1].Frequency)
}

func TestBadFlags(t *testing.T) {
	_, err := run(t, "impedance", "testdata/woofer.json", "--volume", "0")
	assert.Error(t, err)

	_, err = run(t, "impedance", "testdata/woofer.json", "--role", "bass")
	assert.Error(t, err)

	_, err = run(t, "derive", "testdata/woofer.json", "-o", "xml")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare", "testdata/woofer.json", "testdata/woofer.json", "-o", "json", "--path")
	require.NoError(t, err)

	var got compareOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Impedance", got.Kind)
	assert.Equal(t, 0.0, got.Result.Distance)
	assert.Len(t, got.Result.Path, 200)

	_, err = run(t, "compare", "testdata/woofer.json", "testdata/woofer.json", "--kind", "phase")
	assert.Error(t, err)
}
