package config_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/report"
	"github.com/katalvlaran/lvroute/store"
)

// isolate keeps the developer's own ~/.lvroute.yaml out of the tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	c, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, store.DefaultLimits(), c.Limits)
	assert.Empty(t, c.Graph)
	s, err := c.StrategyValue()
	require.NoError(t, err)
	assert.Equal(t, dijkstra.StrategyLinear, s)
	f, err := c.FormatValue()
	require.NoError(t, err)
	assert.Equal(t, report.FormatText, f)
}

func TestLoad_FileEnvFlags(t *testing.T) {
	isolate(t)
	path := writeFile(t, `
strategy: heap
format: yaml
limits:
  max_nodes: 10
  max_neighbors: 3
`)
	t.Setenv("LVROUTE_LIMITS_MAX_NEIGHBORS", "4")
	t.Setenv("LVROUTE_LOG_LEVEL", "debug")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("strategy", "linear", "")
	fs.Int("max-nodes", 0, "")
	require.NoError(t, fs.Parse([]string{"--strategy=ordered"}))

	v := config.NewViper()
	require.NoError(t, config.BindFlags(v, fs))
	c, err := config.Load(v, path)
	require.NoError(t, err)

	assert.Equal(t, "ordered", c.Strategy, "a set flag wins over the file")
	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, 10, c.Limits.MaxNodes, "an unset flag does not shadow the file")
	assert.Equal(t, 4, c.Limits.MaxNeighbors, "env wins over the file")
	assert.Equal(t, store.DefaultIDLength, c.Limits.IDLength)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)
	cases := map[string]string{
		"strategy":   "strategy: fastest\n",
		"format":     "format: csv\n",
		"log level":  "log_level: loud\n",
		"log format": "log_format: xml\n",
		"limits":     "limits:\n  max_nodes: -1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(config.NewViper(), writeFile(t, body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load(config.NewViper(), writeFile(t, "limits:\n  max_weight: 9223372036854775807\n"))
	assert.ErrorIs(t, err, store.ErrBadLimits)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := config.Load(config.NewViper(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	c := config.Config{LogLevel: "info", LogFormat: "json"}
	logger, err := c.NewLogger(&buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", "nodes", 7)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "lvroute", rec["component"])
	assert.Equal(t, 7.0, rec["nodes"])

	_, err = config.Config{LogLevel: "info", LogFormat: "xml"}.NewLogger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestOverrides(t *testing.T) {
	isolate(t)
	path := writeFile(t, "limits:\n  max_weight: 500\n")
	t.Setenv("LVROUTE_LIMITS_ID_LENGTH", "4")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("max-nodes", store.DefaultMaxNodes, "")
	fs.Int("max-neighbors", store.DefaultMaxNeighbors, "")
	require.NoError(t, fs.Parse([]string{"--max-nodes=3"}))

	v := config.NewViper()
	require.NoError(t, config.BindFlags(v, fs))
	_, err := config.Load(v, path)
	require.NoError(t, err)

	assert.Equal(t, store.Limits{IDLength: 4, MaxNodes: 3, MaxWeight: 500}, config.Overrides(v, fs),
		"defaults and unchanged flags are not overrides")
}
