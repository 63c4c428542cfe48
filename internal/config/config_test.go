package config_test

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/core"
	"github.com/katalvlaran/lvlds/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Clusters)
	assert.Equal(t, core.RenderNodes, cfg.RenderMode())
	assert.Equal(t, core.StorageDense, cfg.StorageKind())
	assert.Equal(t, log.InfoLevel, cfg.Level())
	assert.False(t, cfg.Directed)
	assert.Len(t, cfg.GraphOptions(), 1)
}

func TestLoad_Precedence(t *testing.T) {
	yml := writeFile(t, "lvlds.yaml", "clusters: 3\nmode: all-edges\nstorage: list\nlog_level: warn\n")
	env := writeFile(t, ".env", "LVLDS_CLUSTERS=5\nLVLDS_DIRECTED=true\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("clusters", 4, "")
	fs.String("mode", "nodes", "")
	require.NoError(t, fs.Parse([]string{"--mode", "out-edges"}))

	cfg, err := config.Load(config.Sources{
		ConfigFile: yml,
		EnvFile:    env,
		LookupEnv:  envMap(map[string]string{"LVLDS_LOG_LEVEL": "debug"}),
		Flags:      fs,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Clusters, "env file beats yaml; unchanged flag does not apply")
	assert.Equal(t, core.RenderOutEdges, cfg.RenderMode(), "changed flag beats yaml")
	assert.Equal(t, core.StorageList, cfg.StorageKind())
	assert.True(t, cfg.Directed)
	assert.Equal(t, log.DebugLevel, cfg.Level(), "process env applies")
}

func TestLoad_ProcessEnvBeatsEnvFile(t *testing.T) {
	env := writeFile(t, ".env", "LVLDS_CLUSTERS=5\n")
	cfg, err := config.Load(config.Sources{
		EnvFile:   env,
		LookupEnv: envMap(map[string]string{"LVLDS_CLUSTERS": "7"}),
	})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Clusters)
}

func TestLoad_EmptyYAML(t *testing.T) {
	cfg, err := config.Load(config.Sources{ConfigFile: writeFile(t, "empty.yaml", ""), LookupEnv: noEnv})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(config.Sources{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml"), LookupEnv: noEnv})
	assert.Error(t, err)

	_, err = config.Load(config.Sources{ConfigFile: writeFile(t, "bad.yaml", "colour: red\n"), LookupEnv: noEnv})
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(config.Sources{EnvFile: filepath.Join(t.TempDir(), "missing.env"), LookupEnv: noEnv})
	assert.Error(t, err)

	_, err = config.Load(config.Sources{LookupEnv: envMap(map[string]string{"LVLDS_CLUSTERS": "many"})})
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(config.Sources{LookupEnv: envMap(map[string]string{"LVLDS_DIRECTED": "maybe"})})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"clusters": func(c *config.Config) { c.Clusters = 0 },
		"mode":     func(c *config.Config) { c.Mode = "edges" },
		"storage":  func(c *config.Config) { c.Storage = "tree" },
		"level":    func(c *config.Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestApplyFlags_AllFields(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.IntP("clusters", "k", 4, "")
	fs.String("mode", "nodes", "")
	fs.Bool("directed", false, "")
	fs.String("storage", "dense", "")
	require.NoError(t, fs.Parse([]string{"-k", "2", "--mode", "in-edges", "--directed", "--storage", "list"}))

	cfg := config.Default()
	require.NoError(t, cfg.ApplyFlags(fs))
	assert.Equal(t, config.Config{Clusters: 2, Mode: "in-edges", Directed: true, Storage: "list", LogLevel: "info"}, cfg)
	assert.Len(t, cfg.GraphOptions(), 2)
}
