package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegen/maze"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "mazegen.yaml", `
maze:
  width: 8
  height: 6
  depth: 3
  floored: true
  seed: 42
  tracker: partition
  workers: 2
logging:
  level: DEBUG
  console_enabled: true
  console_format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, maze.Dims3D{X: 8, Y: 6, Z: 3}, cfg.Maze.Size())
	assert.True(t, cfg.Maze.Floored)
	require.NotNil(t, cfg.Maze.Seed)
	assert.EqualValues(t, 42, *cfg.Maze.Seed)
	assert.Equal(t, TrackerPartition, cfg.Maze.Tracker)
	assert.Equal(t, 2, cfg.Maze.Workers)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.ConsoleFormat)
	// Untouched keys keep their defaults.
	assert.Equal(t, 10, cfg.Logging.FileMaxSizeMB)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "bad.yaml", "maze: [unterminated")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"MAZEGEN_WIDTH":     "4",
		"MAZEGEN_DEPTH":     "2",
		"MAZEGEN_FLOORED":   "true",
		"MAZEGEN_SEED":      "-7",
		"MAZEGEN_TRACKER":   "partition",
		"MAZEGEN_LOG_LEVEL": "warn",
		"MAZEGEN_LOG_FILE":  "/tmp/m.log",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, maze.Dims3D{X: 4, Y: 10, Z: 2}, cfg.Maze.Size())
	assert.True(t, cfg.Maze.Floored)
	require.NotNil(t, cfg.Maze.Seed)
	assert.EqualValues(t, -7, *cfg.Maze.Seed)
	assert.Equal(t, TrackerPartition, cfg.Maze.Tracker)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Logging.FileEnabled)
	assert.Equal(t, "/tmp/m.log", cfg.Logging.FilePath)

	env = map[string]string{"MAZEGEN_HEIGHT": "tall"}
	assert.ErrorIs(t, cfg.ApplyEnv(lookup), ErrInvalidConfig)
	env = map[string]string{"MAZEGEN_FLOORED": "maybe"}
	assert.ErrorIs(t, cfg.ApplyEnv(lookup), ErrInvalidConfig)
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(""))
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	path := writeFile(t, ".env", "MAZEGEN_TEST_DOTENV=11\n")
	t.Setenv("MAZEGEN_TEST_DOTENV", "")
	os.Unsetenv("MAZEGEN_TEST_DOTENV")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "11", os.Getenv("MAZEGEN_TEST_DOTENV"))
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"ZeroWidth":  func(c *Config) { c.Maze.Width = 0 },
		"ZeroHeight": func(c *Config) { c.Maze.Height = 0 },
		"ZeroDepth":  func(c *Config) { c.Maze.Depth = 0 },
		"BadTracker": func(c *Config) { c.Maze.Tracker = "quadtree" },
		"NegWorkers": func(c *Config) { c.Maze.Workers = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
