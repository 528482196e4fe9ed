package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Catalog.DataFile)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfig_FileThenEnvOverride(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := "catalog:\n  data_file: courses.csv\n  base_dir: /data\nlogging:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))
	t.Setenv("PLANNER_BASE_DIR", "/override")

	// WHEN
	cfg, err := LoadConfig(path)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "courses.csv", cfg.Catalog.DataFile)
	assert.Equal(t, "/override", cfg.Catalog.BaseDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	t.Setenv("PLANNER_CONFIG", "/etc/planner.yaml")
	assert.Equal(t, "/etc/planner.yaml", ResolvePath())
}

func TestApplyEnvOverrides_Nested(t *testing.T) {
	var s struct {
		Inner struct {
			Name string `env:"PLANNER_TEST_NAME"`
			Keep string `env:"PLANNER_TEST_UNSET"`
		}
		Untagged string
	}
	s.Inner.Keep = "default"
	t.Setenv("PLANNER_TEST_NAME", "from-env")

	require.NoError(t, applyEnvOverrides(&s))
	assert.Equal(t, "from-env", s.Inner.Name)
	assert.Equal(t, "default", s.Inner.Keep)
}

func TestApplyEnvOverrides_RejectsNonString(t *testing.T) {
	var s struct {
		N int `env:"PLANNER_TEST_N"`
	}
	assert.Error(t, applyEnvOverrides(&s))
	assert.Error(t, applyEnvOverrides(s))
}
