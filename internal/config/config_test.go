package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "data/university_data.csv", cfg.Paths.DataFile)
	assert.Equal(t, "output", cfg.Paths.OutputDir)
	assert.Equal(t, 5, cfg.Analysis.TopPrograms)
}

func TestLoad(t *testing.T) {
	t.Run("file overlays defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
logging:
  level: debug
paths:
  data_file: /srv/data/students.csv
analysis:
  top_programs: 3
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "/srv/data/students.csv", cfg.Paths.DataFile)
		assert.Equal(t, 3, cfg.Analysis.TopPrograms)
		// Fields the file omits keep their defaults.
		assert.Equal(t, "text", cfg.Logging.Format)
		assert.Equal(t, "output", cfg.Paths.OutputDir)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("UNISTATS_LOGGING_LEVEL", "warn")
		t.Setenv("UNISTATS_ANALYSIS_TOP_PROGRAMS", "8")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, 8, cfg.Analysis.TopPrograms)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid level fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})

	t.Run("invalid top_programs fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("analysis:\n  top_programs: -1\n"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestOutputPath(t *testing.T) {
	cfg := Default()
	cfg.Paths.OutputDir = filepath.Join("out", "run1")

	assert.Equal(t, filepath.Join("out", "run1", "chart.png"), cfg.OutputPath("chart.png"))
}
