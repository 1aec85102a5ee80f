package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWebConfig(t *testing.T) {
	t.Run("defaults when no file is given", func(t *testing.T) {
		cfg, err := LoadWebConfig("")

		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.Equal(t, "charts", cfg.ChartsDir)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadWebConfig(filepath.Join(t.TempDir(), "nope.yaml"))

		require.NoError(t, err)
		assert.Equal(t, DefaultWebConfig(), cfg)
	})

	t.Run("yaml values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "web.yaml")
		require.NoError(t, os.WriteFile(path, []byte("listen_addr: :9000\ncharts_dir: /tmp/charts\n"), 0644))

		cfg, err := LoadWebConfig(path)

		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.ListenAddr)
		assert.Equal(t, "/tmp/charts", cfg.ChartsDir)
		assert.Equal(t, "barwatch", cfg.PageTitle)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Setenv("BARWATCH_LISTEN_ADDR", ":7000")

		cfg, err := LoadWebConfig("")

		require.NoError(t, err)
		assert.Equal(t, ":7000", cfg.ListenAddr)
	})

	t.Run("bad yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "web.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

		_, err := LoadWebConfig(path)

		assert.Error(t, err)
	})
}
