package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roundel-game/roundel/pkg/roundel"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, uint8(8), conf.RingCells)
	require.Equal(t, "info", conf.LogLevel)
	require.Equal(t, "roundel.log", conf.LogFile)
	require.False(t, conf.NoColor)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := "ring-cells: 12\nlog-level: debug\nno-color: true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint8(12), conf.RingCells)
	require.Equal(t, "debug", conf.LogLevel)
	require.True(t, conf.NoColor)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("ROUNDEL_RING_CELLS", "10")
	t.Setenv("ROUNDEL_LOG_LEVEL", "warn")

	conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, uint8(10), conf.RingCells)
	require.Equal(t, "warn", conf.LogLevel)
}

func TestLoadRejectsBadRingSizes(t *testing.T) {
	cases := []struct {
		cells string
		want  error
	}{
		{"0", roundel.ErrNoCells},
		{"21", roundel.ErrTooManyCells},
		{"7", ErrOddRingCells},
	}

	for _, tc := range cases {
		t.Run(tc.cells, func(t *testing.T) {
			t.Setenv("ROUNDEL_RING_CELLS", tc.cells)
			_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
			require.ErrorIs(t, err, tc.want)
		})
	}
}
