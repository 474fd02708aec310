package defs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-eye-demo/internal/eye"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedPresets(t *testing.T) {
	t.Parallel()

	presets, err := LoadPresets("")
	require.NoError(t, err)
	require.NotEmpty(t, presets)

	p, ok := Find(presets, "password")
	require.True(t, ok)
	assert.Equal(t, eye.Config{
		Tracking: true,
		Delay:    500 * time.Millisecond,
		Smooth:   true,
		Speed:    1,
		Size:     24,
	}, p.EyeConfig())

	_, ok = Find(presets, "missing")
	assert.False(t, ok)
}

func TestLoadPresetsFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "presets.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"a","name":"A","tracking":true,"delay_ms":0,"speed":50,"size":30}]`), 0o644))

	presets, err := LoadPresets(path)
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, eye.MaxSpeed, presets[0].EyeConfig().Speed)
}

func TestLoadPresetsErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadPresets(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read presets file")

	tests := map[string]string{
		"bad json":  `{`,
		"empty":     `[]`,
		"no id":     `[{"size":24}]`,
		"duplicate": `[{"id":"a","size":24},{"id":"a","size":24}]`,
		"delay":     `[{"id":"a","size":24,"delay_ms":-1}]`,
		"size":      `[{"id":"a","size":0}]`,
	}
	for name, data := range tests {
		_, err := ParsePresets([]byte(data))
		assert.Error(t, err, name)
	}
}
