package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mipi54/flext/errors"
	"github.com/mipi54/flext/host"
)

const sampleDoc = `
version: "1.0.0"
classes:
  - name: gain
    distribute: true
    inlets:
      - kind: any
        description: messages and gain value
      - kind: float
        description: gain multiplier
    outlets:
      - kind: float
        description: scaled value
      - kind: bang
        description: clip indicator
  - name: counter
    inlets:
      - kind: bang
    outlets:
      - kind: int
`

func TestLoad(t *testing.T) {
	cfg, err := Load([]byte(sampleDoc))
	require.NoError(t, err)
	require.Len(t, cfg.Classes, 2)

	gain := cfg.Class("gain")
	require.NotNil(t, gain)
	assert.True(t, gain.Distribute)
	require.Len(t, gain.Inlets, 2)
	require.Len(t, gain.Outlets, 2)
	assert.Equal(t, "gain multiplier", gain.Inlets[1].Description)

	assert.Nil(t, cfg.Class("unknown"))
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	_, err := Load([]byte("classes:\n  - name: [broken"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestValidateRejectsUnnamedClass(t *testing.T) {
	_, err := Load([]byte("classes:\n  - inlets:\n      - kind: any\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingConfig)
}

func TestValidateRejectsDuplicateClass(t *testing.T) {
	doc := "classes:\n  - name: gain\n  - name: gain\n"
	_, err := Load([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateClass)
}

func TestValidateRejectsUnknownKind(t *testing.T) {
	doc := "classes:\n  - name: gain\n    inlets:\n      - kind: matrix\n"
	_, err := Load([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidXlet)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.Version)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestResolveKind(t *testing.T) {
	k, ok := ResolveKind("bang")
	require.True(t, ok)
	assert.Equal(t, host.KindSymbol, k)

	k, ok = ResolveKind("signal")
	require.True(t, ok)
	assert.Equal(t, host.KindSignal, k)

	_, ok = ResolveKind("matrix")
	assert.False(t, ok)
}
