package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/levels"
)

func TestResolveLevel(t *testing.T) {
	reg, err := levels.Load("", nil)
	require.NoError(t, err)

	l, err := resolveLevel(reg, "classic")
	require.NoError(t, err)
	assert.Equal(t, "classic", l.ID)

	path := filepath.Join(t.TempDir(), "tiny.yaml")
	body := "id: tiny\nlayout:\n  - \"11111\"\n  - \"1P2G1\"\n  - \"11111\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	l, err = resolveLevel(reg, path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", l.ID)

	_, err = resolveLevel(reg, "nope")
	assert.Error(t, err)
}

func TestResolveLevelRejectsStrandedDots(t *testing.T) {
	reg, err := levels.Load("", nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "split.yaml")
	body := "id: split\nlayout:\n  - \"1111111\"\n  - \"1P212G1\"\n  - \"1111111\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err = resolveLevel(reg, path)
	var verr levels.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, levels.CodeUnreachable, verr.Code)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Cleanup(func() {
		flagFPS, flagAuthStore, flagDBPath = 0, "", ""
	})
	flagFPS = 20
	flagAuthStore = config.StoreMemory
	flagDBPath = filepath.Join(t.TempDir(), "s.db")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Game.FPS)
	assert.Equal(t, config.StoreMemory, cfg.Auth.Store)
	assert.Equal(t, flagDBPath, cfg.Paths.Database)

	flagFPS = 500
	_, err = loadConfig()
	assert.Error(t, err)
}

func TestOpenAuthStores(t *testing.T) {
	e := &env{cfg: config.DefaultConfig(), logger: log.New(io.Discard)}
	e.cfg.Auth.Store = config.StoreSQLite
	_, err := e.openAuth(context.Background(), nil)
	assert.Error(t, err, "sqlite store without a database")

	e.cfg.Auth.Store = config.StorePostgres
	e.cfg.Auth.DatabaseURL = ""
	_, err = e.openAuth(context.Background(), nil)
	assert.Error(t, err, "postgres store without a URL")
}
