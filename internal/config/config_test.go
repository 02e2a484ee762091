package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	root := t.TempDir()
	viper.Set("server.root_dir", root)

	cfg := Load()

	assert.Equal(t, "80", cfg.Server.Port)
	assert.Equal(t, root, cfg.Server.RootDir)
	assert.Equal(t, filepath.Join(root, "uploads"), cfg.Uploads)
	assert.Equal(t, filepath.Join(root, "audit.log"), cfg.AuditLog)
	assert.Equal(t, filepath.Join(root, "data.db"), cfg.Database.Path)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "curl -s", cfg.Remote.FetchCommand)
	assert.Equal(t, "ping -c 4", cfg.Remote.PingCommand)
	assert.Equal(t, 4000, cfg.Remote.FetchLimit)
}

func TestLoad_AbsolutePathsKept(t *testing.T) {
	viper.Reset()
	root := t.TempDir()
	viper.Set("server.root_dir", root)
	viper.Set("uploads.dir", "/srv/uploads")

	cfg := Load()

	assert.Equal(t, "/srv/uploads", cfg.Uploads)
}
