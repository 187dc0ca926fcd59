package providers

import (
	"os"
	"path/filepath"
	"readtrack/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYaml = `
webServer:
  host: 127.0.0.1
  port: 8090
persistence:
  filePath: /tmp/readtrack.dat
logger:
  level: info
  dir: /tmp
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "readtrack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewConfigProvider_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, minimalYaml)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "ReadTrack", conf.AppName)
	assert.Equal(t, path, conf.Path)
	assert.Equal(t, 3, conf.Tracker.DefaultGoal)
	assert.Equal(t, 100, conf.Tracker.HistoryCap)
	assert.Equal(t, 20, conf.Tracker.HistoryLimit)
	assert.Equal(t, 5*time.Second, conf.Persistence.SaveInterval)
	assert.Equal(t, "almeida", conf.Bible.Translation)
	assert.Equal(t, "inspirational", conf.Quotes.Tags)
	assert.Equal(t, DefaultFallbackMessage, conf.Quotes.FallbackMessage)
}

func TestNewConfigProvider_EnvOverride(t *testing.T) {
	path := writeConfig(t, minimalYaml)
	t.Setenv("READTRACK_TIMEZONE", "America/Sao_Paulo")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "America/Sao_Paulo", conf.Tracker.Timezone)
	assert.True(t, conf.Debug)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: "/nonexistent/readtrack.yaml"})
	assert.Error(t, err)
}

func TestNewConfigProvider_InvalidValues(t *testing.T) {
	path := writeConfig(t, minimalYaml+"tracker:\n  defaultGoal: 0\n")

	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}
