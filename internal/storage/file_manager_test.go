package storage

import (
	"errors"
	"os"
	"path/filepath"
	"readtrack/internal/models"
	"readtrack/internal/testutil"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManager_SaveAndLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.dat")

	comp, err := NewZstdCompressor()
	require.NoError(t, err)

	src := NewMemoryStore()
	src.Set("dailyGoal", "5")
	src.Set("readingHistory", `[{"reference":"João 3","timestamp":1,"isoDate":"x"}]`)
	require.NoError(t, NewFileManager(comp, src, &testutil.MockLogger{}).SaveToFile(path))

	dst := NewMemoryStore()
	require.NoError(t, NewFileManager(comp, dst, &testutil.MockLogger{}).LoadFromFile(path))

	assert.Equal(t, src.Snapshot(), dst.Snapshot())
}

func TestFileManager_SaveToFile_NoTempLeftBehind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.dat")

	fm := NewFileManager(&testutil.MockCompressor{}, NewMemoryStore(), &testutil.MockLogger{})
	require.NoError(t, fm.SaveToFile(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileManager_SaveToFile_CompressError(t *testing.T) {
	comp := &testutil.MockCompressor{
		CompressFn: func([]byte) ([]byte, error) { return nil, errors.New("compress error") },
	}
	fm := NewFileManager(comp, NewMemoryStore(), &testutil.MockLogger{})
	assert.Error(t, fm.SaveToFile(filepath.Join(t.TempDir(), "state.dat")))
}

func TestFileManager_LoadFromFile_FileNotExist(t *testing.T) {
	fm := NewFileManager(&testutil.MockCompressor{}, NewMemoryStore(), &testutil.MockLogger{})
	assert.NoError(t, fm.LoadFromFile("/nonexistent/path/state.dat"))
}

func TestFileManager_LoadFromFile_Envelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.dat")
	data, _ := json.Marshal(models.Snapshot{
		Version: models.SnapshotVersion,
		SavedAt: time.Now(),
		Entries: map[string]string{"streakDays": "6"},
	})
	require.NoError(t, os.WriteFile(path, data, 0644))

	store := NewMemoryStore()
	logger := &testutil.MockLogger{}
	require.NoError(t, NewFileManager(&testutil.MockCompressor{}, store, logger).LoadFromFile(path))

	v, _ := store.Get("streakDays")
	assert.Equal(t, "6", v)
	assert.Zero(t, logger.Count("warn"))
}

func TestFileManager_LoadFromFile_PlainExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"chaptersToday":"2","dailyGoal":"4"}`), 0644))

	store := NewMemoryStore()
	logger := &testutil.MockLogger{}
	require.NoError(t, NewFileManager(&testutil.MockCompressor{}, store, logger).LoadFromFile(path))

	v, _ := store.Get("dailyGoal")
	assert.Equal(t, "4", v)
	assert.Positive(t, logger.Count("warn"))
}

func TestFileManager_LoadFromFile_NewerVersionRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.dat")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99,"entries":{"a":"b"}}`), 0644))

	store := NewMemoryStore()
	err := NewFileManager(&testutil.MockCompressor{}, store, &testutil.MockLogger{}).LoadFromFile(path)
	assert.Error(t, err)
	_, ok := store.Get("a")
	assert.False(t, ok)
}

func TestFileManager_LoadFromFile_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.dat")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	fm := NewFileManager(&testutil.MockCompressor{}, NewMemoryStore(), &testutil.MockLogger{})
	assert.Error(t, fm.LoadFromFile(path))
}
