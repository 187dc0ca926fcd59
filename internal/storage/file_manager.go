package storage

import (
	"fmt"
	json "github.com/goccy/go-json"
	"os"
	"path/filepath"
	"readtrack/internal/models"
	"readtrack/internal/providers"
	"readtrack/internal/storage/interfaces"
	"time"
)

// FileManager moves the key-value store to and from a compressed snapshot
// file. Writes go through a temp file and a rename, so a crash mid-save keeps
// the previous snapshot intact.
type FileManager struct {
	store      interfaces.KeyValueStore
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, store interfaces.KeyValueStore, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		store:      store,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	snapshot := models.Snapshot{
		Version: models.SnapshotVersion,
		SavedAt: time.Now().UTC(),
		Entries: f.store.Snapshot(),
	}

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// LoadFromFile restores the store from fileName. A missing file is a fresh
// profile, not an error.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return fmt.Errorf("decompress snapshot: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(decompressedData, &snapshot); err == nil && snapshot.Entries != nil {
		if snapshot.Version > models.SnapshotVersion {
			return fmt.Errorf("snapshot version %d is newer than supported %d", snapshot.Version, models.SnapshotVersion)
		}
		f.store.Restore(snapshot.Entries)
		return nil
	}

	// Bare key/value object, as exported from browser storage.
	f.logger.Warnf(providers.TypeApp, "Snapshot envelope not found, trying plain key/value format")
	var entries map[string]string
	if err := json.Unmarshal(decompressedData, &entries); err != nil {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return err
	}
	f.logger.Warnf(providers.TypeApp, "Imported %d keys from plain key/value format", len(entries))
	f.store.Restore(entries)

	return nil
}
