package models

import "time"

const SnapshotVersion = 1

// Snapshot is the on-disk envelope of the key-value store. Older files may
// hold a bare key/value object instead (a browser storage export).
type Snapshot struct {
	Version int               `json:"version"`
	SavedAt time.Time         `json:"saved_at"`
	Entries map[string]string `json:"entries"`
}
