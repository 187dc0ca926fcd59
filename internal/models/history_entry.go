package models

import "time"

// HistoryEntry records one completed chapter. Entries are never edited once
// appended to the ledger.
type HistoryEntry struct {
	Reference string `json:"reference"`
	Timestamp int64  `json:"timestamp"`
	IsoDate   string `json:"isoDate"`
}

const isoLayout = "2006-01-02T15:04:05.000Z07:00"

func NewHistoryEntry(reference string, at time.Time) HistoryEntry {
	return HistoryEntry{
		Reference: reference,
		Timestamp: at.UnixMilli(),
		IsoDate:   at.UTC().Format(isoLayout),
	}
}

// At returns the instant the chapter was completed.
func (h HistoryEntry) At() time.Time {
	return time.UnixMilli(h.Timestamp)
}
