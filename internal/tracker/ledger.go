package tracker

import (
	"readtrack/internal/models"
	"readtrack/internal/providers"
	"readtrack/internal/storage/interfaces"

	json "github.com/goccy/go-json"
)

const DefaultHistoryCap = 100

// Ledger is the capped, append-only reading history kept as one JSON array
// under KeyReadingHistory. Oldest entries are evicted first.
type Ledger struct {
	store    interfaces.KeyValueStore
	capacity int
	logger   providers.Logger
}

func NewLedger(store interfaces.KeyValueStore, capacity int, logger providers.Logger) *Ledger {
	if capacity < 1 {
		capacity = DefaultHistoryCap
	}
	return &Ledger{store: store, capacity: capacity, logger: logger}
}

// All returns the history in chronological order. A corrupt value reads as
// empty and is overwritten by the next Append.
func (l *Ledger) All() []models.HistoryEntry {
	raw, ok := l.store.Get(KeyReadingHistory)
	if !ok || raw == "" {
		return []models.HistoryEntry{}
	}
	var entries []models.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		l.logger.Warnf(providers.TypeApp, "Unreadable reading history, treating as empty: %s", err)
		return []models.HistoryEntry{}
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries
}

func (l *Ledger) Append(entry models.HistoryEntry) error {
	entries := append(l.All(), entry)
	if len(entries) > l.capacity {
		entries = entries[len(entries)-l.capacity:]
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	l.store.Set(KeyReadingHistory, string(data))
	return nil
}

// Recent returns up to n entries, most recent first. n <= 0 returns all.
func (l *Ledger) Recent(n int) []models.HistoryEntry {
	entries := l.All()
	if n <= 0 || n > len(entries) {
		n = len(entries)
	}
	out := make([]models.HistoryEntry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		out = append(out, entries[i])
	}
	return out
}

func (l *Ledger) Len() int {
	return len(l.All())
}

func (l *Ledger) Clear() {
	l.store.Remove(KeyReadingHistory)
}
