package interfaces

import "time"

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
}

// KeyValueStore is the string-to-string medium the reading state lives in.
// Writes are atomic per key only.
type KeyValueStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
	Snapshot() map[string]string
	Restore(entries map[string]string)
	Revision() uint64
}

// DayRoller resets the per-day counter when the calendar day changes.
type DayRoller interface {
	RollDay(now time.Time)
}

type SchedulerInterface interface {
	Init() error
	Stop()
	Restore() error
	Persist() error
}
