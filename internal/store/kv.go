package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
)

// KV is the JSON layer over a Backend. It never surfaces an error: a value
// that cannot be read is absent, and a write that fails is dropped after
// being logged. In-memory state stays correct for the session either way.
type KV struct {
	b   Backend
	log *slog.Logger
}

func NewKV(b Backend, logger *slog.Logger) *KV {
	if logger == nil {
		logger = slog.Default()
	}
	return &KV{b: b, log: logger}
}

// Get decodes the value stored at key into dst and reports whether it did.
// Missing keys, JSON null, unreadable storage and corrupt data all report false.
func (k *KV) Get(key string, dst any) bool {
	raw, err := k.b.Read(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			k.log.Warn("storage read failed", "key", key, "err", err)
		}
		return false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		k.log.Warn("ignoring corrupt stored value", "key", key, "err", err)
		return false
	}
	return true
}

// Set encodes value as JSON and writes it synchronously.
func (k *KV) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		k.log.Warn("storage encode failed", "key", key, "err", err)
		return
	}
	if err := k.b.Write(key, data); err != nil {
		k.log.Warn("storage write dropped", "key", key, "err", err)
	}
}

func (k *KV) Remove(key string) {
	if err := k.b.Erase(key); err != nil {
		k.log.Warn("storage remove dropped", "key", key, "err", err)
	}
}

// GetString reads a plain (non-JSON) string value. Missing or unreadable
// keys read as "".
func (k *KV) GetString(key string) string {
	raw, err := k.b.Read(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			k.log.Warn("storage read failed", "key", key, "err", err)
		}
		return ""
	}
	return string(raw)
}

func (k *KV) SetString(key, value string) {
	if err := k.b.Write(key, []byte(value)); err != nil {
		k.log.Warn("storage write dropped", "key", key, "err", err)
	}
}
