package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Entry is one record kept by a Ring.
type Entry struct {
	Time    time.Time         `json:"time"`
	Level   slog.Level        `json:"level"`
	Message string            `json:"message"`
	Attrs   map[string]string `json:"attrs"`
}

// Ring is a slog handler that keeps the most recent records in memory so a
// full screen program can show its own log.
type Ring struct {
	mu      *sync.RWMutex
	entries *[]Entry
	maxSize int
	level   slog.Leveler
	attrs   []slog.Attr
}

func NewRing(maxSize int, level slog.Leveler) *Ring {
	if maxSize <= 0 {
		maxSize = 100
	}
	if level == nil {
		level = slog.LevelInfo
	}
	entries := make([]Entry, 0, maxSize)
	return &Ring{
		mu:      &sync.RWMutex{},
		entries: &entries,
		maxSize: maxSize,
		level:   level,
	}
}

func (h *Ring) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Ring) Handle(_ context.Context, record slog.Record) error {
	attrs := make(map[string]string, record.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.String()
	}
	record.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	*h.entries = append(*h.entries, Entry{
		Time:    record.Time,
		Level:   record.Level,
		Message: record.Message,
		Attrs:   attrs,
	})
	if over := len(*h.entries) - h.maxSize; over > 0 {
		*h.entries = append((*h.entries)[:0], (*h.entries)[over:]...)
	}
	return nil
}

func (h *Ring) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

// WithGroup is not supported; group names are dropped.
func (h *Ring) WithGroup(string) slog.Handler {
	return h
}

// Recent returns up to count of the newest entries, oldest first.
func (h *Ring) Recent(count int) []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	entries := *h.entries
	if count <= 0 || count > len(entries) {
		count = len(entries)
	}
	out := make([]Entry, count)
	copy(out, entries[len(entries)-count:])
	return out
}

// Tee sends every record to all handlers that accept it.
type Tee []slog.Handler

func (t Tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t Tee) Handle(ctx context.Context, record slog.Record) error {
	var first error
	for _, h := range t {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t Tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(Tee, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t Tee) WithGroup(name string) slog.Handler {
	out := make(Tee, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}
