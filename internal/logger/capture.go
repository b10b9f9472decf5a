package logger

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

const defaultCaptureSize = 1000

// Entry is a single captured log record, shaped for the /api/logs responses.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Caller    string    `json:"caller,omitempty"`
}

// Stats summarizes the captured log buffer.
type Stats struct {
	Total   int            `json:"total"`
	ByLevel map[string]int `json:"by_level"`
	Oldest  *time.Time     `json:"oldest"`
	Newest  *time.Time     `json:"newest"`
}

// Capture holds the most recent log entries in a bounded in-memory buffer.
// It is safe for concurrent use.
type Capture struct {
	mu      sync.RWMutex
	entries []Entry
	max     int
}

func NewCapture(max int) *Capture {
	if max <= 0 {
		max = defaultCaptureSize
	}
	return &Capture{max: max}
}

func (c *Capture) append(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = append(c.entries, e)
	if len(c.entries) > c.max {
		c.entries = c.entries[len(c.entries)-c.max:]
	}
}

// Logs returns captured entries, oldest first. A zero since means no time
// filter; an empty level means no level filter; limit <= 0 means no limit.
func (c *Capture) Logs(limit int, level string, since time.Time) []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	filtered := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if level != "" && !strings.EqualFold(e.Level, level) {
			continue
		}
		if !since.IsZero() && !e.Timestamp.After(since) {
			continue
		}
		filtered = append(filtered, e)
	}

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}

	return filtered
}

func (c *Capture) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{
		Total:   len(c.entries),
		ByLevel: map[string]int{},
	}

	for _, e := range c.entries {
		stats.ByLevel[e.Level]++
	}

	if len(c.entries) > 0 {
		oldest := c.entries[0].Timestamp
		newest := c.entries[len(c.entries)-1].Timestamp
		stats.Oldest = &oldest
		stats.Newest = &newest
	}

	return stats
}

func (c *Capture) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

// captureCore is a zapcore.Core that mirrors every accepted entry into a
// Capture. It carries no fields of its own; structured fields stay on the
// primary core, the capture keeps the rendered message only.
type captureCore struct {
	capture *Capture
	level   zapcore.LevelEnabler
}

func newCaptureCore(capture *Capture, level zapcore.LevelEnabler) zapcore.Core {
	return &captureCore{capture: capture, level: level}
}

func (c *captureCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *captureCore) With([]zapcore.Field) zapcore.Core {
	return c
}

func (c *captureCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *captureCore) Write(entry zapcore.Entry, _ []zapcore.Field) error {
	c.capture.append(Entry{
		Timestamp: entry.Time,
		Level:     entry.Level.CapitalString(),
		Message:   entry.Message,
		Caller:    entry.Caller.TrimmedPath(),
	})
	return nil
}

func (c *captureCore) Sync() error {
	return nil
}
