package logx

import (
	"fmt"
	"time"
)

// Formatter is the interface for log formatters
type Formatter interface {
	Format(entry *LogEntry) ([]byte, error)
}

// LogEntry represents a single log entry
type LogEntry struct {
	Level     Level
	Message   string
	Fields    Fields
	Error     error
	Timestamp time.Time
}

// Fields is a map of structured data
type Fields map[string]interface{}

// formatTimestamp formats the timestamp based on the config
func formatTimestamp(t time.Time, format string) string {
	if format == "unix" {
		return fmt.Sprintf("%d", t.Unix())
	}
	return t.Format(format)
}
