package tinylog

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log call. Levels form a total order
// from LevelTrace (least severe) to LevelError (most severe). LevelOff is a
// threshold value that disables a scope or writer entirely; it is never used
// as the severity of an actual log call.
type Level int8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

// callLevels is the number of severities a log call can carry (Off excluded).
const callLevels = int(LevelOff)

// IsAtLeastAsSevereAs reports whether l is at least as severe as other.
func (l Level) IsAtLeastAsSevereAs(other Level) bool {
	return l >= other
}

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string severity level, accepting any casing.
// Returns an error if the string does not name a known level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "OFF":
		return LevelOff, nil
	default:
		return LevelOff, fmt.Errorf("unknown severity level %q", level)
	}
}
