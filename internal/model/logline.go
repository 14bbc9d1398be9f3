package model

import "strings"

// LogLevel classifies a log line for display.
type LogLevel string

const (
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// LogLine is one parsed line of raw workload log output.
type LogLine struct {
	// Timestamp is the leading ISO-8601 token truncated before any
	// fractional seconds, or empty when the line carries no timestamp.
	Timestamp string
	Message   string
	Level     LogLevel
}

// ParseLogLine splits a raw log line into timestamp and message. The line
// is split on the first space; if the first token ends with 'Z' it is taken
// as a UTC timestamp and the trimmed remainder is the message. Otherwise
// the whole line is the message.
func ParseLogLine(line string) LogLine {
	token, rest, ok := strings.Cut(line, " ")
	if ok && strings.HasSuffix(token, "Z") {
		ts, _, _ := strings.Cut(token, ".")
		msg := strings.TrimSpace(rest)
		return LogLine{Timestamp: ts, Message: msg, Level: classifyLogLevel(msg)}
	}
	return LogLine{Message: line, Level: classifyLogLevel(line)}
}

// ParseLogs parses full raw log text into display lines.
func ParseLogs(text string) []LogLine {
	if text == "" {
		return nil
	}
	raw := strings.Split(strings.TrimRight(text, "\n"), "\n")
	lines := make([]LogLine, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, ParseLogLine(l))
	}
	return lines
}

// classifyLogLevel applies case-insensitive substring rules in order:
// error markers first, then warnings, else info.
func classifyLogLevel(message string) LogLevel {
	upper := strings.ToUpper(message)
	switch {
	case strings.Contains(upper, "ERROR") || strings.Contains(upper, "FAILED"):
		return LogError
	case strings.Contains(upper, "WARN"):
		return LogWarn
	default:
		return LogInfo
	}
}
