package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Var returns an environment variable with surrounding quotes and spaces removed.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// LogLevel returns the log level from MAXPOOL_DEBUG.
// A true boolean selects debug; an integer n selects level -4n.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("MAXPOOL_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}
	return level
}

// Format returns the default output format from MAXPOOL_FORMAT.
// Default: "table".
func Format() string {
	if s := Var("MAXPOOL_FORMAT"); s != "" {
		return strings.ToLower(s)
	}
	return "table"
}

// EnvVar documents an environment variable for help output.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns the recognized environment variables with their current values.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"MAXPOOL_DEBUG":  {"MAXPOOL_DEBUG", LogLevel(), "Show additional debug information (e.g. MAXPOOL_DEBUG=1)"},
		"MAXPOOL_FORMAT": {"MAXPOOL_FORMAT", Format(), "Default output format: table or matrix"},
	}
}
