package helper

import (
	"strings"

	"github.com/labstack/gommon/log"
)

const logHeader = `{"time":"${time_rfc3339}","level":"${level}","prefix":"${prefix}"}`

func NewLogger(prefix string, level string) *log.Logger {
	logger := log.New(prefix)
	logger.SetHeader(logHeader)
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel falls back to INFO for unknown names.
func ParseLevel(level string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
