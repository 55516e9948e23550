package cliutil

import (
	"os"

	"github.com/op/go-logging"
)

var stderrFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.6s} ▶ %{message}`,
)

// SetupLogging wires a stderr-backed logger for prefix, honoring
// IBE_LOG_LEVEL the way kryptco-kr's daemon honors its own
// KR_LOG_LEVEL environment variable.
func SetupLogging(prefix string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, prefix, 0)
	logging.SetFormatter(stderrFormat)
	leveled := logging.AddModuleLevel(backend)

	level := logging.NOTICE
	switch os.Getenv("IBE_LOG_LEVEL") {
	case "CRITICAL":
		level = logging.CRITICAL
	case "ERROR":
		level = logging.ERROR
	case "WARNING":
		level = logging.WARNING
	case "NOTICE":
		level = logging.NOTICE
	case "INFO":
		level = logging.INFO
	case "DEBUG":
		level = logging.DEBUG
	}
	leveled.SetLevel(level, prefix)
	logging.SetBackend(leveled)
	return logging.MustGetLogger(prefix)
}
