package logger

import (
	"fmt"
	"os"
	"regexp"

	"github.com/rs/zerolog"
)

type DefaultLogger struct {
	Logger
}

var Default = &DefaultLogger{}

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

var urlRegex = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://[a-zA-Z0-9+%/.\-:_?&=#@+]+`)

// safeMsg formats the message and, when SAFE_LOGS is enabled, strips any URL
// from it. Scrape logs are full of station page and stream URLs.
func safeMsg(format string, v ...any) string {
	msg := format
	if len(v) > 0 {
		msg = fmt.Sprintf(format, v...)
	}
	if os.Getenv("SAFE_LOGS") == "true" {
		return urlRegex.ReplaceAllString(msg, "[redacted url]")
	}
	return msg
}

func debugEnabled() bool {
	return os.Getenv("DEBUG") == "true"
}

func (*DefaultLogger) Log(format string) {
	logger.Info().Msg(safeMsg(format))
}

func (*DefaultLogger) Logf(format string, v ...any) {
	logger.Info().Msg(safeMsg(format, v...))
}

func (*DefaultLogger) Debug(format string) {
	if debugEnabled() {
		logger.Debug().Msg(safeMsg(format))
	}
}

func (*DefaultLogger) Debugf(format string, v ...any) {
	if debugEnabled() {
		logger.Debug().Msg(safeMsg(format, v...))
	}
}

func (*DefaultLogger) Error(format string) {
	logger.Error().Msg(safeMsg(format))
}

func (*DefaultLogger) Errorf(format string, v ...any) {
	logger.Error().Msg(safeMsg(format, v...))
}

func (*DefaultLogger) Warn(format string) {
	logger.Warn().Msg(safeMsg(format))
}

func (*DefaultLogger) Warnf(format string, v ...any) {
	logger.Warn().Msg(safeMsg(format, v...))
}

func (*DefaultLogger) Fatal(format string) {
	logger.Fatal().Msg(safeMsg(format))
}

func (*DefaultLogger) Fatalf(format string, v ...any) {
	logger.Fatal().Msg(safeMsg(format, v...))
}
