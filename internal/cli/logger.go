// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel maps the -v count and -q flag to a level: warnings by default,
// info with -v, debug with -vv. Quiet wins over verbose.
func LogLevel(verbose int, quiet bool) zerolog.Level {

	switch {
	case quiet:
		return zerolog.ErrorLevel
	case verbose >= 2:
		return zerolog.DebugLevel
	case verbose == 1:
		return zerolog.InfoLevel
	}
	return zerolog.WarnLevel
}

// SetupLogger replaces the global logger with a console logger writing to w.
func SetupLogger(w io.Writer, verbose int, quiet bool) zerolog.Logger {

	level := LogLevel(verbose, quiet)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
	zerolog.SetGlobalLevel(level)
	log.Logger = logger
	return logger
}
