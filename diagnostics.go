package tinylog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Reporter is the diagnostic self-log channel. The dispatch engine reports
// isolated writer and formatter failures through it instead of letting them
// unwind into the calling application.
//
// Implementations must never call back into Backend.Log; the engine's
// self-tag guard only covers its own delivery path.
type Reporter interface {
	Report(err error, message string)
}

// DiagnosticOptions configures the default zerolog-backed reporter.
//
// With the zero value, reports go to a human-readable console writer on
// stderr. A rolling diagnostic file is added when FilePath is set. Output
// overrides both for tests.
type DiagnosticOptions struct {
	ConsoleOutput  bool
	ConsoleNoColor bool
	FilePath       string
	FileMaxBackups int
	FileMaxAgeDays int
	FileMaxSizeMB  int
	FileCompress   bool
	Output         io.Writer
}

type zerologReporter struct {
	logger zerolog.Logger
}

// NewDiagnosticReporter creates the default diagnostic reporter.
func NewDiagnosticReporter(options DiagnosticOptions) Reporter {
	var writers []io.Writer

	if options.Output != nil {
		writers = append(writers, options.Output)
	} else {
		if options.FilePath != emptyString {
			writers = append(writers, &lumberjack.Logger{
				Filename:   options.FilePath,
				MaxBackups: options.FileMaxBackups,
				MaxAge:     options.FileMaxAgeDays,
				MaxSize:    options.FileMaxSizeMB,
				Compress:   options.FileCompress,
			})
		}
		if options.ConsoleOutput || len(writers) == 0 {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:     os.Stderr,
				NoColor: options.ConsoleNoColor,
			})
		}
	}

	logger := zerolog.New(io.MultiWriter(writers...)).With().
		Timestamp().
		Str("channel", InternalTag).
		Logger()

	return &zerologReporter{logger: logger}
}

func (r *zerologReporter) Report(err error, message string) {
	r.logger.Error().Err(err).Msg(message)
}
