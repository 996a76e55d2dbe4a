package logger

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions describes a rotating log file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// WithRotatingFile tees output to stdout and a size-rotated file.
// An empty path leaves the output untouched.
func WithRotatingFile(opts FileOptions) Option {
	return func(l *Logger) {
		if opts.Path == "" {
			return
		}
		l.out = io.MultiWriter(os.Stdout, newRotatingWriter(opts))
	}
}

func newRotatingWriter(opts FileOptions) io.Writer {
	return &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	}
}
