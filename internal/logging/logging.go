package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects level, format and sink.
type Options struct {
	Level   string // logrus level name; empty means info
	Format  string // "text" or "json"
	File    string // empty means Output
	Verbose bool   // forces debug
	Output  io.Writer
}

// New builds the process logger. The interactive view owns the terminal, so
// logs normally go to a file; if that file cannot be opened the logger is
// silenced rather than writing over the screen.
// The returned close func releases the file and is always non-nil.
func New(opts Options) (*logrus.Logger, func() error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil || opts.Level == "" {
		level = logrus.InfoLevel
	}
	if opts.Verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	closeFn := func() error { return nil }
	switch {
	case opts.File != "":
		f, err := openLogFile(opts.File)
		if err != nil {
			logger.SetOutput(io.Discard)
			return logger, closeFn
		}
		logger.SetOutput(f)
		closeFn = f.Close
	case opts.Output != nil:
		logger.SetOutput(opts.Output)
	default:
		logger.SetOutput(io.Discard)
	}
	return logger, closeFn
}

// Discard returns an entry that drops everything; handy for tests.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
