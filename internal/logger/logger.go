package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Options controls how the process logger is built on first use.
type Options struct {
	Debug  bool
	Pretty bool
	Output io.Writer
}

// Init configures the process logger. Only the first call has effect; later
// calls and Get share the same instance.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		log = build(opts)
	})
	return log
}

// Get returns the process logger, building an info-level JSON logger on
// stdout if Init was never called.
func Get() zerolog.Logger {
	return Init(Options{})
}

func build(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
