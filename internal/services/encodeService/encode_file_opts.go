package encodeservice

import (
	"io"
	"log/slog"
)

// DefaultBufferSize is the read buffer used when streaming the input file.
const DefaultBufferSize = 32 * 1024

// fileConfig holds configuration for EncodeFile.
type fileConfig struct {
	outputPath string
	suffix     string
	echo       io.Writer
	bufferSize int
	logger     *slog.Logger
}

func (c *fileConfig) getBufferSize() int {
	if c.bufferSize <= 0 {
		return DefaultBufferSize
	}
	return c.bufferSize
}

// log returns the logger, falling back to a discard logger if nil.
func (c *fileConfig) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// FileOption configures EncodeFile.
type FileOption func(*fileConfig)

// WithOutputPath writes the result to path instead of the derived output path.
func WithOutputPath(path string) FileOption {
	return func(c *fileConfig) {
		c.outputPath = path
	}
}

// WithSuffix sets the suffix used to derive the output path (default: "_HEX").
func WithSuffix(suffix string) FileOption {
	return func(c *fileConfig) {
		c.suffix = suffix
	}
}

// WithEcho copies the raw input bytes to w as they are read.
func WithEcho(w io.Writer) FileOption {
	return func(c *fileConfig) {
		c.echo = w
	}
}

// WithBufferSize sets the read buffer size. Values <= 0 use DefaultBufferSize.
func WithBufferSize(n int) FileOption {
	return func(c *fileConfig) {
		c.bufferSize = n
	}
}

// WithLogger sets the logger for file encoding.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) FileOption {
	return func(c *fileConfig) {
		c.logger = logger
	}
}
