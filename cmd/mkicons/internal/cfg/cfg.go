// Package cfg contains common configuration variables.
package cfg

import (
	"flag"
	"image/png"
	"log/slog"

	"github.com/rusq/osenv/v2"
)

var (
	TraceFile   string = osenv.Value("TRACE_FILE", "")
	LogFile     string = osenv.Value("LOG_FILE", "")
	JSONHandler bool   = osenv.Value("JSON_LOG", false)
	Verbose     bool   = osenv.Value("DEBUG", false)

	Root        string = osenv.Value("MKICONS_ROOT", ".")
	Compression CompressionFlag

	Log *slog.Logger = slog.Default()
)

type FlagMask uint16

const (
	DefaultFlags    FlagMask = 0
	OmitOutputFlags FlagMask = 1 << (iota - 1)

	OmitAll = OmitOutputFlags
)

// SetBaseFlags sets base flags.
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", TraceFile, "trace `filename`")
	fs.StringVar(&LogFile, "log", LogFile, "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JSONHandler, "log-json", JSONHandler, "log in JSON format")
	fs.BoolVar(&Verbose, "v", Verbose, "verbose messages")

	if mask&OmitOutputFlags == 0 {
		fs.StringVar(&Root, "root", Root, "project root `directory`, icons are written to client/public under it")
		fs.Var(&Compression, "z", "PNG compression `level`, one of: default, none, fast, best")
	}
}

// SetDebugLevel sets the default slog level to debug.
func SetDebugLevel() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
}

// CompressionFlag is a flag.Value for the PNG compression level.  The zero
// value is png.BestCompression.
type CompressionFlag struct {
	name string
}

var compressionLevels = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"fast":    png.BestSpeed,
	"best":    png.BestCompression,
}

func (c *CompressionFlag) String() string {
	if c == nil || c.name == "" {
		return "best"
	}
	return c.name
}

func (c *CompressionFlag) Set(s string) error {
	if _, ok := compressionLevels[s]; !ok {
		return errInvalidCompression(s)
	}
	c.name = s
	return nil
}

// Level returns the selected compression level.
func (c *CompressionFlag) Level() png.CompressionLevel {
	return compressionLevels[c.String()]
}

type errInvalidCompression string

func (e errInvalidCompression) Error() string {
	return "invalid compression level: " + string(e)
}
