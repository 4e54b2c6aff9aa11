package bootstrap

import (
	"io"
	"os"

	"github.com/bollyword/mkicons"
	"github.com/bollyword/mkicons/cmd/mkicons/internal/cfg"
)

// Driver returns the icon driver configured from the command line flags.
func Driver(opts ...mkicons.Option) *mkicons.Driver {
	d := mkicons.New(append([]mkicons.Option{
		mkicons.WithRoot(cfg.Root),
		mkicons.WithCompression(cfg.Compression.Level()),
		mkicons.WithConsole(os.Stdout),
		mkicons.WithLogger(cfg.Log),
	}, opts...)...)
	cfg.RegisterSigInfoReporter(func(w io.Writer) {
		io.WriteString(w, "driver state: "+d.State()+"\n")
	})
	return d
}
