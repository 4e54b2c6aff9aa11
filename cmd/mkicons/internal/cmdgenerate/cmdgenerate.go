// Package cmdgenerate provides the icon generation subcommand.
package cmdgenerate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bollyword/mkicons/cmd/mkicons/internal/bootstrap"
	"github.com/bollyword/mkicons/cmd/mkicons/internal/golang/base"
)

var CmdGenerate = &base.Command{
	Run:        runGenerate,
	UsageLine:  "mkicons generate [flags]",
	Short:      "generates the icons (default)",
	PrintFlags: true,
	Long: `
Draws the clapboard icon at 192, 512 and 180 pixels, and writes it to:

	client/public/icon-192.png
	client/public/icon-512.png
	client/public/apple-touch-icon.png

under the root directory.  If the imaging backend is not available, a
placeholder is written to client/public/icon-192.png only.

Generation errors are reported, but do not change the exit status.
`,
}

func runGenerate(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) > 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	res := bootstrap.Driver().Run(ctx)
	// failures are reported on the console by the driver.
	slog.DebugContext(ctx, "generate finished", "outcome", res.Outcome, "files", res.Files, "error", res.Err)
	return nil
}
