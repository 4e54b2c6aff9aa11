// Package cmdverify provides the subcommand that checks generated icons.
package cmdverify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bollyword/mkicons"
	"github.com/bollyword/mkicons/cmd/mkicons/internal/cfg"
	"github.com/bollyword/mkicons/cmd/mkicons/internal/golang/base"
)

var CmdVerify = &base.Command{
	Run:        runVerify,
	UsageLine:  "mkicons verify [flags]",
	Short:      "checks the generated icons",
	PrintFlags: true,
	Long: `
Decodes every generated icon and checks that its dimensions match the
declared size.
`,
}

func runVerify(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) > 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	return printReports(os.Stdout, mkicons.Verify(cfg.Root, mkicons.Targets))
}

func printReports(w io.Writer, rr []mkicons.Report) error {
	for _, r := range rr {
		var err error
		if r.OK() {
			_, err = fmt.Fprintf(w, "%-18s %4dx%-4d ok    %s\n", r.Target.Name, r.Width, r.Height, r.Filename)
		} else {
			_, err = fmt.Fprintf(w, "%-18s %9s FAIL  %s: %v\n", r.Target.Name, "", r.Filename, r.Err)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
