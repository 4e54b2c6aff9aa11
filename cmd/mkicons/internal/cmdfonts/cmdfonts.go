// Package cmdfonts provides the font listing subcommand.
package cmdfonts

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bollyword/mkicons/cmd/mkicons/internal/cfg"
	"github.com/bollyword/mkicons/cmd/mkicons/internal/golang/base"
	"github.com/bollyword/mkicons/fontmgr"
)

var CmdFonts = &base.Command{
	Run:        runFonts,
	UsageLine:  "mkicons fonts",
	Short:      "lists the fonts used for lettering",
	FlagMask:   cfg.OmitOutputFlags,
	PrintFlags: true,
	Long: `
Lists the font files that are tried, in order, to letter the icons, and
the embedded fonts used when none of them is available.
`,
}

func runFonts(ctx context.Context, cmd *base.Command, args []string) error {
	return listFonts(os.Stdout)
}

func listFonts(w io.Writer) error {
	return fontmgr.ListAllFonts(func(fnt fontmgr.FontFile, err error) error {
		if err != nil {
			return err
		}
		status := "missing"
		if fnt.Available() {
			status = "ok"
		}
		location := fnt.Filename
		if fnt.IsEmbedded {
			location = "(embedded)"
		}
		_, err = fmt.Fprintf(w, "%-26s %-10s %-7s %s\n", fnt.Name, fnt.Style, status, location)
		return err
	})
}
