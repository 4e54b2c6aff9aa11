package mkicons

import (
	"io"

	"github.com/pterm/pterm"
)

// console prints human readable progress messages.
type console struct {
	info, success, warning, err *pterm.PrefixPrinter
}

func newConsole(w io.Writer) console {
	return console{
		info:    pterm.Info.WithWriter(w),
		success: pterm.Success.WithWriter(w),
		warning: pterm.Warning.WithWriter(w),
		err:     pterm.Error.WithWriter(w),
	}
}

func (c console) Info(msg string)    { c.info.Println(msg) }
func (c console) Success(msg string) { c.success.Println(msg) }
func (c console) Warning(msg string) { c.warning.Println(msg) }
func (c console) Error(msg string)   { c.err.Println(msg) }
