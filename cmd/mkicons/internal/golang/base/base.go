// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base defines shared basic pieces of the mkicons command,
// in particular the Command structure and the exit status.
package base

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/bollyword/mkicons/cmd/mkicons/internal/cfg"
)

// A Command is an implementation of a mkicons command.
type Command struct {
	// Run runs the command.
	// The args are the arguments after the command name.
	Run func(ctx context.Context, cmd *Command, args []string) error

	// UsageLine is the one-line usage message.
	// The words between "mkicons" and the first flag or argument in the line are taken to be the command name.
	UsageLine string

	// Short is the short description shown in the 'mkicons help' output.
	Short string

	// Long is the long message shown in the 'mkicons help <this-command>' output.
	Long string

	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet

	// FlagMask is a set of flags that are not inherited from the global flags.
	FlagMask cfg.FlagMask

	// PrintFlags determines whether to print the flags in the help output.
	PrintFlags bool

	// CustomFlags indicates that the command will do its own
	// flag parsing.
	CustomFlags bool

	// Commands lists the available commands and help topics.
	// The order here is the order in which they are printed by 'mkicons help'.
	Commands []*Command
}

var MkiconsCommand = &Command{
	UsageLine: "mkicons",
	Long:      `Mkicons draws the application icons of the web client.`,
	// Commands initialized in package main
}

// LongName returns the command's long name: all the words in the usage line between "mkicons" and a flag or argument.
func (c *Command) LongName() string {
	name := c.UsageLine
	if i := strings.Index(name, " ["); i >= 0 {
		name = name[:i]
	}
	if name == "mkicons" {
		return ""
	}
	return strings.TrimPrefix(name, "mkicons ")
}

// Name returns the command's short name: the last word in the usage line before a flag or argument.
func (c *Command) Name() string {
	name := c.LongName()
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func (c *Command) Usage() {
	fmt.Fprintf(os.Stderr, "usage: %s\n", c.UsageLine)
	fmt.Fprintf(os.Stderr, "Run 'mkicons help %s' for details.\n", c.LongName())
	SetExitStatus(SInvalidParameters)
	Exit()
}

// Runnable reports whether the command can be run; otherwise
// it is a documentation pseudo-command.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

// CmdName is the name of the running command, used in the error messages.
var CmdName string

// Usage is the usage function of the main command.
var Usage func()

var atExitFuncs []func()

// AtExit registers fn to be called on Exit.
func AtExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

// Exit runs the AtExit functions in the reverse order and terminates the
// program with the current exit status.
func Exit() {
	for i := len(atExitFuncs) - 1; i >= 0; i-- {
		atExitFuncs[i]()
	}
	os.Exit(int(ExitStatus()))
}

// StatusCode is the process exit status.
type StatusCode uint8

const (
	SNoError StatusCode = iota
	SGenericError
	SInvalidParameters
	SHelpRequested
	SApplicationError
)

var statusNames = [...]string{
	SNoError:           "no error",
	SGenericError:      "generic error",
	SInvalidParameters: "invalid parameters",
	SHelpRequested:     "help requested",
	SApplicationError:  "application error",
}

func (s StatusCode) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("StatusCode(%d)", uint8(s))
}

var (
	exitStatus StatusCode = SNoError
	exitMu     sync.Mutex
)

// SetExitStatus sets the exit status, if it is higher than the current one.
func SetExitStatus(n StatusCode) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func ExitStatus() StatusCode {
	exitMu.Lock()
	defer exitMu.Unlock()
	return exitStatus
}
