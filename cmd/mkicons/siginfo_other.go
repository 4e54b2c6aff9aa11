//go:build !(darwin || freebsd || netbsd || openbsd || dragonfly)

package main

// trapSigInfo is a no-op on systems without SIGINFO.
func trapSigInfo() {}
