package cfg

import (
	"io"
	"sync"
)

// InfoReportFunc writes a status report to w.
type InfoReportFunc func(w io.Writer)

var (
	reportersMu  sync.Mutex
	sigReporters []InfoReportFunc
)

// RegisterSigInfoReporter adds fn to the reporters called on SIGINFO.
func RegisterSigInfoReporter(fn InfoReportFunc) {
	if fn == nil {
		return
	}
	reportersMu.Lock()
	sigReporters = append(sigReporters, fn)
	reportersMu.Unlock()
}

// SigInfo calls all registered reporters in registration order.
func SigInfo(w io.Writer) {
	if w == nil {
		return
	}
	reportersMu.Lock()
	rr := append([]InfoReportFunc(nil), sigReporters...)
	reportersMu.Unlock()
	for _, fn := range rr {
		fn(w)
	}
}
