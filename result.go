package mkicons

import "strconv"

// Outcome is the result of a driver run.
type Outcome int

const (
	// OutcomeComplete means all icons were generated and written.
	OutcomeComplete Outcome = iota
	// OutcomePlaceholder means that the imaging backend is unavailable, and
	// the placeholder was written instead.
	OutcomePlaceholder
	// OutcomeFailed means the run stopped on an error.  Files written before
	// the error are left in place.
	OutcomeFailed
)

var outcomeNames = [...]string{
	OutcomeComplete:    "complete",
	OutcomePlaceholder: "placeholder",
	OutcomeFailed:      "failed",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
	return outcomeNames[o]
}

// Result is returned by Driver.Run.
type Result struct {
	Outcome Outcome
	Files   []string // files written, in order
	Err     error    // set if Outcome is OutcomeFailed
}
