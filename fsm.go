package mkicons

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"
)

// run states.
const (
	stateIdle        = "idle"
	stateRendering   = "rendering"
	stateComplete    = "complete"
	statePlaceholder = "placeholder"
	stateFailed      = "failed"
)

// run events.
const (
	evtRender  = "render"
	evtFinish  = "finish"
	evtDegrade = "degrade"
	evtFail    = "fail" // event args: error
)

/*
	idle ---render---> rendering ---finish---> complete
	  |                    |
	  |                    +-------fail------> failed
	  +------degrade-----> placeholder
	  +--------fail------> failed
*/

var runFsmEvts = fsm.Events{
	{Name: evtRender, Src: []string{stateIdle}, Dst: stateRendering},
	{Name: evtFinish, Src: []string{stateRendering}, Dst: stateComplete},
	{Name: evtDegrade, Src: []string{stateIdle}, Dst: statePlaceholder},
	{Name: evtFail, Src: []string{stateIdle, stateRendering}, Dst: stateFailed},
}

func newRunFSM(lg *slog.Logger) *fsm.FSM {
	return fsm.NewFSM(
		stateIdle,
		runFsmEvts,
		fsm.Callbacks{
			"enter_state": func(ctx context.Context, e *fsm.Event) {
				lg.DebugContext(ctx, "state changed", "event", e.Event, "from", e.Src, "to", e.Dst)
			},
			evtFail: func(ctx context.Context, e *fsm.Event) {
				if len(e.Args) > 0 {
					lg.ErrorContext(ctx, "run failed", "error", e.Args[0])
				}
			},
			evtDegrade: func(ctx context.Context, e *fsm.Event) {
				lg.InfoContext(ctx, "placeholder written")
			},
			evtFinish: func(ctx context.Context, e *fsm.Event) {
				lg.InfoContext(ctx, "icons generated")
			},
		},
	)
}
