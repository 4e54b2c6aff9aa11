package mkicons

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/looplab/fsm"

	"github.com/bollyword/mkicons/icon"
)

// Generator draws an icon of the given size.
type Generator interface {
	Generate(size int) (*image.RGBA, error)
}

// Opener returns a Generator.  If the imaging backend is not available, it
// must return an error wrapping icon.ErrUnavailable.
type Opener func() (Generator, error)

// Driver generates the icons and writes them to disk.
type Driver struct {
	root        string
	targets     []Target
	open        Opener
	console     io.Writer
	compression png.CompressionLevel
	lg          *slog.Logger

	sm atomic.Pointer[fsm.FSM] // state machine of the current run
}

type Option func(*Driver)

// WithRoot sets the directory the target paths are relative to.
func WithRoot(dir string) Option {
	return func(d *Driver) {
		d.root = dir
	}
}

// WithTargets replaces the default Targets.
func WithTargets(tt ...Target) Option {
	return func(d *Driver) {
		d.targets = tt
	}
}

// WithOpener sets the function that opens the imaging backend.
func WithOpener(fn Opener) Option {
	return func(d *Driver) {
		if fn != nil {
			d.open = fn
		}
	}
}

// WithConsole sets the writer for the progress messages.
func WithConsole(w io.Writer) Option {
	return func(d *Driver) {
		if w != nil {
			d.console = w
		}
	}
}

// WithCompression sets the PNG compression level.
func WithCompression(level png.CompressionLevel) Option {
	return func(d *Driver) {
		d.compression = level
	}
}

func WithLogger(lg *slog.Logger) Option {
	return func(d *Driver) {
		if lg != nil {
			d.lg = lg
		}
	}
}

// New returns a new Driver.
func New(opts ...Option) *Driver {
	d := &Driver{
		root:        ".",
		targets:     Targets,
		open:        openIcon,
		console:     os.Stdout,
		compression: png.BestCompression,
		lg:          slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func openIcon() (Generator, error) {
	r, err := icon.Open()
	if err != nil {
		return nil, err
	}
	return r, nil
}

// State returns the state of the current run, or "idle" if the driver was
// never run.
func (d *Driver) State() string {
	if sm := d.sm.Load(); sm != nil {
		return sm.Current()
	}
	return stateIdle
}

// Run generates and writes the icons.  It does not panic, and all errors are
// reported in the Result.
func (d *Driver) Run(ctx context.Context) Result {
	lg := d.lg.With("run", uuid.NewString(), "root", d.root)
	sm := newRunFSM(lg)
	d.sm.Store(sm)
	con := newConsole(d.console)

	con.Info("Creating PNG icons...")
	gen, err := d.open()
	if err != nil {
		if errors.Is(err, icon.ErrUnavailable) {
			return d.runPlaceholder(ctx, lg, sm, con, err)
		}
		return fail(ctx, lg, sm, con, nil, fmt.Errorf("failed to open imaging backend: %w", err))
	}

	if err := sm.Event(context.WithoutCancel(ctx), evtRender); err != nil {
		return fail(ctx, lg, sm, con, nil, err)
	}
	var files []string
	for _, t := range d.targets {
		if err := ctx.Err(); err != nil {
			return fail(ctx, lg, sm, con, files, err)
		}
		filename := t.Filename(d.root)
		if err := d.generate(gen, t, filename); err != nil {
			return fail(ctx, lg, sm, con, files, fmt.Errorf("%s: %w", t.Name, err))
		}
		lg.DebugContext(ctx, "icon written", "name", t.Name, "size", t.Size, "filename", filename)
		files = append(files, filename)
	}
	if err := sm.Event(context.WithoutCancel(ctx), evtFinish); err != nil {
		return fail(ctx, lg, sm, con, files, err)
	}
	con.Success("PNG icons created successfully!")
	return Result{Outcome: OutcomeComplete, Files: files}
}

// runPlaceholder writes the placeholder in place of the 192 pixel icon.  Other
// icons are not written.
func (d *Driver) runPlaceholder(ctx context.Context, lg *slog.Logger, sm *fsm.FSM, con console, cause error) Result {
	lg.WarnContext(ctx, "imaging backend unavailable, writing placeholder", "error", cause)
	con.Warning("Imaging backend not available, creating placeholder icon...")

	filename := filepath.Join(d.root, filepath.FromSlash(PlaceholderPath))
	if err := writePlaceholder(filename); err != nil {
		return fail(ctx, lg, sm, con, nil, err)
	}
	if err := sm.Event(context.WithoutCancel(ctx), evtDegrade); err != nil {
		return fail(ctx, lg, sm, con, []string{filename}, err)
	}
	con.Warning("Created placeholder icons - will need proper icons for production")
	return Result{Outcome: OutcomePlaceholder, Files: []string{filename}}
}

// fail moves the run to the failed state.  The state machine must record the
// failure even if ctx is cancelled.
func fail(ctx context.Context, lg *slog.Logger, sm *fsm.FSM, con console, files []string, err error) Result {
	if evtErr := sm.Event(context.WithoutCancel(ctx), evtFail, err); evtErr != nil {
		lg.WarnContext(ctx, "fail event", "state", sm.Current(), "error", evtErr)
	}
	con.Error(fmt.Sprintf("Error creating icons: %s", err))
	return Result{Outcome: OutcomeFailed, Files: files, Err: err}
}

func (d *Driver) generate(gen Generator, t Target, filename string) error {
	img, err := gen.Generate(t.Size)
	if err != nil {
		return err
	}
	return writePNG(filename, img, d.compression)
}

func writePNG(filename string, img image.Image, level png.CompressionLevel) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := imaging.Encode(f, img, imaging.PNG, imaging.PNGCompressionLevel(level)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return f.Close()
}

func writePlaceholder(filename string) error {
	data, err := Placeholder()
	if err != nil {
		return fmt.Errorf("failed to decode placeholder: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}
