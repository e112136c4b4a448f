package targeting

import (
	"errors"
	"log"

	"marblenav/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNoProjector = errors.New("targeting: projector is required")
	ErrNoViewpoint = errors.New("targeting: viewpoint is required")
	ErrNoInput     = errors.New("targeting: input source is required")
)

// Marker is a visual stand-in for a world position, such as the crosshair
// or the target flag.
type Marker interface {
	SetPosition(pos rl.Vector3)
	SetActive(active bool)
}

type BroadcasterOptions struct {
	Projector *Projector
	Viewpoint Viewpoint
	Input     InputSource

	// Optional markers kept in sync with Cursor and Target.
	Crosshair Marker
	Target    Marker

	Logger *log.Logger
}

// Broadcaster owns the cursor and the selected target. Each tick it moves
// the cursor to the projected pointer position; on a select edge it commits
// the cursor as the target and notifies subscribers.
//
// A Broadcaster is driven from the frame loop and is not safe for concurrent
// use.
type Broadcaster struct {
	projector *Projector
	view      Viewpoint
	input     InputSource
	crosshair Marker
	marker    Marker
	logger    *log.Logger

	cursor       rl.Vector3
	target       rl.Vector3
	targetActive bool
	lastSample   PointerSample

	targetSelected engine.Event[rl.Vector3]
}

// NewBroadcaster validates opts, hides the system cursor and hides the target
// marker until the first selection.
func NewBroadcaster(opts BroadcasterOptions) (*Broadcaster, error) {
	if opts.Projector == nil {
		return nil, ErrNoProjector
	}
	if opts.Viewpoint == nil {
		return nil, ErrNoViewpoint
	}
	if opts.Input == nil {
		return nil, ErrNoInput
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	b := &Broadcaster{
		projector: opts.Projector,
		view:      opts.Viewpoint,
		input:     opts.Input,
		crosshair: opts.Crosshair,
		marker:    opts.Target,
		logger:    logger,
	}

	b.input.HideCursor()
	if b.marker != nil {
		b.marker.SetActive(false)
	}
	return b, nil
}

// Subscribe adds fn to the target-selected listeners. name identifies the
// listener in failure logs.
func (b *Broadcaster) Subscribe(name string, fn func(worldPos rl.Vector3)) engine.ListenerID {
	return b.targetSelected.AddNamedListener(name, fn)
}

func (b *Broadcaster) Unsubscribe(id engine.ListenerID) bool {
	return b.targetSelected.RemoveListener(id)
}

func (b *Broadcaster) SubscriberCount() int {
	return b.targetSelected.GetListenerCount()
}

// Poll samples the input source and ticks once.
func (b *Broadcaster) Poll() error {
	return b.Tick(b.input.Sample())
}

// Tick advances one frame. A projection miss leaves the cursor where it was.
// The returned error joins one *engine.ListenerError per subscriber that
// panicked; the remaining subscribers are still notified.
func (b *Broadcaster) Tick(sample PointerSample) error {
	b.lastSample = sample

	if pos, ok := b.projector.Project(sample.Position, b.view); ok {
		b.cursor = pos
		if b.crosshair != nil {
			b.crosshair.SetPosition(pos)
		}
	}

	if !sample.Select {
		return nil
	}
	return b.selectTarget()
}

func (b *Broadcaster) selectTarget() error {
	b.target = b.cursor
	if b.marker != nil {
		// Shown on every select: something else may have hidden it.
		b.marker.SetActive(true)
		b.marker.SetPosition(b.target)
	}
	b.targetActive = true

	err := b.targetSelected.Invoke(b.target)
	if err != nil {
		b.logFailures(err)
	}
	return err
}

func (b *Broadcaster) logFailures(err error) {
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}
	for _, e := range errs {
		b.logger.Printf("Targeting: target-selected %v", e)
	}
}

// Cursor returns the last projected pointer position (origin before the
// first hit).
func (b *Broadcaster) Cursor() rl.Vector3 {
	return b.cursor
}

// Target returns the committed target and whether one has been selected.
func (b *Broadcaster) Target() (rl.Vector3, bool) {
	return b.target, b.targetActive
}

// LastSample returns the most recent input sample, for debug display.
func (b *Broadcaster) LastSample() PointerSample {
	return b.lastSample
}

func (b *Broadcaster) Projector() *Projector {
	return b.projector
}

// Close drops every subscriber.
func (b *Broadcaster) Close() {
	b.targetSelected.RemoveAllListeners()
}
