package animation

import (
	"errors"
	"io/fs"
)

var (
	// ErrNoFrames indicates a sequencer was built without frames.
	ErrNoFrames = errors.New("animation has no frames")
	// ErrNegativeDelay indicates a negative initial frame delay.
	ErrNegativeDelay = errors.New("frame delay must not be negative")
)

// Sequencer cycles through a fixed list of frames on a millisecond timer.
//
// Times are absolute millisecond ticks from a monotonic clock. A Sequencer is
// not safe for concurrent use.
type Sequencer struct {
	frames        []Frame
	index         int
	delayMs       int
	nextAdvanceAt int64
}

// NewSequencer creates a sequencer showing frames[0], with the first advance
// due after now.
func NewSequencer(frames []Frame, initialDelayMs int, now int64) (*Sequencer, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if initialDelayMs < 0 {
		return nil, ErrNegativeDelay
	}
	return &Sequencer{
		frames:        append([]Frame(nil), frames...),
		delayMs:       initialDelayMs,
		nextAdvanceAt: now,
	}, nil
}

// Load decodes the named frames from fsys and builds a sequencer from them.
func Load(fsys fs.FS, names []string, initialDelayMs int, now int64) (*Sequencer, error) {
	frames, err := LoadFrames(fsys, names)
	if err != nil {
		return nil, err
	}
	return NewSequencer(frames, initialDelayMs, now)
}

// Update advances to the next frame once now is strictly past the due time
// and returns the frame to display.
func (sequencer *Sequencer) Update(now int64) Frame {
	if now > sequencer.nextAdvanceAt {
		sequencer.nextAdvanceAt = now + int64(sequencer.delayMs)
		sequencer.index = (sequencer.index + 1) % len(sequencer.frames)
	}
	return sequencer.frames[sequencer.index]
}

// IncreaseDelay slows the animation down by step milliseconds.
// A non-positive step means DefaultDelayStep.
func (sequencer *Sequencer) IncreaseDelay(step int) {
	sequencer.ChangeDelay(normalizeStep(step))
}

// DecreaseDelay speeds the animation up by step milliseconds, stopping at zero.
// A non-positive step means DefaultDelayStep.
func (sequencer *Sequencer) DecreaseDelay(step int) {
	sequencer.ChangeDelay(-normalizeStep(step))
}

// ChangeDelay adds delta to the frame delay. The result never drops below zero.
func (sequencer *Sequencer) ChangeDelay(delta int) {
	sequencer.delayMs += delta
	if sequencer.delayMs < 0 {
		sequencer.delayMs = 0
	}
}

// Current returns the frame on display.
func (sequencer *Sequencer) Current() Frame {
	return sequencer.frames[sequencer.index]
}

// Index returns the position of the frame on display.
func (sequencer *Sequencer) Index() int {
	return sequencer.index
}

// Len returns the number of frames.
func (sequencer *Sequencer) Len() int {
	return len(sequencer.frames)
}

// DelayMs returns the delay between two frames in milliseconds.
func (sequencer *Sequencer) DelayMs() int {
	return sequencer.delayMs
}

// NextAdvanceAt returns the tick after which the next frame is shown.
func (sequencer *Sequencer) NextAdvanceAt() int64 {
	return sequencer.nextAdvanceAt
}

func normalizeStep(step int) int {
	if step <= 0 {
		return DefaultDelayStep
	}
	return step
}
