package loop

import (
	"context"
	"log"
	"sync"
	"time"

	"catanim/internal/ui/animation"
)

// Renderer draws one tick of the animation.
type Renderer interface {
	Render(frame animation.Frame, delayMs int)
}

// Config contains runtime options for the Loop.
type Config struct {
	TickInterval time.Duration
	DelayStepMs  int
	// Schedule runs a tick on the goroutine that owns the sequencer and the
	// renderer. Ticks run inline when it is nil.
	Schedule func(func())
	OnQuit   func()
}

// Loop drives a Sequencer at a fixed rate and applies user commands to it.
type Loop struct {
	mu        sync.Mutex
	sequencer *animation.Sequencer
	clock     Clock
	renderer  Renderer
	options   Config
	running   bool
	stopCh    chan struct{}
}

// New creates a running loop. Call Run to start ticking.
func New(sequencer *animation.Sequencer, clock Clock, renderer Renderer, options Config) *Loop {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second / 60
	}
	if options.DelayStepMs <= 0 {
		options.DelayStepMs = animation.DefaultDelayStep
	}
	if options.Schedule == nil {
		options.Schedule = func(fn func()) { fn() }
	}
	return &Loop{
		sequencer: sequencer,
		clock:     clock,
		renderer:  renderer,
		options:   options,
		running:   true,
		stopCh:    make(chan struct{}),
	}
}

// Running reports whether the loop still accepts ticks.
func (loop *Loop) Running() bool {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	return loop.running
}

// Tick updates the sequencer with the current time and renders the result.
func (loop *Loop) Tick() {
	if !loop.Running() {
		return
	}
	frame := loop.sequencer.Update(loop.clock.NowMs())
	loop.renderer.Render(frame, loop.sequencer.DelayMs())
}

// Handle applies a command. Unknown commands are ignored.
func (loop *Loop) Handle(command Command) {
	if !loop.Running() {
		return
	}
	switch command {
	case CommandSpeedUp:
		loop.sequencer.DecreaseDelay(loop.options.DelayStepMs)
	case CommandSlowDown:
		loop.sequencer.IncreaseDelay(loop.options.DelayStepMs)
	case CommandQuit:
		loop.Stop()
	}
}

// Run ticks until the context is cancelled or the loop is stopped.
func (loop *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(loop.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			loop.Stop()
			return
		case <-loop.stopCh:
			return
		case <-ticker.C:
			loop.options.Schedule(loop.Tick)
		}
	}
}

// Stop ends the loop and fires OnQuit once.
func (loop *Loop) Stop() {
	loop.mu.Lock()
	if !loop.running {
		loop.mu.Unlock()
		return
	}
	loop.running = false
	close(loop.stopCh)
	onQuit := loop.options.OnQuit
	loop.mu.Unlock()

	log.Printf("loop: stopped")
	if onQuit != nil {
		onQuit()
	}
}
