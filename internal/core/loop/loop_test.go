package loop

import (
	"context"
	"image"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"catanim/internal/ui/animation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now atomic.Int64
}

func (clock *fakeClock) NowMs() int64 {
	return clock.now.Load()
}

func (clock *fakeClock) Set(now int64) {
	clock.now.Store(now)
}

type renderCall struct {
	frame   string
	delayMs int
}

type fakeRenderer struct {
	mu    sync.Mutex
	calls []renderCall
}

func (renderer *fakeRenderer) Render(frame animation.Frame, delayMs int) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	renderer.calls = append(renderer.calls, renderCall{frame: frame.Name, delayMs: delayMs})
}

func (renderer *fakeRenderer) Calls() []renderCall {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	return append([]renderCall(nil), renderer.calls...)
}

func newTestLoop(t *testing.T, options Config) (*Loop, *fakeClock, *fakeRenderer, *animation.Sequencer) {
	t.Helper()
	names := animation.FrameNames(animation.DefaultFramePattern, animation.DefaultFrameCount)
	frames := make([]animation.Frame, len(names))
	for i, name := range names {
		frames[i] = animation.Frame{Name: name, Image: image.NewRGBA(image.Rect(0, 0, 1, 1))}
	}
	sequencer, err := animation.NewSequencer(frames, 100, 0)
	require.NoError(t, err)

	clock := &fakeClock{}
	renderer := &fakeRenderer{}
	return New(sequencer, clock, renderer, options), clock, renderer, sequencer
}

func TestTickRendersCurrentFrameAndDelay(t *testing.T) {
	loop, clock, renderer, _ := newTestLoop(t, Config{})

	loop.Tick()
	clock.Set(50)
	loop.Tick()
	clock.Set(150)
	loop.Tick()
	clock.Set(151)
	loop.Tick()

	assert.Equal(t, []renderCall{
		{frame: "cat0.bmp", delayMs: 100},
		{frame: "cat1.bmp", delayMs: 100},
		{frame: "cat1.bmp", delayMs: 100},
		{frame: "cat2.bmp", delayMs: 100},
	}, renderer.Calls())
}

func TestHandleSpeedCommands(t *testing.T) {
	loop, _, renderer, sequencer := newTestLoop(t, Config{DelayStepMs: 10})

	loop.Handle(CommandSpeedUp)
	assert.Equal(t, 90, sequencer.DelayMs())

	loop.Handle(CommandSlowDown)
	loop.Handle(CommandSlowDown)
	assert.Equal(t, 110, sequencer.DelayMs())

	loop.Tick()
	require.Len(t, renderer.Calls(), 1)
	assert.Equal(t, 110, renderer.Calls()[0].delayMs)
}

func TestHandleSpeedUpStopsAtZero(t *testing.T) {
	loop, _, _, sequencer := newTestLoop(t, Config{DelayStepMs: 30})

	for i := 0; i < 5; i++ {
		loop.Handle(CommandSpeedUp)
	}
	assert.Equal(t, 0, sequencer.DelayMs())
}

func TestHandleIgnoresUnknownCommands(t *testing.T) {
	loop, _, _, sequencer := newTestLoop(t, Config{})

	loop.Handle(CommandNone)
	loop.Handle(Command("jump"))

	assert.Equal(t, 100, sequencer.DelayMs())
	assert.True(t, loop.Running())
}

func TestQuitStopsTicksAndFiresOnce(t *testing.T) {
	quits := 0
	loop, clock, renderer, _ := newTestLoop(t, Config{OnQuit: func() { quits++ }})

	loop.Handle(CommandQuit)
	assert.False(t, loop.Running())

	clock.Set(1000)
	loop.Tick()
	loop.Handle(CommandSlowDown)
	loop.Handle(CommandQuit)
	loop.Stop()

	assert.Empty(t, renderer.Calls())
	assert.Equal(t, 1, quits)
}

func TestRunTicksThroughScheduler(t *testing.T) {
	var scheduled atomic.Int32
	loop, clock, renderer, _ := newTestLoop(t, Config{
		TickInterval: time.Millisecond,
		Schedule: func(fn func()) {
			scheduled.Add(1)
			fn()
		},
	})
	clock.Set(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(renderer.Calls()) >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return after cancel")
	}
	assert.False(t, loop.Running())
	assert.GreaterOrEqual(t, int(scheduled.Load()), 3)
	assert.Equal(t, "cat1.bmp", renderer.Calls()[0].frame)
}

func TestRunReturnsAfterQuit(t *testing.T) {
	loop, _, _, _ := newTestLoop(t, Config{TickInterval: time.Millisecond})

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background())
		close(done)
	}()

	loop.Handle(CommandQuit)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return after quit")
	}
}

func TestMonotonicClockDoesNotGoBackwards(t *testing.T) {
	clock := NewMonotonicClock()
	first := clock.NowMs()
	time.Sleep(2 * time.Millisecond)
	second := clock.NowMs()

	assert.GreaterOrEqual(t, first, int64(0))
	assert.Greater(t, second, first)
}
