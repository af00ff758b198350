package loop

import "time"

// Clock reports milliseconds on a monotonic timeline.
type Clock interface {
	NowMs() int64
}

type monotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a clock counting milliseconds since its creation.
func NewMonotonicClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (clock *monotonicClock) NowMs() int64 {
	return time.Since(clock.start).Milliseconds()
}
