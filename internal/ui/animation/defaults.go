package animation

import "fmt"

const (
	// DefaultDelayStep is the delay change applied by one speed key press.
	DefaultDelayStep = 10
	// DefaultDelayMs is the starting delay between two frames.
	DefaultDelayMs = 100
	// DefaultFrameCount is the number of frames in the cat animation.
	DefaultFrameCount = 6
	// DefaultFramePattern names frame i of the animation.
	DefaultFramePattern = "cat%d.bmp"
)

// FrameNames returns the file names pattern%0 .. pattern%(count-1).
func FrameNames(pattern string, count int) []string {
	if count <= 0 {
		return nil
	}
	names := make([]string, count)
	for i := range names {
		names[i] = fmt.Sprintf(pattern, i)
	}
	return names
}
