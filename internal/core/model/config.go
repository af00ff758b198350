package model

import (
	"image/color"
	"time"

	"catanim/internal/ui/animation"
)

// WindowConfig describes the fixed-size stage window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	// X and Y are the requested initial screen position.
	X int
	Y int
}

// AnimationConfig describes the frame set and its timing.
type AnimationConfig struct {
	// ImageDir is read instead of the embedded frames when set.
	ImageDir     string
	FramePattern string
	FrameCount   int
	InitialDelay time.Duration
	DelayStep    time.Duration
}

// LabelConfig describes the diagnostic text.
type LabelConfig struct {
	FontSize float32
	Color    color.Color
	// Offset is the distance of the label from the bottom edge.
	Offset int
}

// Config is the immutable application configuration.
type Config struct {
	Window     WindowConfig
	Animation  AnimationConfig
	Label      LabelConfig
	Background color.Color
	TickRate   int
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Animation",
			Width:  1024,
			Height: 400,
			X:      10,
			Y:      50,
		},
		Animation: AnimationConfig{
			FramePattern: animation.DefaultFramePattern,
			FrameCount:   animation.DefaultFrameCount,
			InitialDelay: animation.DefaultDelayMs * time.Millisecond,
			DelayStep:    animation.DefaultDelayStep * time.Millisecond,
		},
		Label: LabelConfig{
			FontSize: 12,
			Color:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Offset:   50,
		},
		Background: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		TickRate:   60,
	}
}

// TickInterval returns the pause between two loop ticks.
func (config Config) TickInterval() time.Duration {
	if config.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(config.TickRate)
}

// InitialDelayMs returns the starting frame delay in milliseconds.
func (config Config) InitialDelayMs() int {
	return int(config.Animation.InitialDelay / time.Millisecond)
}

// DelayStepMs returns the speed key step in milliseconds.
func (config Config) DelayStepMs() int {
	return int(config.Animation.DelayStep / time.Millisecond)
}
