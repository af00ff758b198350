package animation

import (
	"fmt"
	"image"
	"io/fs"

	// Frame decoders.
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Frame is one decoded still image of the animation.
type Frame struct {
	Name  string
	Image image.Image
}

// LoadError reports a frame that could not be opened or decoded.
type LoadError struct {
	Name string
	Err  error
}

func (err *LoadError) Error() string {
	return fmt.Sprintf("load frame %s: %v", err.Name, err.Err)
}

func (err *LoadError) Unwrap() error {
	return err.Err
}

// LoadFrames decodes every named file from fsys, in order.
// Loading is all-or-nothing: the first failure is returned as a *LoadError.
func LoadFrames(fsys fs.FS, names []string) ([]Frame, error) {
	if len(names) == 0 {
		return nil, ErrNoFrames
	}
	frames := make([]Frame, 0, len(names))
	for _, name := range names {
		frame, err := loadFrame(fsys, name)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func loadFrame(fsys fs.FS, name string) (Frame, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return Frame{}, &LoadError{Name: name, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return Frame{}, &LoadError{Name: name, Err: fmt.Errorf("decode: %w", err)}
	}
	return Frame{Name: name, Image: img}, nil
}
