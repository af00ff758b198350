package resources

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

const imageDir = "images"

//go:embed images/*.bmp
var imageFS embed.FS

// Images returns the embedded animation frames rooted at the image directory.
func Images() fs.FS {
	sub, err := fs.Sub(imageFS, imageDir)
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}

// ImagesFrom returns the frames in dir, or the embedded frames when dir is empty.
func ImagesFrom(dir string) (fs.FS, error) {
	if dir == "" {
		return Images(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open image dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open image dir %s: not a directory", dir)
	}
	return os.DirFS(dir), nil
}
