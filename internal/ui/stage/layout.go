package stage

import "fyne.io/fyne/v2"

// stageLayout stretches the background, pins the sprite to the left edge at
// mid height and puts the label a fixed distance above the bottom edge.
type stageLayout struct {
	spriteSize  fyne.Size
	labelOffset float32
}

func (layout *stageLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	background := objects[0]
	sprite := objects[1]
	label := objects[2]

	background.Move(fyne.NewPos(0, 0))
	background.Resize(size)

	spriteY := (size.Height - layout.spriteSize.Height) / 2
	sprite.Move(fyne.NewPos(0, spriteY))
	sprite.Resize(layout.spriteSize)

	labelSize := label.MinSize()
	labelY := size.Height - layout.labelOffset
	if labelY < 0 {
		labelY = 0
	}
	label.Move(fyne.NewPos(0, labelY))
	label.Resize(labelSize)
}

func (layout *stageLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	labelSize := objects[2].MinSize()
	width := layout.spriteSize.Width
	if labelSize.Width > width {
		width = labelSize.Width
	}
	height := layout.spriteSize.Height
	if layout.labelOffset > height {
		height = layout.labelOffset
	}
	return fyne.NewSize(width, height)
}
