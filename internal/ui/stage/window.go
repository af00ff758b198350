package stage

import (
	"fmt"
	"image"
	"log"

	"catanim/internal/core/loop"
	"catanim/internal/core/model"
	"catanim/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Window is the fixed-size window showing the animated sprite.
type Window struct {
	window     fyne.Window
	config     model.Config
	background *canvas.Rectangle
	sprite     *canvas.Image
	label      *canvas.Text
	content    *fyne.Container
	layout     *stageLayout
	onCommand  func(loop.Command)
}

// New creates the stage window. It is not shown until Show is called.
func New(app fyne.App, config model.Config) *Window {
	window := app.NewWindow(config.Window.Title)
	window.SetPadded(false)
	window.SetFixedSize(true)

	background := canvas.NewRectangle(config.Background)

	sprite := canvas.NewImageFromImage(nil)
	sprite.FillMode = canvas.ImageFillOriginal
	sprite.ScaleMode = canvas.ImageScalePixels

	label := canvas.NewText(LabelText(config.InitialDelayMs()), config.Label.Color)
	label.Alignment = fyne.TextAlignLeading
	label.TextSize = config.Label.FontSize

	layout := &stageLayout{labelOffset: float32(config.Label.Offset)}
	content := container.New(layout, background, sprite, label)
	window.SetContent(content)
	window.Resize(fyne.NewSize(float32(config.Window.Width), float32(config.Window.Height)))

	stage := &Window{
		window:     window,
		config:     config,
		background: background,
		sprite:     sprite,
		label:      label,
		content:    content,
		layout:     layout,
	}

	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		stage.handleKey(event.Name)
	})
	window.SetCloseIntercept(func() {
		stage.emit(loop.CommandQuit)
	})

	return stage
}

// SetOnCommand sets the handler receiving keyboard and window commands.
func (stage *Window) SetOnCommand(handler func(loop.Command)) {
	stage.onCommand = handler
}

// Show places and displays the window.
func (stage *Window) Show() {
	// fyne has no window placement API; the requested position is only logged.
	log.Printf("stage: requested position %d,%d, centering instead", stage.config.Window.X, stage.config.Window.Y)
	stage.window.CenterOnScreen()
	stage.window.Show()
	stage.window.RequestFocus()
}

// Close closes the window.
func (stage *Window) Close() {
	stage.window.Close()
}

// Render draws frame and the delay label. It must run on the UI goroutine.
func (stage *Window) Render(frame animation.Frame, delayMs int) {
	stage.setSpriteUnsafe(frame.Image)
	stage.setLabelUnsafe(LabelText(delayMs))
}

// LabelText returns the diagnostic text for delayMs.
func LabelText(delayMs int) string {
	return fmt.Sprintf("animation time: %d", delayMs)
}

func (stage *Window) handleKey(key fyne.KeyName) {
	command := CommandForKey(key)
	if command == loop.CommandNone {
		return
	}
	stage.emit(command)
}

func (stage *Window) emit(command loop.Command) {
	if stage.onCommand == nil {
		if command == loop.CommandQuit {
			stage.Close()
		}
		return
	}
	stage.onCommand(command)
}

func (stage *Window) setSpriteUnsafe(img image.Image) {
	if stage.sprite.Image == img {
		return
	}
	stage.sprite.Image = img
	if img != nil {
		bounds := img.Bounds()
		size := fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy()))
		if size != stage.layout.spriteSize {
			stage.layout.spriteSize = size
			stage.sprite.SetMinSize(size)
			stage.content.Refresh()
		}
	}
	stage.sprite.Refresh()
}

func (stage *Window) setLabelUnsafe(text string) {
	if stage.label.Text == text {
		return
	}
	stage.label.Text = text
	stage.label.Refresh()
}
