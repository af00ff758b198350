package main

import (
	"context"
	"log"

	"catanim/internal/core/loop"
	"catanim/internal/storage"
	"catanim/internal/ui/animation"
	"catanim/internal/ui/stage"
	"catanim/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const appName = "catanim"

func main() {
	config, err := storage.LoadConfig(appName)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
	}

	images, err := resources.ImagesFrom(config.Animation.ImageDir)
	if err != nil {
		log.Fatalf("assets: %v", err)
	}

	clock := loop.NewMonotonicClock()
	names := animation.FrameNames(config.Animation.FramePattern, config.Animation.FrameCount)
	sequencer, err := animation.Load(images, names, config.InitialDelayMs(), clock.NowMs())
	if err != nil {
		log.Fatalf("animation: %v", err)
	}

	fyneApp := app.NewWithID("com.catanim.app")
	stageWindow := stage.New(fyneApp, config)

	gameLoop := loop.New(sequencer, clock, stageWindow, loop.Config{
		TickInterval: config.TickInterval(),
		DelayStepMs:  config.DelayStepMs(),
		Schedule:     fyne.Do,
		OnQuit: func() {
			stageWindow.Close()
			fyneApp.Quit()
		},
	})
	stageWindow.SetOnCommand(gameLoop.Handle)
	stageWindow.Render(sequencer.Current(), sequencer.DelayMs())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go gameLoop.Run(ctx)

	stageWindow.Show()
	fyneApp.Run()
}
