package storage

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"catanim/internal/core/model"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

type yamlConfig struct {
	Window struct {
		Width  int  `yaml:"width"`
		Height int  `yaml:"height"`
		X      *int `yaml:"x"`
		Y      *int `yaml:"y"`
	} `yaml:"window"`
	Animation struct {
		ImageDir       string `yaml:"image_dir"`
		FrameCount     int    `yaml:"frame_count"`
		InitialDelayMs *int   `yaml:"initial_delay_ms"`
		DelayStepMs    int    `yaml:"delay_step_ms"`
	} `yaml:"animation"`
	Label struct {
		FontSize float32 `yaml:"font_size"`
		Color    string  `yaml:"color"`
		Offset   int     `yaml:"offset"`
	} `yaml:"label"`
	Background string `yaml:"background"`
	TickRate   int    `yaml:"tick_rate"`
}

// LoadConfig reads overrides from the user config directory.
// If the config file does not exist, the default config is returned.
func LoadConfig(appName string) (model.Config, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return model.DefaultConfig(), err
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile reads overrides from path on top of the default config.
// Values that are out of range keep their default.
func LoadConfigFile(path string) (model.Config, error) {
	config := model.DefaultConfig()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	applyYamlConfig(&config, fileData)
	return config, nil
}

// ResolveConfigPath returns the location of the config file for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

func applyYamlConfig(config *model.Config, fileData yamlConfig) {
	if fileData.Window.Width > 0 {
		config.Window.Width = fileData.Window.Width
	}
	if fileData.Window.Height > 0 {
		config.Window.Height = fileData.Window.Height
	}
	if fileData.Window.X != nil {
		config.Window.X = *fileData.Window.X
	}
	if fileData.Window.Y != nil {
		config.Window.Y = *fileData.Window.Y
	}

	config.Animation.ImageDir = fileData.Animation.ImageDir
	if fileData.Animation.FrameCount > 0 {
		config.Animation.FrameCount = fileData.Animation.FrameCount
	}
	if delay := fileData.Animation.InitialDelayMs; delay != nil && *delay >= 0 {
		config.Animation.InitialDelay = time.Duration(*delay) * time.Millisecond
	}
	if fileData.Animation.DelayStepMs > 0 {
		config.Animation.DelayStep = time.Duration(fileData.Animation.DelayStepMs) * time.Millisecond
	}

	if fileData.Label.FontSize > 0 {
		config.Label.FontSize = fileData.Label.FontSize
	}
	if value, ok := parseColor(fileData.Label.Color); ok {
		config.Label.Color = value
	}
	if fileData.Label.Offset > 0 {
		config.Label.Offset = fileData.Label.Offset
	}

	if value, ok := parseColor(fileData.Background); ok {
		config.Background = value
	}
	if fileData.TickRate > 0 {
		config.TickRate = fileData.TickRate
	}
}

func parseColor(hex string) (color.Color, bool) {
	if hex == "" {
		return nil, false
	}
	parsed, err := colorful.Hex(hex)
	if err != nil {
		return nil, false
	}
	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, true
}
