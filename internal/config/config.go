// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds main window settings.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ViewerConfig holds image panel settings.
type ViewerConfig struct {
	ZoomStep float32 `yaml:"zoom_step"`
	MinZoom  float32 `yaml:"min_zoom"`
	MaxZoom  float32 `yaml:"max_zoom"`
}

// ScreenshotConfig holds framebuffer capture settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
		},
		Viewer: ViewerConfig{
			ZoomStep: 0.25,
			MinZoom:  0.25,
			MaxZoom:  8.0,
		},
		Screenshot: ScreenshotConfig{
			Dir: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
