// Package config handles application configuration loading and management.
package config

// Config holds all app settings. Scene tuning lives in package hero as constants.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    DebugConfig    `yaml:"debug"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	HiDPI      bool `yaml:"hidpi"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	Volume float64 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`
	// WarpSound is an optional WAV file played instead of the synthesized sweep.
	WarpSound string `yaml:"warp_sound"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer conveniences.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	LogFPS        bool   `yaml:"log_fps"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			HiDPI:      true,
		},
		Audio: AudioConfig{
			Volume: 0.6,
			Muted:  false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
			LogFPS:        false,
		},
	}
}
