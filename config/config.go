package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/oliverbestmann/vulp/glimpse"
	"github.com/oliverbestmann/vulp/glm"
	"github.com/oliverbestmann/vulp/palette"
	"github.com/oliverbestmann/vulp/scene"
	"github.com/spf13/viper"
)

type Config struct {
	Log      LogConfig
	Palette  PaletteConfig
	Terminal TerminalConfig
	Window   WindowConfig
	Camera   CameraConfig
	Scene    SceneConfig
	Commands []CommandConfig
}

type LogConfig struct {
	// Level is one of debug, info, warn or error
	Level string
}

type PaletteConfig struct {
	OpenChord string `mapstructure:"open_chord"`

	// Width and Height relative to the viewport
	Width  float32
	Height float32

	RespondShortcuts bool   `mapstructure:"respond_shortcuts"`
	AltBindings      bool   `mapstructure:"alt_bindings"`
	ShowScores       bool   `mapstructure:"show_scores"`
	MenuBarCaret     bool   `mapstructure:"menu_bar_caret"`
	MenuBarItems     bool   `mapstructure:"menu_bar_items"`
	Duplicates       string `mapstructure:"duplicates"`
	PatternCacheSize int    `mapstructure:"pattern_cache_size"`
}

// TerminalConfig overrides palette settings for the terminal, which can
// not tell ctrl+shift+p apart from ctrl+p.
type TerminalConfig struct {
	OpenChord string `mapstructure:"open_chord"`
}

type WindowConfig struct {
	Width   int
	Height  int
	Title   string
	Profile string
}

type CameraConfig struct {
	Distance float32

	// angles in degrees
	Pitch float32
	FovY  float32 `mapstructure:"fov_y"`

	Near float32
	Far  float32
}

type SceneConfig struct {
	Size      int
	CellSize  float32 `mapstructure:"cell_size"`
	MinHeight float32 `mapstructure:"min_height"`
	MaxHeight float32 `mapstructure:"max_height"`
	Frequency float32
	Octaves   int
	Seed      uint64

	// Workers for parallel culling, zero uses all cpus
	Workers int
}

// CommandConfig describes a palette command that runs a process.
type CommandConfig struct {
	ID       string
	Detail   string
	Path     string
	Shortcut string
	Disabled bool

	// Exec is the argv of the process to start when triggered
	Exec []string
}

// Load reads the configuration. If path is empty, the file named by
// VULP_CONFIG is read, or vulp.yaml/vulp.toml from the working directory
// or ~/.config/vulp, if present. Env vars with prefix VULP_ override values.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")

	v.SetDefault("palette.open_chord", "ctrl+shift+p")
	v.SetDefault("palette.width", 0.3)
	v.SetDefault("palette.height", 0.5)
	v.SetDefault("palette.respond_shortcuts", true)
	v.SetDefault("palette.alt_bindings", true)
	v.SetDefault("palette.show_scores", false)
	v.SetDefault("palette.menu_bar_caret", false)
	v.SetDefault("palette.menu_bar_items", false)
	v.SetDefault("palette.duplicates", "reject")
	v.SetDefault("palette.pattern_cache_size", 256)

	v.SetDefault("terminal.open_chord", "ctrl+p")

	v.SetDefault("window.width", 1000)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "vulp")
	v.SetDefault("window.profile", "")

	v.SetDefault("camera.distance", 60)
	v.SetDefault("camera.pitch", 30)
	v.SetDefault("camera.fov_y", 60)
	v.SetDefault("camera.near", 0.1)
	v.SetDefault("camera.far", 200)

	v.SetDefault("scene.size", 128)
	v.SetDefault("scene.cell_size", 1)
	v.SetDefault("scene.min_height", 0.25)
	v.SetDefault("scene.max_height", 12)
	v.SetDefault("scene.frequency", 0.02)
	v.SetDefault("scene.octaves", 4)
	v.SetDefault("scene.seed", 1)
	v.SetDefault("scene.workers", 0)

	v.SetDefault("commands", defaultCommands)

	if path == "" {
		path = os.Getenv("VULP_CONFIG")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("vulp")
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "vulp"))
		}
	}

	v.SetEnvPrefix("VULP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if used := v.ConfigFileUsed(); used != "" {
		slog.Debug("Loaded config", slog.String("path", used))
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}

var defaultCommands = []map[string]any{
	{
		"id":     "shell.date",
		"detail": "Print Date",
		"path":   "Shell/Date",
		"exec":   []string{"date"},
	},
	{
		"id":     "shell.uptime",
		"detail": "Show Uptime",
		"path":   "Shell/Uptime",
		"exec":   []string{"uptime"},
	},
	{
		"id":       "git.status",
		"detail":   "Git Status",
		"path":     "Git/Status",
		"shortcut": "ctrl+g",
		"exec":     []string{"git", "status", "--short"},
	},
}

// SlogLevel parses the configured log level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("parse log level: %w", err)
	}

	return level, nil
}

// PaletteOptions converts the palette section for a desktop host.
func (c Config) PaletteOptions() (palette.Options, error) {
	return c.Palette.options(c.Palette.OpenChord)
}

// TerminalPaletteOptions is like PaletteOptions but uses the terminal open chord.
func (c Config) TerminalPaletteOptions() (palette.Options, error) {
	return c.Palette.options(c.Terminal.OpenChord)
}

func (c PaletteConfig) options(openChord string) (palette.Options, error) {
	chord, err := glimpse.ParseChord(openChord)
	if err != nil {
		return palette.Options{}, fmt.Errorf("palette open chord: %w", err)
	}

	duplicates, err := palette.ParseDuplicatePolicy(c.Duplicates)
	if err != nil {
		return palette.Options{}, err
	}

	return palette.Options{
		OpenChord:        chord,
		Size:             glm.Vec2f{c.Width, c.Height},
		RespondShortcuts: c.RespondShortcuts,
		AltBindings:      c.AltBindings,
		ShowScores:       c.ShowScores,
		MenuBarCaret:     c.MenuBarCaret,
		MenuBarItems:     c.MenuBarItems,
		Duplicates:       duplicates,
		PatternCacheSize: c.PatternCacheSize,
	}, nil
}

// Command converts the entry into a palette command without a handler.
func (c CommandConfig) Command() (palette.Command, error) {
	shortcut, err := glimpse.ParseChord(c.Shortcut)
	if err != nil {
		return palette.Command{}, fmt.Errorf("command %q: %w", c.ID, err)
	}

	detail := c.Detail
	if detail == "" {
		detail = c.ID
	}

	return palette.Command{
		ID:       c.ID,
		Detail:   detail,
		Path:     c.Path,
		Shortcut: shortcut,
		Disabled: c.Disabled || len(c.Exec) == 0,
	}, nil
}

func (c CameraConfig) OrbitCamera() scene.OrbitCamera {
	return scene.OrbitCamera{
		Distance: c.Distance,
		Pitch:    glm.DegToRad(c.Pitch),
		FovY:     glm.DegToRad(c.FovY),
		Near:     c.Near,
		Far:      c.Far,
	}
}

func (c SceneConfig) TerrainOptions() scene.TerrainOptions {
	return scene.TerrainOptions{
		Size:      c.Size,
		CellSize:  c.CellSize,
		MinHeight: c.MinHeight,
		MaxHeight: c.MaxHeight,
		Frequency: c.Frequency,
		Octaves:   c.Octaves,
		Seed:      c.Seed,
	}
}
