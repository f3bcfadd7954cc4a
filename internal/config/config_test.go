package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}

	if cfg.Camera.MinRadius != 2 || cfg.Camera.MaxRadius != 20 {
		t.Errorf("expected radius bounds [2, 20], got [%v, %v]", cfg.Camera.MinRadius, cfg.Camera.MaxRadius)
	}

	if len(cfg.Scene.Slots) != 4 {
		t.Errorf("expected 4 slots, got %d", len(cfg.Scene.Slots))
	}
	if cfg.Scene.CycleSpeed != 0.02 {
		t.Errorf("expected cycle speed 0.02, got %v", cfg.Scene.CycleSpeed)
	}
	if cfg.Scene.MergeSpeed != 0.01 {
		t.Errorf("expected merge speed 0.01, got %v", cfg.Scene.MergeSpeed)
	}
	if cfg.Scene.ArriveEpsilon != 0.01 {
		t.Errorf("expected arrive epsilon 0.01, got %v", cfg.Scene.ArriveEpsilon)
	}
	if cfg.Scene.FlashDuration != 3*time.Second {
		t.Errorf("expected flash duration 3s, got %v", cfg.Scene.FlashDuration)
	}
	if cfg.Scene.FlashInterval != 100*time.Millisecond {
		t.Errorf("expected flash interval 100ms, got %v", cfg.Scene.FlashInterval)
	}

	if len(cfg.Textures.Paths) != 5 || cfg.Textures.DefaultIndex != 4 {
		t.Errorf("expected 5 textures with default 4, got %d with default %d", len(cfg.Textures.Paths), cfg.Textures.DefaultIndex)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  radius: 12
  max_radius: 30

scene:
  slots:
    - [1, 0, 0]
    - [-1, 0, 0]
  flash_duration: 1500ms
  seed: 42

textures:
  paths: [a.png, b.png, c.png, d.png, e.png, f.png]
  default_index: 5

logging:
  level: "debug"
  log_file: "cubes.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Camera.Radius != 12 || cfg.Camera.MaxRadius != 30 {
		t.Errorf("expected radius 12 max 30, got %v max %v", cfg.Camera.Radius, cfg.Camera.MaxRadius)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Camera.MinRadius != 2 {
		t.Errorf("expected min radius to stay 2, got %v", cfg.Camera.MinRadius)
	}

	if len(cfg.Scene.Slots) != 2 || cfg.Scene.Slots[1] != [3]float32{-1, 0, 0} {
		t.Errorf("expected 2 slots from file, got %v", cfg.Scene.Slots)
	}
	if cfg.Scene.FlashDuration != 1500*time.Millisecond {
		t.Errorf("expected flash duration 1.5s, got %v", cfg.Scene.FlashDuration)
	}
	if cfg.Scene.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Scene.Seed)
	}

	if len(cfg.Textures.Paths) != 6 || cfg.Textures.DefaultIndex != 5 {
		t.Errorf("expected 6 textures with default 5, got %v default %d", cfg.Textures.Paths, cfg.Textures.DefaultIndex)
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "cubes.log" {
		t.Errorf("expected debug/cubes.log, got %s/%s", cfg.Logging.Level, cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
scene:
  focus: [1, 2]
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for a two-element focus vector, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"too few textures", func(c *Config) { c.Textures.Paths = c.Textures.Paths[:4] }, "need at least 5"},
		{"default index out of range", func(c *Config) { c.Textures.DefaultIndex = 9 }, "default_index 9"},
		{"no slots", func(c *Config) { c.Scene.Slots = nil }, "at least one slot"},
		{"inverted radius", func(c *Config) { c.Camera.MinRadius = 25 }, "radius bounds"},
		{"zero merge speed", func(c *Config) { c.Scene.MergeSpeed = 0 }, "merge_speed"},
		{"zero flash duration", func(c *Config) { c.Scene.FlashDuration = 0 }, "flash_duration"},
		{"bad clip planes", func(c *Config) { c.Graphics.Far = 0.05 }, "near"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Scene.Slots = nil
	cfg.Textures.Paths = nil

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "slot") || !strings.Contains(msg, "textures") {
		t.Errorf("expected both slot and texture errors, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Seed = 7
	cfg.Textures.DefaultIndex = 0
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Scene.Seed != 7 || loaded.Textures.DefaultIndex != 0 {
		t.Errorf("saved values not restored: seed %d default %d", loaded.Scene.Seed, loaded.Textures.DefaultIndex)
	}
	if loaded.Scene.FlashDuration != cfg.Scene.FlashDuration {
		t.Errorf("flash duration %v, want %v", loaded.Scene.FlashDuration, cfg.Scene.FlashDuration)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "seed flag",
			setup: func() { *flagSeed = 99 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Seed != 99 {
					t.Errorf("expected seed 99, got %d", cfg.Scene.Seed)
				}
			},
			teardown: func() { *flagSeed = 0 },
		},
		{
			name:  "textures dir flag",
			setup: func() { *flagTexturesDir = "/srv/tex" },
			verify: func(t *testing.T, cfg *Config) {
				want := filepath.Join("/srv/tex", "texture_05.jpg")
				if cfg.Textures.Paths[4] != want {
					t.Errorf("expected %s, got %s", want, cfg.Textures.Paths[4])
				}
			},
			teardown: func() { *flagTexturesDir = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("textures:\n  paths: [only.png]\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject a single-texture config")
	}
}
