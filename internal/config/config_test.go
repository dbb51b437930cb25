package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Terrain.HeightScale != 20 {
		t.Errorf("expected height scale 20, got %f", cfg.Terrain.HeightScale)
	}
	if cfg.Terrain.UVScale != -2 {
		t.Errorf("expected uv scale -2, got %f", cfg.Terrain.UVScale)
	}
	if !cfg.Terrain.FlipVertical {
		t.Error("expected flip_vertical to be true by default")
	}

	if cfg.Path.VerticalOffset != 0.5 {
		t.Errorf("expected path offset 0.5, got %f", cfg.Path.VerticalOffset)
	}
	if cfg.Path.RejectDegenerate {
		t.Error("expected degenerate bounds to fall back by default")
	}

	if cfg.Camera.EyeHeight != 2 {
		t.Errorf("expected eye height 2, got %f", cfg.Camera.EyeHeight)
	}
	if cfg.Trail.Threshold != 0.5 {
		t.Errorf("expected trail threshold 0.5, got %f", cfg.Trail.Threshold)
	}
	if cfg.World.Strict {
		t.Error("expected strict to be false by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true

assets:
  heightmap: "maps/alps.png"
  gpx: "tracks/alps.gpx"

terrain:
  height_scale: 55.5
  flip_vertical: false

path:
  vertical_offset: 1.25
  reject_degenerate: true

camera:
  eye_height: 1.7

light:
  direction: [0, -1, 0]
  points:
    - position: [10, 5, 20]
      diffuse: [1, 0.5, 0]
    - position: [30, 5, 40]

world:
  strict: true

logging:
  level: "debug"
  log_file: "walk.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || !cfg.Window.Fullscreen {
		t.Errorf("window not loaded: %+v", cfg.Window)
	}
	if cfg.Assets.Heightmap != "maps/alps.png" {
		t.Errorf("expected heightmap maps/alps.png, got %s", cfg.Assets.Heightmap)
	}
	if cfg.Assets.GPX != "tracks/alps.gpx" {
		t.Errorf("expected gpx tracks/alps.gpx, got %s", cfg.Assets.GPX)
	}
	// Untouched keys keep their defaults
	if cfg.Assets.GrassTexture != Default().Assets.GrassTexture {
		t.Errorf("expected default grass texture, got %s", cfg.Assets.GrassTexture)
	}
	if cfg.Terrain.HeightScale != 55.5 {
		t.Errorf("expected height scale 55.5, got %f", cfg.Terrain.HeightScale)
	}
	if cfg.Terrain.FlipVertical {
		t.Error("expected flip_vertical to be false")
	}
	if cfg.Terrain.UVScale != -2 {
		t.Errorf("expected default uv scale, got %f", cfg.Terrain.UVScale)
	}
	if cfg.Path.VerticalOffset != 1.25 || !cfg.Path.RejectDegenerate {
		t.Errorf("path not loaded: %+v", cfg.Path)
	}
	if cfg.Camera.EyeHeight != 1.7 {
		t.Errorf("expected eye height 1.7, got %f", cfg.Camera.EyeHeight)
	}
	if cfg.Light.Direction != [3]float32{0, -1, 0} {
		t.Errorf("expected light direction (0,-1,0), got %v", cfg.Light.Direction)
	}
	if len(cfg.Light.Points) != 2 {
		t.Fatalf("expected 2 point lights, got %d", len(cfg.Light.Points))
	}
	if cfg.Light.Points[0].Position != [3]float32{10, 5, 20} || cfg.Light.Points[0].Diffuse != [3]float32{1, 0.5, 0} {
		t.Errorf("first point light not loaded: %+v", cfg.Light.Points[0])
	}
	if cfg.Light.Points[1].Diffuse != ([3]float32{}) {
		t.Errorf("expected unset diffuse on second point light, got %v", cfg.Light.Points[1].Diffuse)
	}
	if !cfg.World.Strict {
		t.Error("expected strict to be true")
	}
	if cfg.Logging.LogFile != "walk.log" {
		t.Errorf("expected log file 'walk.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "zero width", mutate: func(c *Config) { c.Window.Width = 0 }, wantErr: "window size"},
		{name: "negative height scale", mutate: func(c *Config) { c.Terrain.HeightScale = -1 }, wantErr: "height_scale"},
		{name: "negative threshold", mutate: func(c *Config) { c.Trail.Threshold = -0.1 }, wantErr: "threshold"},
		{name: "fov too wide", mutate: func(c *Config) { c.Camera.FOV = 180 }, wantErr: "fov"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
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
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "trailwalk.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find trailwalk.yaml in current directory")
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
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "asset flags",
			setup: func() {
				*flagHeightmap = "dem.png"
				*flagGPX = "walk.gpx"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Assets.Heightmap != "dem.png" {
					t.Errorf("expected heightmap dem.png, got %s", cfg.Assets.Heightmap)
				}
				if cfg.Assets.GPX != "walk.gpx" {
					t.Errorf("expected gpx walk.gpx, got %s", cfg.Assets.GPX)
				}
			},
			teardown: func() {
				*flagHeightmap = ""
				*flagGPX = ""
			},
		},
		{
			name:  "strict flag",
			setup: func() { *flagStrict = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.World.Strict {
					t.Error("expected strict with strict flag")
				}
			},
			teardown: func() { *flagStrict = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
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
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
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
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
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

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestSaveConfigPath(t *testing.T) {
	if SaveConfigPath() != "" {
		t.Errorf("expected no save path by default, got %q", SaveConfigPath())
	}

	*flagSaveConfig = "out/trailwalk.yaml"
	defer func() { *flagSaveConfig = "" }()

	if got := SaveConfigPath(); got != "out/trailwalk.yaml" {
		t.Errorf("expected out/trailwalk.yaml, got %q", got)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Assets.GPX = "saved.gpx"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	loaded.Assets.GPX = ""
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Assets.GPX != "saved.gpx" {
		t.Errorf("expected gpx saved.gpx, got %s", loaded.Assets.GPX)
	}
	if loaded.Light.Specular != cfg.Light.Specular {
		t.Errorf("expected specular %v, got %v", cfg.Light.Specular, loaded.Light.Specular)
	}
}
