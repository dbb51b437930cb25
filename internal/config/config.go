// Package config handles simulator configuration loading and management.
package config

// Config holds all simulator settings.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Assets      AssetsConfig      `yaml:"assets"`
	Terrain     TerrainConfig     `yaml:"terrain"`
	Path        PathConfig        `yaml:"path"`
	Camera      CameraConfig      `yaml:"camera"`
	Trail       TrailConfig       `yaml:"trail"`
	Light       LightConfig       `yaml:"light"`
	World       WorldConfig       `yaml:"world"`
	Logging     LoggingConfig     `yaml:"logging"`
	Screenshots ScreenshotsConfig `yaml:"screenshots"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// AssetsConfig holds paths to the files loaded at startup.
type AssetsConfig struct {
	Heightmap      string `yaml:"heightmap"`
	TerrainTexture string `yaml:"terrain_texture"`
	GrassTexture   string `yaml:"grass_texture"`
	GPX            string `yaml:"gpx"`
	SkyTexture     string `yaml:"sky_texture"`
}

// TerrainConfig controls heightmap decoding and mesh generation.
type TerrainConfig struct {
	HeightScale  float32 `yaml:"height_scale"`  // world units for a white pixel
	UVScale      float32 `yaml:"uv_scale"`      // texture tiling across the whole mesh
	FlipVertical bool    `yaml:"flip_vertical"` // image row 0 becomes the last grid row
}

// PathConfig controls how the GPX track is laid onto the terrain.
type PathConfig struct {
	VerticalOffset   float32 `yaml:"vertical_offset"`
	RejectDegenerate bool    `yaml:"reject_degenerate"`
}

// CameraConfig holds first-person camera settings.
type CameraConfig struct {
	EyeHeight   float32 `yaml:"eye_height"`
	Speed       float32 `yaml:"speed"`
	Sensitivity float32 `yaml:"sensitivity"`
	FOV         float32 `yaml:"fov"`
	Yaw         float32 `yaml:"yaw"`
}

// TrailConfig controls the recorded walking trail.
type TrailConfig struct {
	Threshold float32 `yaml:"threshold"` // minimum distance between recorded points
}

// LightConfig holds the sun (directional light) settings and any local
// point lights.
type LightConfig struct {
	Direction [3]float32         `yaml:"direction"`
	Ambient   [3]float32         `yaml:"ambient"`
	Diffuse   [3]float32         `yaml:"diffuse"`
	Specular  [3]float32         `yaml:"specular"`
	Points    []PointLightConfig `yaml:"points"`
}

// PointLightConfig places a point light in world units. Zero colours keep
// the built-in defaults.
type PointLightConfig struct {
	Position [3]float32 `yaml:"position"`
	Diffuse  [3]float32 `yaml:"diffuse"`
	Specular [3]float32 `yaml:"specular"`
}

// WorldConfig holds startup policy.
type WorldConfig struct {
	// Strict aborts startup when the heightmap or track can't be loaded
	// instead of running with the feature missing.
	Strict bool `yaml:"strict"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ScreenshotsConfig holds screenshot capture settings.
type ScreenshotsConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Trailwalk",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Assets: AssetsConfig{
			Heightmap:      "assets/heightmaps/terrain_heightmap.png",
			TerrainTexture: "assets/textures/terrain_texture.png",
			GrassTexture:   "assets/textures/grass_texture.png",
			GPX:            "assets/gpx/hiking_path.gpx",
			SkyTexture:     "assets/skydome/sky_dome_texture.png",
		},
		Terrain: TerrainConfig{
			HeightScale:  20,
			UVScale:      -2,
			FlipVertical: true,
		},
		Path: PathConfig{
			VerticalOffset: 0.5,
		},
		Camera: CameraConfig{
			EyeHeight:   2,
			Speed:       5,
			Sensitivity: 0.1,
			FOV:         45,
			Yaw:         90,
		},
		Trail: TrailConfig{
			Threshold: 0.5,
		},
		Light: LightConfig{
			Direction: [3]float32{-0.7, -1.0, -0.7},
			Ambient:   [3]float32{0.4, 0.4, 0.4},
			Diffuse:   [3]float32{0.8, 0.8, 0.8},
			Specular:  [3]float32{1, 1, 1},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Screenshots: ScreenshotsConfig{
			Dir: "screenshots",
		},
	}
}
