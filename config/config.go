package config

import (
	"image/color"
	"time"
)

// SlingshotConfig controls aiming, launching and respawning.
type SlingshotConfig struct {
	MaxDragDistance  float64       `toml:"max_drag_distance"`  // pixels from the anchor
	ZoneRadius       float64       `toml:"zone_radius"`        // press must land this close to the anchor
	LaunchForce      float64       `toml:"launch_force"`       // impulse magnitude, independent of pull distance
	RespawnDelay     time.Duration `toml:"respawn_delay"`      // time between a launch and the next projectile
	SpawnOffset      float64       `toml:"spawn_offset"`       // projectile distance ahead of the pouch
	ElasticDivider   float64       `toml:"elastic_divider"`    // pixels per second of retract duration
	ElasticEase      string        `toml:"elastic_ease"`       // gween ease name
	MaxAnimationTime time.Duration `toml:"max_animation_time"` // cap on the retract redraw
}

// RoundConfig controls the shot budget and the outcome check.
type RoundConfig struct {
	MaxShots        int           `toml:"max_shots"`
	DeathCheckDelay time.Duration `toml:"death_check_delay"` // settle time after the last shot
}

// ProjectileConfig describes the launched body.
type ProjectileConfig struct {
	Width  float64       `toml:"width"`
	Height float64       `toml:"height"`
	Linger time.Duration `toml:"linger"` // time a destroyed body stays visible before removal
}

// TargetConfig holds defaults for targets placed without explicit properties.
type TargetConfig struct {
	MaxHealth       float64       `toml:"max_health"`
	DamageThreshold float64       `toml:"damage_threshold"` // impacts at or below this are absorbed
	ImpactScale     float64       `toml:"impact_scale"`     // converts px/s relative speed into impact units
	DeathBurstTime  time.Duration `toml:"death_burst_time"`
	DamageScript    string        `toml:"damage_script"` // Lua file in the game assets defining impact_damage(impact, threshold), empty for damage = impact
}

// PhysicsConfig contains the projectile integrator settings.
type PhysicsConfig struct {
	Gravity  float64 `toml:"gravity"`   // px/s^2, positive is down
	MaxSpeed float64 `toml:"max_speed"` // px/s, 0 disables the clamp
	Substeps int     `toml:"substeps"`  // integration steps per tick
	CellSize int     `toml:"cell_size"` // resolv space cell size
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `toml:"follow_smoothing"` // How fast camera approaches its focus (0.0-1.0)
	IdleSmoothing   float64 `toml:"idle_smoothing"`
}

// UIConfig contains HUD and overlay appearance.
type UIConfig struct {
	IconSize      float64    `toml:"icon_size"`
	IconGap       float64    `toml:"icon_gap"`
	IconMargin    float64    `toml:"icon_margin"`
	IconColor     color.RGBA `toml:"-"`
	UsedIconColor color.RGBA `toml:"-"`
	TetherColor   color.RGBA `toml:"-"`
	TetherWidth   float32    `toml:"tether_width"`
	OverlayColor  color.RGBA `toml:"-"`
	GroundColor   color.RGBA `toml:"-"`
	TargetColor   color.RGBA `toml:"-"`
	HurtColor     color.RGBA `toml:"-"` // target colour at zero health
	BirdColor     color.RGBA `toml:"-"`
	BurstColor    color.RGBA `toml:"-"`
	TextColor     color.RGBA `toml:"-"`
	ShowHitboxes  bool       `toml:"show_hitboxes"`
}

// LoggingConfig selects the zap encoder and level.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Config holds general game configuration
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"` // simulation ticks per second
	Title  string `toml:"title"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartLevel int // Campaign index to start from
}

// Global configuration instances
var C *Config
var Slingshot SlingshotConfig
var Round RoundConfig
var Projectile ProjectileConfig
var Target TargetConfig
var Physics PhysicsConfig
var Camera CameraConfig
var UI UIConfig
var Logging LoggingConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Brown        = color.RGBA{R: 110, G: 70, B: 40, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	SkyBlue      = color.RGBA{R: 120, G: 180, B: 230, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
		Title:  "Slingshot",
	}

	Slingshot = SlingshotConfig{
		MaxDragDistance:  64,
		ZoneRadius:       40,
		LaunchForce:      720,
		RespawnDelay:     2 * time.Second,
		SpawnOffset:      6,
		ElasticDivider:   60,
		ElasticEase:      "OutElastic",
		MaxAnimationTime: time.Second,
	}

	Round = RoundConfig{
		MaxShots:        3,
		DeathCheckDelay: 3 * time.Second,
	}

	Projectile = ProjectileConfig{
		Width:  12,
		Height: 12,
		Linger: time.Second,
	}

	Target = TargetConfig{
		MaxHealth:       3,
		DamageThreshold: 0.2,
		ImpactScale:     0.01,
		DeathBurstTime:  500 * time.Millisecond,
		DamageScript:    "scripts/damage.lua",
	}

	Physics = PhysicsConfig{
		Gravity:  600,
		MaxSpeed: 1500,
		Substeps: 4,
		CellSize: 8,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		IdleSmoothing:   0.05,
	}

	UI = UIConfig{
		IconSize:      10,
		IconGap:       4,
		IconMargin:    8,
		IconColor:     Orange,
		UsedIconColor: Gray,
		TetherColor:   Brown,
		TetherWidth:   3,
		OverlayColor:  BlackOverlay,
		GroundColor:   color.RGBA{R: 70, G: 120, B: 50, A: 255},
		TargetColor:   LightGreen,
		HurtColor:     Red,
		BirdColor:     color.RGBA{R: 210, G: 40, B: 40, A: 255},
		BurstColor:    Yellow,
		TextColor:     White,
	}

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}
}
