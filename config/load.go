package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// File is the on-disk layout of an override file. Every section is optional;
// missing keys keep their defaults.
type File struct {
	Game       Config           `toml:"game"`
	Slingshot  SlingshotConfig  `toml:"slingshot"`
	Round      RoundConfig      `toml:"round"`
	Projectile ProjectileConfig `toml:"projectile"`
	Target     TargetConfig     `toml:"target"`
	Physics    PhysicsConfig    `toml:"physics"`
	Camera     CameraConfig     `toml:"camera"`
	UI         UIConfig         `toml:"ui"`
	Audio      AudioConfig      `toml:"audio"`
	Logging    LoggingConfig    `toml:"logging"`
}

// Current snapshots the package-level configuration.
func Current() *File {
	return &File{
		Game:       *C,
		Slingshot:  Slingshot,
		Round:      Round,
		Projectile: Projectile,
		Target:     Target,
		Physics:    Physics,
		Camera:     Camera,
		UI:         UI,
		Audio:      Audio,
		Logging:    Logging,
	}
}

// Decode overlays TOML data on the current configuration and validates the
// result. The package-level values are left untouched.
func Decode(data []byte) (*File, error) {
	f := Current()
	if err := toml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Load reads an override file from disk. See Decode.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Apply makes f the package-level configuration.
func Apply(f *File) {
	game := f.Game
	C = &game
	Slingshot = f.Slingshot
	Round = f.Round
	Projectile = f.Projectile
	Target = f.Target
	Physics = f.Physics
	Camera = f.Camera
	UI = f.UI
	Audio = f.Audio
	Logging = f.Logging
}

var (
	ErrInvalidTPS      = errors.New("tps must be positive")
	ErrInvalidShots    = errors.New("max_shots must be positive")
	ErrInvalidDrag     = errors.New("max_drag_distance must be positive")
	ErrInvalidForce    = errors.New("launch_force must be positive")
	ErrInvalidDivider  = errors.New("elastic_divider must be positive")
	ErrInvalidSubsteps = errors.New("substeps must be positive")
	ErrInvalidDelay    = errors.New("durations must not be negative")
)

// Validate rejects values the simulation cannot run with.
func (f *File) Validate() error {
	switch {
	case f.Game.TPS <= 0:
		return ErrInvalidTPS
	case f.Round.MaxShots <= 0:
		return ErrInvalidShots
	case f.Slingshot.MaxDragDistance <= 0:
		return ErrInvalidDrag
	case f.Slingshot.LaunchForce <= 0:
		return ErrInvalidForce
	case f.Slingshot.ElasticDivider <= 0:
		return ErrInvalidDivider
	case f.Physics.Substeps <= 0:
		return ErrInvalidSubsteps
	case f.Slingshot.RespawnDelay < 0, f.Slingshot.MaxAnimationTime < 0,
		f.Round.DeathCheckDelay < 0, f.Projectile.Linger < 0, f.Target.DeathBurstTime < 0:
		return ErrInvalidDelay
	}
	return nil
}
