package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Slingshot sounds
	SoundElasticPulled
	SoundElasticReleased1
	SoundElasticReleased2
	SoundElasticReleased3
	// Impact sounds
	SoundProjectileHit
	SoundTargetDeath
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int     `toml:"sample_rate"`
	DefaultSFXVol float64 `toml:"sfx_volume"`
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
	// ElasticReleased is the set one release cue is picked from.
	ElasticReleased []SoundID
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundElasticPulled:    "audio/sfx/elastic_pulled.wav",
			SoundElasticReleased1: "audio/sfx/elastic_released_1.wav",
			SoundElasticReleased2: "audio/sfx/elastic_released_2.wav",
			SoundElasticReleased3: "audio/sfx/elastic_released_3.wav",
			SoundProjectileHit:    "audio/sfx/projectile_hit.wav",
			SoundTargetDeath:      "audio/sfx/target_death.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundTargetDeath: 1.5,
		},
		ElasticReleased: []SoundID{
			SoundElasticReleased1,
			SoundElasticReleased2,
			SoundElasticReleased3,
		},
	}
}
