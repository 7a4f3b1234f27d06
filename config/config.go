package config

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// HDRColor is an 8-bit colour boosted by an HDR intensity (stops of 2^n).
type HDRColor struct {
	R         float64 `yaml:"r"`
	G         float64 `yaml:"g"`
	B         float64 `yaml:"b"`
	Intensity float64 `yaml:"intensity"`
}

// Color returns the linear emissive colour, which may exceed 1 per channel.
func (c HDRColor) Color() colorful.Color {
	factor := math.Pow(2, c.Intensity)
	return colorful.Color{
		R: c.R / 255 * factor,
		G: c.G / 255 * factor,
		B: c.B / 255 * factor,
	}
}

// BladeProfileConfig names the collider group and damager variants swapped
// when the blade is enhanced.
type BladeProfileConfig struct {
	ColliderGroupName     string `yaml:"collider_group_name"`
	ColliderGroupDefault  string `yaml:"collider_group_default"`
	ColliderGroupEnhanced string `yaml:"collider_group_enhanced"`
	SlashDefault          string `yaml:"slash_default"`
	SlashEnhanced         string `yaml:"slash_enhanced"`
	PierceDefault         string `yaml:"pierce_default"`
	PierceEnhanced        string `yaml:"pierce_enhanced"`
}

// EffectIDs are the catalog ids of the one-shot cues.
type EffectIDs struct {
	Activation string `yaml:"activation"`
	Charge     string `yaml:"charge"`
	Explosion  string `yaml:"explosion"`
	Overheat   string `yaml:"overheat"`
	Restored   string `yaml:"restored"`
}

// ReferenceNames are the item's continuous visuals.
type ReferenceNames struct {
	Trail          string `yaml:"trail"`
	Smoke          string `yaml:"smoke"`
	ExplosionSmoke string `yaml:"explosion_smoke"`
	Overcharge     string `yaml:"overcharge"`
}

// ExplosionConfig tunes the overcharged detonation.
type ExplosionConfig struct {
	QueryRadius     float64 `yaml:"query_radius"`
	Force           float64 `yaml:"force"`
	FalloffRadius   float64 `yaml:"falloff_radius"`
	UpwardsModifier float64 `yaml:"upwards_modifier"`
}

// CalibrationConfig names the assets whose lengths replace the default
// durations once loaded.
type CalibrationConfig struct {
	SharpDurationAsset string `yaml:"sharp_duration_asset"`
	SharpCooldownAsset string `yaml:"sharp_cooldown_asset"`
}

// WeaponConfig contains everything the weapon controller reads.
type WeaponConfig struct {
	// Durations in seconds. The first two are defaults until calibrated.
	MaxSharpDuration            float64 `yaml:"max_sharp_duration"`
	SharpCooldownDuration       float64 `yaml:"sharp_cooldown_duration"`
	OverchargedCooldownDuration float64 `yaml:"overcharged_cooldown_duration"`

	// Visuals
	OscillationPeriod float64  `yaml:"oscillation_period"` // ping-pong length, full cycle is twice this
	FadeDuration      float64  `yaml:"fade_duration"`
	OverheatColor     HDRColor `yaml:"overheat_color"`

	Profile     BladeProfileConfig `yaml:"profile"`
	Effects     EffectIDs          `yaml:"effects"`
	References  ReferenceNames     `yaml:"references"`
	Explosion   ExplosionConfig    `yaml:"explosion"`
	Calibration CalibrationConfig  `yaml:"calibration"`
}

// PhysicsConfig tunes the Chipmunk sandbox space.
type PhysicsConfig struct {
	GravityX   float64 `yaml:"gravity_x"`
	GravityY   float64 `yaml:"gravity_y"`
	Damping    float64 `yaml:"damping"`
	Iterations int     `yaml:"iterations"`
	PartMass   float64 `yaml:"part_mass"`
	CellSize   int     `yaml:"cell_size"` // resolv broadphase grid
}

// CreatureConfig contains sandbox creature values.
type CreatureConfig struct {
	CorpseLifetime float64 `yaml:"corpse_lifetime"` // seconds a corpse stays before removal
	HullWidth      float64 `yaml:"hull_width"`
	HullHeight     float64 `yaml:"hull_height"`
}

// EffectConfig contains sandbox effect instance values.
type EffectConfig struct {
	DefaultLifetime float64 `yaml:"default_lifetime"` // seconds, for cues without catalog length
}

// ArenaConfig describes the sandbox arena. The map is in pixels and
// PixelsPerUnit converts to the world units of the weapon tuning.
// AssetLatency simulates the delay of asynchronous asset loads, in seconds.
type ArenaConfig struct {
	MapPath       string   `yaml:"map_path"`
	PixelsPerUnit float64  `yaml:"pixels_per_unit"`
	AssetLatency  float64  `yaml:"asset_latency"`
	BladeEmission HDRColor `yaml:"blade_emission"`
	TimeScale     float64  `yaml:"time_scale"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	LogTransitions bool `yaml:"log_transitions"`
	ShowOverlay    bool `yaml:"show_overlay"`
}

type Config struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// Global configuration instances
var C *Config
var Weapon WeaponConfig
var Physics PhysicsConfig
var Creature CreatureConfig
var Effect EffectConfig
var Arena ArenaConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	Weapon = WeaponConfig{
		MaxSharpDuration:            8.0,
		SharpCooldownDuration:       5.0,
		OverchargedCooldownDuration: 10.0,

		OscillationPeriod: 1.5,
		FadeDuration:      1.5,
		OverheatColor:     HDRColor{R: 255, G: 67, B: 0, Intensity: 3},

		Profile: BladeProfileConfig{
			ColliderGroupName:     "Blades",
			ColliderGroupDefault:  "BladeDogmaDefault",
			ColliderGroupEnhanced: "BladeDogmaEnhanced",
			SlashDefault:          "DogmaSlashDefault",
			SlashEnhanced:         "DogmaSlashEnhanced",
			PierceDefault:         "DogmaPierceDefault",
			PierceEnhanced:        "DogmaPierceEnhanced",
		},

		Effects: EffectIDs{
			Activation: "Dogma.SFXSiva",
			Charge:     "Dogma.SFXCharge",
			Explosion:  "Dogma.FXExplosion",
			Overheat:   "Dogma.SFXOverheat",
			Restored:   "Dogma.SFXRestored",
		},

		References: ReferenceNames{
			Trail:          "Trail",
			Smoke:          "Smoke",
			ExplosionSmoke: "ESmoke",
			Overcharge:     "Overcharge",
		},

		Explosion: ExplosionConfig{
			QueryRadius:     5.0,
			Force:           25.0,
			FalloffRadius:   10.0,
			UpwardsModifier: 0.5,
		},

		Calibration: CalibrationConfig{
			SharpDurationAsset: "Hitsuu.Dogma.SFXSiva",
			SharpCooldownAsset: "Hitsuu.Dogma.SFXOverheat",
		},
	}

	Physics = PhysicsConfig{
		GravityX:   0,
		GravityY:   0, // ragdolls hold their pose until pushed
		Damping:    0.5,
		Iterations: 10,
		PartMass:   1.0,
		CellSize:   16,
	}

	Creature = CreatureConfig{
		CorpseLifetime: 6.0,
		HullWidth:      28,
		HullHeight:     64,
	}

	Effect = EffectConfig{
		DefaultLifetime: 1.0,
	}

	Arena = ArenaConfig{
		MapPath:       "levels/arena.tmx",
		PixelsPerUnit: 16,
		AssetLatency:  0.25,
		BladeEmission: HDRColor{R: 90, G: 110, B: 140},
		TimeScale:     1.0,
	}

	Debug = DebugConfig{
		LogTransitions: false,
		ShowOverlay:    false,
	}
}
