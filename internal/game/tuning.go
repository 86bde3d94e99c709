package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning carries the gameplay numbers. Defaults come from the constants
// in config.go; an optional YAML file can override any subset. Every
// field is fixed for the lifetime of a session.
type Tuning struct {
	SpawnInterval float64 `yaml:"spawn_interval"` // seconds
	MaxBubbles    int     `yaml:"max_bubbles"`
	SeedBubbles   int     `yaml:"seed_bubbles"`

	RadiusMin    float64 `yaml:"radius_min"`
	RadiusMax    float64 `yaml:"radius_max"`
	RiseMin      float64 `yaml:"rise_min"` // px/s
	RiseMax      float64 `yaml:"rise_max"`
	DriftMax     float64 `yaml:"drift_max"`
	WobbleSpdMin float64 `yaml:"wobble_speed_min"` // rad/s
	WobbleSpdMax float64 `yaml:"wobble_speed_max"`
	WobbleAmpMin float64 `yaml:"wobble_amp_min"` // px
	WobbleAmpMax float64 `yaml:"wobble_amp_max"`
	HueMin       float64 `yaml:"hue_min"` // degrees
	HueMax       float64 `yaml:"hue_max"`

	WallDamping float64 `yaml:"wall_damping"`
	BreatheAmp  float64 `yaml:"breathe_amp"`
	BreatheFreq float64 `yaml:"breathe_freq"` // rad/s

	ScoreBaseK   float64 `yaml:"score_base_k"`
	StreakWindow float64 `yaml:"streak_window"` // seconds
	StreakCap    int     `yaml:"streak_cap"`
}

func DefaultTuning() Tuning {
	return Tuning{
		SpawnInterval: SpawnInterval,
		MaxBubbles:    MaxBubbles,
		SeedBubbles:   SeedBubbles,
		RadiusMin:     RadiusMin,
		RadiusMax:     RadiusMax,
		RiseMin:       RiseSpeedMin,
		RiseMax:       RiseSpeedMax,
		DriftMax:      DriftSpeedMax,
		WobbleSpdMin:  WobbleSpdMin,
		WobbleSpdMax:  WobbleSpdMax,
		WobbleAmpMin:  WobbleAmpMin,
		WobbleAmpMax:  WobbleAmpMax,
		HueMin:        HueMin,
		HueMax:        HueMax,
		WallDamping:   WallDamping,
		BreatheAmp:    BreatheAmp,
		BreatheFreq:   BreatheFreq,
		ScoreBaseK:    ScoreBaseK,
		StreakWindow:  StreakWindow,
		StreakCap:     StreakCap,
	}
}

// LoadTuning reads YAML overrides on top of the defaults. An empty path
// returns the defaults unchanged. The result is validated either way.
func LoadTuning(path string) (Tuning, error) {
	tun := DefaultTuning()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return tun, fmt.Errorf("read tuning: %w", err)
		}
		if err := yaml.Unmarshal(data, &tun); err != nil {
			return tun, fmt.Errorf("parse tuning: %w", err)
		}
	}
	if err := tun.Validate(); err != nil {
		return tun, fmt.Errorf("tuning: %w", err)
	}
	return tun, nil
}

// Validate rejects empty or negative ranges. A failure here is fatal at
// startup; no tick may run on an invalid tuning.
func (t Tuning) Validate() error {
	if t.SpawnInterval <= 0 {
		return fmt.Errorf("spawn_interval must be positive, got %v", t.SpawnInterval)
	}
	if t.MaxBubbles <= 0 {
		return fmt.Errorf("max_bubbles must be positive, got %d", t.MaxBubbles)
	}
	if t.SeedBubbles < 0 || t.SeedBubbles > t.MaxBubbles {
		return fmt.Errorf("seed_bubbles must be within 0..max_bubbles, got %d", t.SeedBubbles)
	}
	if t.RadiusMin <= 0 || t.RadiusMax < t.RadiusMin {
		return fmt.Errorf("radius range invalid: min(%.1f) max(%.1f)", t.RadiusMin, t.RadiusMax)
	}
	if t.RadiusMax*2 > ViewportW {
		return fmt.Errorf("radius_max %.1f does not fit the viewport", t.RadiusMax)
	}
	if t.RiseMin <= 0 || t.RiseMax < t.RiseMin {
		return fmt.Errorf("rise range invalid: min(%.1f) max(%.1f)", t.RiseMin, t.RiseMax)
	}
	if t.DriftMax < 0 {
		return fmt.Errorf("drift_max must not be negative, got %v", t.DriftMax)
	}
	if t.WobbleSpdMin < 0 || t.WobbleSpdMax < t.WobbleSpdMin {
		return fmt.Errorf("wobble speed range invalid: min(%.2f) max(%.2f)", t.WobbleSpdMin, t.WobbleSpdMax)
	}
	if t.WobbleAmpMin < 0 || t.WobbleAmpMax < t.WobbleAmpMin {
		return fmt.Errorf("wobble amp range invalid: min(%.1f) max(%.1f)", t.WobbleAmpMin, t.WobbleAmpMax)
	}
	if t.HueMax < t.HueMin {
		return fmt.Errorf("hue range invalid: min(%.1f) max(%.1f)", t.HueMin, t.HueMax)
	}
	if t.WallDamping < 0 || t.WallDamping > 1 {
		return fmt.Errorf("wall_damping must be within 0..1, got %v", t.WallDamping)
	}
	if t.BreatheAmp < 0 || t.BreatheAmp >= 1 {
		return fmt.Errorf("breathe_amp must be within 0..1, got %v", t.BreatheAmp)
	}
	if t.BreatheFreq <= 0 {
		return fmt.Errorf("breathe_freq must be positive, got %v", t.BreatheFreq)
	}
	if t.ScoreBaseK <= 0 {
		return fmt.Errorf("score_base_k must be positive, got %v", t.ScoreBaseK)
	}
	if t.StreakWindow <= 0 {
		return fmt.Errorf("streak_window must be positive, got %v", t.StreakWindow)
	}
	if t.StreakCap < 1 {
		return fmt.Errorf("streak_cap must be at least 1, got %d", t.StreakCap)
	}
	return nil
}
