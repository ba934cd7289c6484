package behavior

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the tunables shared by every bird of a flock.
// They are fixed for the lifetime of the flock.
type Settings struct {
	FramesPerSecond float64 // approximate frame rate, turns heading deltas into deg/s
	ViewportMargin  float64 // px beyond the viewport before a bird wraps around
	BaseSize        float64 // mean value of the height-proxy scale
	RadiusPerSize   float64 // radius in px of a bird of size 1

	BackgroundSpeed float64 // cruise speed, px/frame
	SpeedDecay      float64 // per-frame factor applied above cruise speed
	EnthrallSpeed   float64 // friendly pursuit speed, px/frame
	EscapeSpeed     float64 // speed used to leave the obstacle when trapped, px/frame
	SpookBoost      float64 // one-shot speed added to a skittish bird, px/frame
	AvoidBoost      float64 // speed added per frame to a skittish bird avoiding the obstacle

	MaxAngularVelocity float64 // clamp for the wingspan input, deg/s
	TurnWeight         float64 // weight of the current heading in every steering blend

	CreatureObservationRange float64 // in radii
	ObstacleObservationRange float64 // in radii
	ContactDistance          float64 // px under which a friendly bird stops
}

// DefaultSettings returns the stock magic birds tunables.
func DefaultSettings() Settings {
	return Settings{
		FramesPerSecond: 60,
		ViewportMargin:  100,
		BaseSize:        2,
		RadiusPerSize:   100,

		BackgroundSpeed: 1.5,
		SpeedDecay:      0.99,
		EnthrallSpeed:   0.2,
		EscapeSpeed:     8,
		SpookBoost:      5,
		AvoidBoost:      0.1,

		MaxAngularVelocity: 25,
		TurnWeight:         0.9,

		CreatureObservationRange: 3,
		ObstacleObservationRange: 1,
		ContactDistance:          5,
	}
}

// Validate checks that every tunable is inside its meaningful range.
func (s Settings) Validate() error {
	positive := map[string]float64{
		"framesPerSecond":    s.FramesPerSecond,
		"baseSize":           s.BaseSize,
		"radiusPerSize":      s.RadiusPerSize,
		"backgroundSpeed":    s.BackgroundSpeed,
		"escapeSpeed":        s.EscapeSpeed,
		"maxAngularVelocity": s.MaxAngularVelocity,
	}
	for name, v := range positive {
		if !(v > 0) {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidSettings, name, v)
		}
	}
	nonNegative := map[string]float64{
		"viewportMargin":           s.ViewportMargin,
		"enthrallSpeed":            s.EnthrallSpeed,
		"spookBoost":               s.SpookBoost,
		"avoidBoost":               s.AvoidBoost,
		"creatureObservationRange": s.CreatureObservationRange,
		"obstacleObservationRange": s.ObstacleObservationRange,
		"contactDistance":          s.ContactDistance,
	}
	for name, v := range nonNegative {
		if !(v >= 0) {
			return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalidSettings, name, v)
		}
	}
	if !(s.SpeedDecay > 0 && s.SpeedDecay < 1) {
		return fmt.Errorf("%w: speedDecay must be in (0,1), got %v", ErrInvalidSettings, s.SpeedDecay)
	}
	if !(s.TurnWeight >= 0 && s.TurnWeight <= 1) {
		return fmt.Errorf("%w: turnWeight must be in [0,1], got %v", ErrInvalidSettings, s.TurnWeight)
	}
	return nil
}
