package simulation

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/steering"
)

// maxPlacementAttempts bounds the search for a spot outside the text box.
const maxPlacementAttempts = 1000

// TextBox returns the text region the birds fly around: a rectangle centered
// in the viewport, sized by the configured ratios.
func TextBox(viewport geometry.Size, cfg *Config) geometry.Rect {
	w := viewport.Width * cfg.TextBoxWidthRatio
	h := viewport.Height * cfg.TextBoxHeightRatio
	c := viewport.Center()
	return geometry.Rect{
		Left:   c.X - w/2,
		Top:    c.Y - h/2,
		Right:  c.X + w/2,
		Bottom: c.Y + h/2,
	}
}

// NewRand returns the random source used for sampling, seeded from cfg.Seed
// when it is set.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SampleFlock draws the initial parameters of a whole flock.
// Behaviors are dealt in turn so the three personalities are balanced, then
// shuffled. Birds never start inside obstacle when a free spot can be found.
func SampleFlock(rng *rand.Rand, cfg *Config, viewport geometry.Size, obstacle geometry.Obstacle) []behavior.Params {
	n := steering.RandomIntInRange(rng, cfg.NumBirdsMin, cfg.NumBirdsMax)

	behaviors := make([]behavior.Behavior, n)
	for i := range behaviors {
		behaviors[i] = behavior.All[i%len(behavior.All)]
	}
	rng.Shuffle(n, func(i, j int) { behaviors[i], behaviors[j] = behaviors[j], behaviors[i] })

	flock := make([]behavior.Params, n)
	for i := range flock {
		flock[i] = behavior.Params{
			Behavior: behaviors[i],
			Size:     steering.RandomInRange(rng, cfg.SizeMin, cfg.SizeMax),
			Position: samplePosition(rng, viewport, obstacle),
			Velocity: geometry.NewPolar(
				steering.RandomInRange(rng, cfg.SpeedMin, cfg.SpeedMax),
				steering.RandomInRange(rng, 0, 360),
			),
			RotationAmplitude: steering.RandomInRange(rng, 0, cfg.RotationAmplitudeMax),
			RotationFrequency: steering.RandomInRange(rng, cfg.RotationFrequencyMin, cfg.RotationFrequencyMax),
			ScaleAmplitude:    steering.RandomInRange(rng, 0, cfg.ScaleAmplitudeMax),
			ScaleFrequency:    steering.RandomInRange(rng, cfg.ScaleFrequencyMin, cfg.ScaleFrequencyMax),
			PhaseOffset:       steering.RandomInRange(rng, 0, 2*math.Pi),
		}
	}
	return flock
}

func samplePosition(rng *rand.Rand, viewport geometry.Size, obstacle geometry.Obstacle) geometry.Vector2D {
	var p geometry.Vector2D
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		p = geometry.Vector2D{
			X: rng.Float64() * viewport.Width,
			Y: rng.Float64() * viewport.Height,
		}
		if obstacle == nil || !obstacle.Contains(p) {
			return p
		}
	}
	// the obstacle covers the whole viewport, the bird will escape it
	return p
}

// NewFlock creates one bird per parameter set, ids follow the slice order.
func NewFlock(params []behavior.Params, s behavior.Settings) ([]*behavior.Bird, error) {
	birds := make([]*behavior.Bird, 0, len(params))
	for i, p := range params {
		b, err := behavior.NewBird(i, p, s)
		if err != nil {
			return nil, fmt.Errorf("failed to create bird %d: %w", i, err)
		}
		birds = append(birds, b)
	}
	return birds, nil
}
