package behavior

import (
	"errors"
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/steering"
)

// ErrInvalidParams is returned by NewBird when the initial parameters are unusable.
var ErrInvalidParams = errors.New("invalid bird parameters")

// Params are the fully specified initial values of a bird.
// Sampling them at random is the caller's business.
type Params struct {
	Behavior Behavior
	Position geometry.Vector2D
	Velocity geometry.Polar
	Size     float64 // relative size of the drawing, radius = Size * RadiusPerSize

	RotationAmplitude float64 // deg/frame
	RotationFrequency float64 // Hz
	ScaleAmplitude    float64
	ScaleFrequency    float64 // Hz
	PhaseOffset       float64 // radians
}

// Pose is the absolute per-frame output of a bird, ready to be drawn.
type Pose struct {
	ID       int
	Behavior Behavior
	Position geometry.Vector2D
	Heading  float64 // degrees, screen coordinates
	Scale    float64 // height proxy
	Wingspan float64 // vertical stretch of the wings, smaller while turning
	Radius   float64
	Speed    float64 // px/frame
}

// Bird is one agent of the flock. It is not safe for concurrent use, the
// Population (or an actor) owns it.
type Bird struct {
	id       int
	behavior Behavior
	settings Settings

	position geometry.Vector2D
	velocity geometry.Polar
	radius   float64

	rotAmpl     float64
	rotFreq     float64
	scaleAmpl   float64
	scaleFreq   float64
	phaseOffset float64

	scale           float64
	wingspan        float64
	angularVelocity float64 // smoothed, deg/s
	prevAngle       float64

	spooked    bool
	enthralled bool
}

// NewBird validates s and p and creates a bird.
func NewBird(id int, p Params, s Settings) (*Bird, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: bird %d: %w", ErrInvalidParams, id, err)
	}
	if !p.Behavior.Valid() {
		return nil, fmt.Errorf("%w: bird %d: %w", ErrInvalidParams, id, ErrInvalidBehavior)
	}
	if !(p.Size > 0) || math.IsInf(p.Size, 0) {
		return nil, fmt.Errorf("%w: bird %d: size must be > 0, got %v", ErrInvalidParams, id, p.Size)
	}
	if !p.Position.IsFinite() {
		return nil, fmt.Errorf("%w: bird %d: position %s is not finite", ErrInvalidParams, id, p.Position)
	}
	if !(p.Velocity.Length >= 0) || math.IsInf(p.Velocity.Length, 0) || math.IsNaN(p.Velocity.Angle) || math.IsInf(p.Velocity.Angle, 0) {
		return nil, fmt.Errorf("%w: bird %d: velocity %s", ErrInvalidParams, id, p.Velocity)
	}
	if p.RotationFrequency < 0 || p.ScaleFrequency < 0 {
		return nil, fmt.Errorf("%w: bird %d: frequencies must be >= 0", ErrInvalidParams, id)
	}

	b := &Bird{
		id:          id,
		behavior:    p.Behavior,
		settings:    s,
		position:    p.Position,
		velocity:    p.Velocity,
		radius:      p.Size * s.RadiusPerSize,
		rotAmpl:     p.RotationAmplitude,
		rotFreq:     p.RotationFrequency,
		scaleAmpl:   p.ScaleAmplitude,
		scaleFreq:   p.ScaleFrequency,
		phaseOffset: p.PhaseOffset,
		scale:       s.BaseSize,
		wingspan:    1,
		prevAngle:   p.Velocity.Angle,
	}
	return b, nil
}

func (b *Bird) ID() int                     { return b.id }
func (b *Bird) Behavior() Behavior          { return b.behavior }
func (b *Bird) Position() geometry.Vector2D { return b.position }
func (b *Bird) Velocity() geometry.Polar    { return b.velocity }
func (b *Bird) Radius() float64             { return b.radius }
func (b *Bird) Scale() float64              { return b.scale }
func (b *Bird) Wingspan() float64           { return b.wingspan }
func (b *Bird) AngularVelocity() float64    { return b.angularVelocity }
func (b *Bird) Spooked() bool               { return b.spooked }
func (b *Bird) Enthralled() bool            { return b.enthralled }

// Pose returns the current absolute pose of the bird.
func (b *Bird) Pose() Pose {
	return Pose{
		ID:       b.id,
		Behavior: b.behavior,
		Position: b.position,
		Heading:  b.velocity.Angle,
		Scale:    b.scale,
		Wingspan: b.wingspan,
		Radius:   b.radius,
		Speed:    b.velocity.Length,
	}
}

// Step runs one full frame: the bird's own motion, then its reactions to
// whatever part of env is currently known.
func (b *Bird) Step(time float64, env Environment) Pose {
	b.Iterate(time, env.Viewport)
	if env.Creature != nil {
		b.ObserveCreature(*env.Creature)
	}
	if env.Obstacle != nil {
		b.ObserveObstacle(env.Obstacle)
	}
	return b.Pose()
}

// Iterate advances the continuous self-motion of the bird by one frame.
// time is the absolute clock in seconds, it is only used as oscillator phase.
func (b *Bird) Iterate(time float64, viewport geometry.Size) Pose {
	b.updateVelocity(time)
	b.updatePosition(viewport)
	b.updateScale(time)
	b.updateWingspan()
	b.prevAngle = b.velocity.Angle
	return b.Pose()
}

func (b *Bird) updateVelocity(time float64) {
	s := b.settings
	if b.velocity.Length > s.BackgroundSpeed {
		b.velocity.Length = math.Max(b.velocity.Length*s.SpeedDecay, s.BackgroundSpeed)
	}
	b.velocity.Angle = steering.NormalizeDegrees(b.velocity.Angle +
		b.rotAmpl*math.Cos(2*math.Pi*time*b.rotFreq+b.phaseOffset))
}

func (b *Bird) updatePosition(viewport geometry.Size) {
	m := b.settings.ViewportMargin
	b.position = b.position.Add(b.velocity.Vector())

	if b.position.X < -m {
		b.position.X = viewport.Width + m
	} else if b.position.X > viewport.Width+m {
		b.position.X = -m
	}
	if b.position.Y < -m {
		b.position.Y = viewport.Height + m
	} else if b.position.Y > viewport.Height+m {
		b.position.Y = -m
	}
}

func (b *Bird) updateScale(time float64) {
	b.scale = b.settings.BaseSize + b.scaleAmpl*math.Cos(2*math.Pi*time*b.scaleFreq+b.phaseOffset)
}

// wingspanTurnRate is the turn rate (deg/s) at which the wings are folded to
// 60% of their straight-flight span. It does not follow MaxAngularVelocity.
const wingspanTurnRate = 25.0

// updateWingspan keeps the wings tight while turning.
func (b *Bird) updateWingspan() {
	s := b.settings
	momentary := steering.AngleDelta(b.prevAngle, b.velocity.Angle) * s.FramesPerSecond
	momentary = math.Min(momentary, s.MaxAngularVelocity)
	b.angularVelocity = b.angularVelocity*0.6 + momentary*0.4
	b.wingspan = 1.2 - (b.angularVelocity/wingspanTurnRate)*0.6
}

// ObserveCreature applies the behavior-specific reaction to the creature
// when it is within sight, and resets the encounter flags when it is not.
func (b *Bird) ObserveCreature(creature geometry.Vector2D) {
	s := b.settings
	dist := b.position.DistanceTo(creature)

	if dist >= b.radius*s.CreatureObservationRange {
		if b.enthralled {
			b.enthralled = false
			b.velocity.Length = s.BackgroundSpeed
		}
		b.spooked = false
		return
	}

	away := creature.HeadingTo(b.position)
	switch b.behavior {
	case Skittish:
		if !b.spooked {
			b.velocity.Length += s.SpookBoost
			b.spooked = true
		}
		b.turnTowards(away)
	case Neutral:
		b.turnTowards(away)
	case Friendly:
		b.enthralled = true
		if dist > s.ContactDistance {
			b.turnTowards(b.position.HeadingTo(creature))
			b.velocity.Length = s.EnthrallSpeed
		} else {
			// no heading is defined once the bird sits on the creature
			b.velocity.Length = 0
		}
	}
}

// ObserveObstacle gets a trapped bird out of the obstacle fast, and makes
// a bird close to its boundary turn away from it.
func (b *Bird) ObserveObstacle(obstacle geometry.Obstacle) {
	s := b.settings
	if obstacle.Contains(b.position) {
		b.velocity.Length = s.EscapeSpeed
		return
	}

	nearest := obstacle.NearestPoint(b.position)
	dist := b.position.DistanceTo(nearest)
	if dist < geometry.Epsilon {
		// outline of a shape without area, no direction to turn away from
		return
	}
	if dist < b.radius*s.ObstacleObservationRange {
		b.turnTowards(nearest.HeadingTo(b.position))
		if b.behavior == Skittish {
			b.velocity.Length += s.AvoidBoost
		}
	}
}

func (b *Bird) turnTowards(target float64) {
	b.velocity.Angle = steering.WeightedMeanAngle(b.velocity.Angle, target, b.settings.TurnWeight)
}
