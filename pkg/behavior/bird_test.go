package behavior

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/steering"
)

const epsilon = 1e-9

var bigViewport = geometry.Size{Width: 1e6, Height: 1e6}

// newTestBird builds a bird without ambient oscillation so every test is deterministic.
func newTestBird(t *testing.T, bh Behavior, pos geometry.Vector2D, vel geometry.Polar, size float64) *Bird {
	t.Helper()
	b, err := NewBird(1, Params{
		Behavior: bh,
		Position: pos,
		Velocity: vel,
		Size:     size,
	}, DefaultSettings())
	if err != nil {
		t.Fatalf("NewBird: %v", err)
	}
	return b
}

func TestNewBird_Invalid(t *testing.T) {
	valid := Params{Behavior: Neutral, Size: 0.5, Velocity: geometry.Polar{Length: 1}}

	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"unknown behavior", func(p *Params) { p.Behavior = 0 }},
		{"zero size", func(p *Params) { p.Size = 0 }},
		{"NaN position", func(p *Params) { p.Position.X = math.NaN() }},
		{"negative speed", func(p *Params) { p.Velocity.Length = -1 }},
		{"infinite heading", func(p *Params) { p.Velocity.Angle = math.Inf(1) }},
		{"negative frequency", func(p *Params) { p.ScaleFrequency = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if _, err := NewBird(7, p, DefaultSettings()); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("NewBird err = %v; want ErrInvalidParams", err)
			}
		})
	}

	if _, err := NewBird(7, valid, DefaultSettings()); err != nil {
		t.Errorf("NewBird(valid) = %v", err)
	}
}

func TestNewBird_InvalidSettings(t *testing.T) {
	valid := Params{Behavior: Neutral, Size: 0.5, Velocity: geometry.Polar{Length: 1}}

	_, err := NewBird(0, valid, Settings{})
	if !errors.Is(err, ErrInvalidParams) || !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("NewBird(zero settings) err = %v; want ErrInvalidParams and ErrInvalidSettings", err)
	}

	s := DefaultSettings()
	s.SpeedDecay = 1.5
	if _, err := NewBird(0, valid, s); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("NewBird(decay 1.5) err = %v; want ErrInvalidSettings", err)
	}
}

func TestNewBird_Radius(t *testing.T) {
	b := newTestBird(t, Neutral, geometry.Vector2D{}, geometry.Polar{Length: 1}, 0.1)
	if math.Abs(b.Radius()-10) > epsilon {
		t.Errorf("Radius = %v; want 10", b.Radius())
	}
}

func TestSpeedDecay(t *testing.T) {
	s := DefaultSettings()
	b := newTestBird(t, Neutral, geometry.Vector2D{}, geometry.Polar{Length: 8, Angle: 30}, 0.3)

	prev := b.Velocity().Length
	for i := 0; i < 1000; i++ {
		b.Iterate(float64(i)/60, bigViewport)
		got := b.Velocity().Length
		if got < s.BackgroundSpeed {
			t.Fatalf("frame %d: speed %v dropped below background %v", i, got, s.BackgroundSpeed)
		}
		if prev > s.BackgroundSpeed && got >= prev {
			t.Fatalf("frame %d: speed did not decrease (%v -> %v)", i, prev, got)
		}
		prev = got
	}
	if math.Abs(prev-s.BackgroundSpeed) > 1e-3 {
		t.Errorf("speed settled at %v; want about %v", prev, s.BackgroundSpeed)
	}
}

func TestSpeedDecay_BelowCruiseUntouched(t *testing.T) {
	b := newTestBird(t, Neutral, geometry.Vector2D{}, geometry.Polar{Length: 0.7}, 0.3)
	b.Iterate(0, bigViewport)
	if got := b.Velocity().Length; got != 0.7 {
		t.Errorf("speed = %v; want 0.7 unchanged", got)
	}
}

func TestIterate_WrapInvariant(t *testing.T) {
	s := DefaultSettings()
	viewport := geometry.Size{Width: 800, Height: 600}
	rng := rand.New(rand.NewPCG(42, 1))

	for i := 0; i < 2000; i++ {
		pos := geometry.Vector2D{
			X: steering.RandomInRange(rng, -s.ViewportMargin, viewport.Width+s.ViewportMargin),
			Y: steering.RandomInRange(rng, -s.ViewportMargin, viewport.Height+s.ViewportMargin),
		}
		vel := geometry.Polar{
			Length: steering.RandomInRange(rng, 0, 50),
			Angle:  steering.RandomInRange(rng, 0, 360),
		}
		b := newTestBird(t, Skittish, pos, vel, 0.5)
		b.Iterate(steering.RandomInRange(rng, 0, 100), viewport)

		p := b.Position()
		if p.X < -s.ViewportMargin || p.X > viewport.Width+s.ViewportMargin ||
			p.Y < -s.ViewportMargin || p.Y > viewport.Height+s.ViewportMargin {
			t.Fatalf("bird from %v with %v ended at %v, outside the wrap area", pos, vel, p)
		}
	}
}

func TestIterate_WrapsToOppositeEdge(t *testing.T) {
	viewport := geometry.Size{Width: 800, Height: 600}
	b := newTestBird(t, Neutral, geometry.Vector2D{X: 899, Y: 300}, geometry.Polar{Length: 2, Angle: 0}, 0.5)
	b.Iterate(0, viewport)
	if got := b.Position().X; got != -100 {
		t.Errorf("X after leaving right edge = %v; want -100", got)
	}

	b = newTestBird(t, Neutral, geometry.Vector2D{X: 300, Y: -99}, geometry.Polar{Length: 2, Angle: 270}, 0.5)
	b.Iterate(0, viewport)
	if got := b.Position().Y; got != 700 {
		t.Errorf("Y after leaving top edge = %v; want 700", got)
	}
}

func TestIterate_ScaleOscillation(t *testing.T) {
	b, err := NewBird(1, Params{
		Behavior:       Friendly,
		Size:           0.5,
		Velocity:       geometry.Polar{Length: 1},
		ScaleAmplitude: 0.2,
		ScaleFrequency: 1.0 / 30,
	}, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}

	pose := b.Iterate(0, bigViewport)
	if math.Abs(pose.Scale-2.2) > epsilon {
		t.Errorf("scale at t=0 = %v; want 2.2", pose.Scale)
	}
	pose = b.Iterate(15, bigViewport)
	if math.Abs(pose.Scale-1.8) > epsilon {
		t.Errorf("scale at half period = %v; want 1.8", pose.Scale)
	}
}

func TestIterate_Wingspan(t *testing.T) {
	b := newTestBird(t, Neutral, geometry.Vector2D{}, geometry.Polar{Length: 1, Angle: 45}, 0.5)

	for i := 0; i < 50; i++ {
		b.Iterate(float64(i)/60, bigViewport)
	}
	if math.Abs(b.Wingspan()-1.2) > epsilon {
		t.Errorf("wingspan flying straight = %v; want 1.2", b.Wingspan())
	}

	// hard turns saturate the clamped angular velocity
	for i := 0; i < 50; i++ {
		b.ObserveCreature(b.Position().Add(geometry.Vector2D{X: 1}))
		b.velocity.Angle += 90
		b.Iterate(float64(i)/60, bigViewport)
		if w := b.Wingspan(); w < 0.6-epsilon || w > 1.2+epsilon {
			t.Fatalf("wingspan %v out of [0.6, 1.2]", w)
		}
	}
	if b.AngularVelocity() > DefaultSettings().MaxAngularVelocity+epsilon {
		t.Errorf("angular velocity %v exceeds the clamp", b.AngularVelocity())
	}
	if b.Wingspan() > 0.61 {
		t.Errorf("wingspan while turning = %v; want close to 0.6", b.Wingspan())
	}
}

func TestIterate_WingspanScaleIndependentOfClamp(t *testing.T) {
	s := DefaultSettings()
	s.MaxAngularVelocity = 10
	b, err := NewBird(1, Params{
		Behavior:          Neutral,
		Size:              0.5,
		Velocity:          geometry.Polar{Length: 1},
		RotationAmplitude: 30, // 30 degrees every frame, far above the clamp
	}, s)
	if err != nil {
		t.Fatal(err)
	}

	var pose Pose
	for i := 0; i < 100; i++ {
		pose = b.Iterate(float64(i)/s.FramesPerSecond, bigViewport)
	}
	if math.Abs(b.AngularVelocity()-10) > 1e-6 {
		t.Errorf("angular velocity = %v; want the clamp 10", b.AngularVelocity())
	}
	if want := 1.2 - (10.0/25)*0.6; math.Abs(pose.Wingspan-want) > 1e-6 {
		t.Errorf("wingspan = %v; want %v", pose.Wingspan, want)
	}
}

func TestIterate_HeadingWrapIsNotATurn(t *testing.T) {
	// crossing 0/360 degrees must not look like a 359 degree turn
	b := newTestBird(t, Neutral, geometry.Vector2D{}, geometry.Polar{Length: 1, Angle: 359.9}, 0.5)
	b.Iterate(0, bigViewport)
	b.velocity.Angle = 0.1
	b.Iterate(0, bigViewport)
	if b.AngularVelocity() > 6 {
		t.Errorf("angular velocity = %v; a 0.2 degree step should stay small", b.AngularVelocity())
	}
}

func TestObserveCreature_OutOfRangeNeutralUnchanged(t *testing.T) {
	// radius 10, creature range 30
	b := newTestBird(t, Neutral, geometry.Vector2D{}, geometry.Polar{Length: 1, Angle: 0}, 0.1)

	b.ObserveCreature(geometry.Vector2D{X: 1000})
	if v := b.Velocity(); v.Length != 1 || v.Angle != 0 {
		t.Fatalf("velocity changed out of range: %v", v)
	}

	// in range: turns away from the creature, 10% of the arc per call
	remaining := 180.0
	for i := 0; i < 5; i++ {
		b.ObserveCreature(geometry.Vector2D{X: 5})
		got := steering.AngleDelta(b.Velocity().Angle, 180)
		if math.Abs(got-remaining*0.9) > 1e-6 {
			t.Fatalf("call %d: %v degrees from 180; want %v", i, got, remaining*0.9)
		}
		remaining = got
		if b.Velocity().Length != 1 {
			t.Fatalf("neutral bird changed speed: %v", b.Velocity().Length)
		}
	}
}

func TestObserveCreature_SkittishOneShotBoost(t *testing.T) {
	b := newTestBird(t, Skittish, geometry.Vector2D{}, geometry.Polar{Length: 1, Angle: 0}, 0.1)
	near := geometry.Vector2D{X: 5}
	far := geometry.Vector2D{X: 1000}

	b.ObserveCreature(near)
	if got := b.Velocity().Length; got != 6 {
		t.Fatalf("speed after first sighting = %v; want 6", got)
	}
	if !b.Spooked() {
		t.Fatal("bird should be spooked")
	}
	for i := 0; i < 10; i++ {
		b.ObserveCreature(near)
	}
	if got := b.Velocity().Length; got != 6 {
		t.Fatalf("speed while staying in range = %v; want 6", got)
	}

	b.ObserveCreature(far)
	if b.Spooked() {
		t.Fatal("leaving range must clear spooked")
	}
	if got := b.Velocity().Length; got != 6 {
		t.Fatalf("leaving range changed speed to %v", got)
	}

	b.ObserveCreature(near)
	if got := b.Velocity().Length; got != 11 {
		t.Fatalf("speed after re-entering = %v; want 11", got)
	}
}

func TestObserveCreature_FriendlyConvergence(t *testing.T) {
	s := DefaultSettings()
	b := newTestBird(t, Friendly, geometry.Vector2D{}, geometry.Polar{Length: 1.5, Angle: 200}, 1)
	creature := geometry.Vector2D{X: 0, Y: 100} // heading 90

	prev := steering.AngleDelta(b.Velocity().Angle, 90)
	for i := 0; i < 300; i++ {
		b.ObserveCreature(creature)
		d := steering.AngleDelta(b.Velocity().Angle, 90)
		if d > prev+epsilon {
			t.Fatalf("call %d: heading moved away from the creature (%v -> %v)", i, prev, d)
		}
		prev = d
	}
	if prev > 1e-6 {
		t.Errorf("heading still %v degrees from the creature", prev)
	}
	if got := b.Velocity().Length; got != s.EnthrallSpeed {
		t.Errorf("speed = %v; want enthrall speed %v", got, s.EnthrallSpeed)
	}
	if !b.Enthralled() {
		t.Error("bird should be enthralled")
	}

	// sitting on the creature: stop, keep heading
	heading := b.Velocity().Angle
	b.ObserveCreature(geometry.Vector2D{X: 3, Y: 0})
	if got := b.Velocity(); got.Length != 0 || got.Angle != heading {
		t.Errorf("velocity at contact = %v; want 0 speed, heading %v", got, heading)
	}

	b.ObserveCreature(geometry.Vector2D{X: 5000})
	if b.Enthralled() {
		t.Error("leaving range must clear enthralled")
	}
	if got := b.Velocity().Length; got != s.BackgroundSpeed {
		t.Errorf("speed after leaving = %v; want background %v", got, s.BackgroundSpeed)
	}
}

func TestObserveObstacle_TrapRecovery(t *testing.T) {
	box := geometry.Rect{Left: 0, Top: 0, Right: 200, Bottom: 100}
	for _, speed := range []float64{0, 0.2, 1.5, 30} {
		b := newTestBird(t, Neutral, geometry.Vector2D{X: 100, Y: 50}, geometry.Polar{Length: speed, Angle: 12}, 0.5)
		b.ObserveObstacle(box)
		if got := b.Velocity(); got.Length != DefaultSettings().EscapeSpeed || got.Angle != 12 {
			t.Errorf("from speed %v: velocity = %v; want escape speed, heading kept", speed, got)
		}
	}
}

func TestObserveObstacle_Avoidance(t *testing.T) {
	box := geometry.Rect{Left: -50, Top: 0, Right: 50, Bottom: 50}

	t.Run("skittish turns away and speeds up", func(t *testing.T) {
		b := newTestBird(t, Skittish, geometry.Vector2D{X: 0, Y: -5}, geometry.Polar{Length: 1, Angle: 90}, 0.1)
		b.ObserveObstacle(box)
		if d := steering.AngleDelta(b.Velocity().Angle, 270); math.Abs(d-162) > 1e-6 {
			t.Errorf("distance to escape heading = %v; want 162", d)
		}
		if got := b.Velocity().Length; math.Abs(got-1.1) > epsilon {
			t.Errorf("speed = %v; want 1.1", got)
		}
	})

	t.Run("friendly turns away without speeding up", func(t *testing.T) {
		b := newTestBird(t, Friendly, geometry.Vector2D{X: 0, Y: -5}, geometry.Polar{Length: 1, Angle: 90}, 0.1)
		b.ObserveObstacle(box)
		if b.Velocity().Length != 1 {
			t.Errorf("speed = %v; want 1", b.Velocity().Length)
		}
	})

	t.Run("far from the obstacle nothing happens", func(t *testing.T) {
		b := newTestBird(t, Skittish, geometry.Vector2D{X: 0, Y: -50}, geometry.Polar{Length: 1, Angle: 90}, 0.1)
		b.ObserveObstacle(box)
		if v := b.Velocity(); v.Length != 1 || v.Angle != 90 {
			t.Errorf("velocity = %v; want unchanged", v)
		}
	})
}

func TestObserveObstacle_Degenerate(t *testing.T) {
	b := newTestBird(t, Skittish, geometry.Vector2D{X: 100, Y: 100}, geometry.Polar{Length: 1, Angle: 0}, 0.5)
	b.ObserveObstacle(geometry.Rect{Left: 100, Top: 100, Right: 100, Bottom: 100})
	v := b.Velocity()
	if v.Length == DefaultSettings().EscapeSpeed {
		t.Error("a zero-area obstacle must not trap the bird")
	}
	if math.IsNaN(v.Angle) || math.IsNaN(v.Length) {
		t.Errorf("velocity became NaN: %v", v)
	}
}

func TestObserveObstacle_EmptyPolygon(t *testing.T) {
	b := newTestBird(t, Skittish, geometry.Vector2D{X: 100, Y: 100}, geometry.Polar{Length: 1, Angle: 30}, 0.5)
	b.ObserveObstacle(&geometry.Polygon{})
	if v := b.Velocity(); v != (geometry.Polar{Length: 1, Angle: 30}) {
		t.Errorf("velocity = %v; an empty polygon must be ignored", v)
	}

	var none *geometry.Polygon
	pose := b.Step(0, Environment{Viewport: bigViewport, Obstacle: none})
	if math.IsNaN(pose.Heading) || math.IsNaN(pose.Wingspan) {
		t.Errorf("pose with a nil polygon = %+v", pose)
	}
}

func TestStep_UnknownEnvironment(t *testing.T) {
	b := newTestBird(t, Skittish, geometry.Vector2D{X: 10, Y: 10}, geometry.Polar{Length: 1, Angle: 0}, 0.5)
	pose := b.Step(0, Environment{Viewport: bigViewport})
	if pose.Speed != 1 || pose.Heading != 0 {
		t.Errorf("pose without creature or obstacle = %+v; want plain motion", pose)
	}
	if !pose.Position.Eq(geometry.Vector2D{X: 11, Y: 10}) {
		t.Errorf("position = %v; want (11,10)", pose.Position)
	}

	env := Environment{Viewport: bigViewport}.WithCreature(geometry.Vector2D{X: 12, Y: 10})
	pose = b.Step(1.0/60, env)
	if pose.Speed != 6 {
		t.Errorf("speed after spotting the creature = %v; want 6", pose.Speed)
	}
	if pose.ID != 1 || pose.Behavior != Skittish || pose.Radius != 50 {
		t.Errorf("pose identity = %+v", pose)
	}
}

func BenchmarkBirdStep(b *testing.B) {
	bird, _ := NewBird(1, Params{
		Behavior:          Skittish,
		Size:              0.5,
		Velocity:          geometry.Polar{Length: 1, Angle: 10},
		RotationAmplitude: 0.3,
		RotationFrequency: 0.1,
		ScaleAmplitude:    0.1,
		ScaleFrequency:    0.03,
	}, DefaultSettings())
	env := Environment{
		Viewport: geometry.Size{Width: 1280, Height: 720},
		Obstacle: geometry.Rect{Left: 400, Top: 200, Right: 880, Bottom: 520},
	}.WithCreature(geometry.Vector2D{X: 640, Y: 100})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bird.Step(float64(i)/60, env)
	}
}
