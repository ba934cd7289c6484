package steering

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func angleEquals(a, b float64) bool {
	return AngleDelta(a, b) <= epsilon
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-370, 350},
		{720.5, 0.5},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); math.Abs(got-tt.want) > epsilon {
			t.Errorf("NormalizeDegrees(%v) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestWeightedMeanAngle_Identities(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		x := rng.Float64()*1080 - 360
		y := rng.Float64()*1080 - 360
		if got := WeightedMeanAngle(x, y, 1); !angleEquals(got, x) {
			t.Fatalf("WeightedMeanAngle(%v, %v, 1) = %v; want %v", x, y, got, NormalizeDegrees(x))
		}
		if got := WeightedMeanAngle(x, y, 0); !angleEquals(got, y) {
			t.Fatalf("WeightedMeanAngle(%v, %v, 0) = %v; want %v", x, y, got, NormalizeDegrees(y))
		}
		if got := WeightedMeanAngle(x, y, 0.9); got < 0 || got >= 360 {
			t.Fatalf("WeightedMeanAngle(%v, %v, 0.9) = %v; out of [0,360)", x, y, got)
		}
	}
}

func TestWeightedMeanAngle_ShorterArc(t *testing.T) {
	tests := []struct {
		name    string
		x, y, w float64
		want    float64
	}{
		{"forward small step", 0, 100, 0.9, 10},
		{"backward through zero", 10, 350, 0.9, 8},
		{"forward through zero", 350, 10, 0.9, 352},
		{"half way", 90, 180, 0.5, 135},
		{"same heading", 42, 42, 0.9, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeightedMeanAngle(tt.x, tt.y, tt.w); !angleEquals(got, tt.want) {
				t.Errorf("WeightedMeanAngle(%v, %v, %v) = %v; want %v", tt.x, tt.y, tt.w, got, tt.want)
			}
		})
	}
}

func TestWeightedMeanAngle_ConvergesMonotonically(t *testing.T) {
	// from 10 towards 350 must go through 0, never through 180
	angle := 10.0
	prev := AngleDelta(angle, 350)
	for i := 0; i < 200; i++ {
		angle = WeightedMeanAngle(angle, 350, 0.9)
		if angle > 10 && angle < 340 {
			t.Fatalf("step %d: heading %v took the long way round", i, angle)
		}
		d := AngleDelta(angle, 350)
		if d > prev+epsilon {
			t.Fatalf("step %d: distance grew from %v to %v", i, prev, d)
		}
		prev = d
	}
	if prev > 1e-6 {
		t.Errorf("did not converge, still %v degrees away", prev)
	}
}

func TestAngleDelta(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 90, 90},
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{-90, 270, 0},
	}
	for _, tt := range tests {
		if got := AngleDelta(tt.a, tt.b); math.Abs(got-tt.want) > epsilon {
			t.Errorf("AngleDelta(%v, %v) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRandomInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 1000; i++ {
		v := RandomInRange(rng, 0.2, 0.7)
		if v < 0.2 || v >= 0.7 {
			t.Fatalf("RandomInRange = %v; out of [0.2, 0.7)", v)
		}
		n := RandomIntInRange(rng, 10, 19)
		if n < 10 || n > 19 {
			t.Fatalf("RandomIntInRange = %v; out of [10, 19]", n)
		}
	}
	if got := RandomInRange(rng, 3, 3); got != 3 {
		t.Errorf("empty range = %v; want 3", got)
	}
	if got := RandomIntInRange(rng, 5, 2); got != 5 {
		t.Errorf("inverted int range = %v; want 5", got)
	}
}

func BenchmarkWeightedMeanAngle(b *testing.B) {
	angle := 0.0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		angle = WeightedMeanAngle(angle, 270, 0.9)
	}
}
