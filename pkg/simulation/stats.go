package simulation

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/geometry"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FlockStats summarises the state of a flock at one instant.
type FlockStats struct {
	Tick  int
	Time  float64
	Birds int

	MeanSpeed    float64
	StdDevSpeed  float64
	MaxSpeed     float64
	MeanWingspan float64
	MeanScale    float64

	Spooked    int
	Enthralled int
	Trapped    int // birds whose center is inside the obstacle
}

// ComputeStats collects the flock statistics, obstacle may be nil.
func ComputeStats(tick int, t float64, birds []*behavior.Bird, obstacle geometry.Obstacle) FlockStats {
	s := FlockStats{Tick: tick, Time: t, Birds: len(birds)}
	if len(birds) == 0 {
		return s
	}

	speeds := make([]float64, len(birds))
	wingspans := make([]float64, len(birds))
	scales := make([]float64, len(birds))
	for i, b := range birds {
		speeds[i] = b.Velocity().Length
		wingspans[i] = b.Wingspan()
		scales[i] = b.Scale()
		if b.Spooked() {
			s.Spooked++
		}
		if b.Enthralled() {
			s.Enthralled++
		}
		if obstacle != nil && obstacle.Contains(b.Position()) {
			s.Trapped++
		}
	}

	s.MeanSpeed, s.StdDevSpeed = stat.MeanStdDev(speeds, nil)
	if len(birds) == 1 {
		// the unbiased estimator is undefined for one sample
		s.StdDevSpeed = 0
	}
	s.MaxSpeed = floats.Max(speeds)
	s.MeanWingspan = stat.Mean(wingspans, nil)
	s.MeanScale = stat.Mean(scales, nil)
	return s
}

func (s FlockStats) String() string {
	return fmt.Sprintf("tick %d (%.1fs) | birds %d | speed %.2f±%.2f max %.2f | wingspan %.2f | scale %.2f | spooked %d enthralled %d trapped %d",
		s.Tick, s.Time, s.Birds, s.MeanSpeed, s.StdDevSpeed, s.MaxSpeed, s.MeanWingspan, s.MeanScale,
		s.Spooked, s.Enthralled, s.Trapped)
}
