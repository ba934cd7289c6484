package simulation

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/geometry"
	"github.com/tochemey/goakt/v3/log"
)

// shrunkViewportRatio is the size of the alternate window of scripted resizes.
const shrunkViewportRatio = 0.75

// HeadlessOptions drive a run without window.
type HeadlessOptions struct {
	MaxTicks    int
	StatsEvery  int    // log statistics every N ticks, 0 disables them
	ResizeEvery int    // toggle between the configured and a shrunk viewport every N ticks, 0 disables it
	OutputDir   string // trace.csv and config.yaml are written here when set
	// Trace receives the CSV trace instead of OutputDir/trace.csv and is
	// closed at the end of the run.
	Trace  io.WriteCloser
	Logger log.Logger
}

// HeadlessResult is what a finished headless run reports.
type HeadlessResult struct {
	Ticks     int
	TraceRows int
	Resizes   int
	Viewport  geometry.Size // at the end of the run
	Final     FlockStats
}

// CreaturePath is the scripted pointer of a headless run: a Lissajous curve
// sweeping the whole viewport, text region included.
func CreaturePath(t float64, viewport geometry.Size) geometry.Vector2D {
	c := viewport.Center()
	return geometry.Vector2D{
		X: c.X + 0.45*viewport.Width*math.Sin(2*math.Pi*t/17),
		Y: c.Y + 0.45*viewport.Height*math.Sin(2*math.Pi*t/11+math.Pi/2),
	}
}

// resizedViewport is the viewport after the n-th scripted resize.
func resizedViewport(cfg *Config, n int) geometry.Size {
	v := cfg.Viewport()
	if n%2 == 1 {
		v.Width *= shrunkViewportRatio
		v.Height *= shrunkViewportRatio
	}
	return v
}

func openTrace(opts HeadlessOptions) (*TraceRecorder, error) {
	if opts.Trace != nil {
		rec := NewTraceRecorder(opts.Trace)
		rec.closer = opts.Trace
		return rec, nil
	}
	if opts.OutputDir == "" {
		return nil, nil
	}
	return CreateTraceFile(filepath.Join(opts.OutputDir, "trace.csv"))
}

// RunHeadless samples a flock from cfg and drives it synchronously for
// opts.MaxTicks frames, or until ctx is cancelled. The creature shows up
// after one second, so the first frames run without it. Scripted resizes
// move the text region like a window resize does, trapping the birds that
// end up inside it.
func RunHeadless(ctx context.Context, cfg *Config, opts HeadlessOptions) (res *HeadlessResult, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.DiscardLogger
	}
	if opts.MaxTicks <= 0 {
		return nil, fmt.Errorf("%w: maxTicks must be > 0, got %d", ErrInvalidConfig, opts.MaxTicks)
	}

	viewport := cfg.Viewport()
	textBox := TextBox(viewport, cfg)
	birds, err := NewFlock(SampleFlock(NewRand(cfg.Seed), cfg, viewport, textBox), cfg.Settings())
	if err != nil {
		return nil, err
	}
	pop := behavior.NewPopulation(birds, viewport)
	pop.OnObstacleChanged(textBox)
	logger.Infof("Headless run: %d birds, viewport %s, text box %s, %d ticks", pop.Len(), viewport, textBox, opts.MaxTicks)

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output dir: %w", err)
		}
		if err := cfg.SaveYAML(filepath.Join(opts.OutputDir, "config.yaml")); err != nil {
			return nil, err
		}
	}
	rec, err := openTrace(opts)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		defer func() {
			if cerr := rec.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close trace: %w", cerr)
			}
		}()
	}

	res = &HeadlessResult{}
	for tick := 0; tick < opts.MaxTicks; tick++ {
		if err := ctx.Err(); err != nil {
			logger.Warnf("Headless run interrupted at tick %d: %v", tick, err)
			break
		}

		if opts.ResizeEvery > 0 && tick > 0 && tick%opts.ResizeEvery == 0 {
			res.Resizes++
			viewport = resizedViewport(cfg, res.Resizes)
			textBox = TextBox(viewport, cfg)
			pop.OnResize(viewport)
			pop.OnObstacleChanged(textBox)
			logger.Debugf("Resized to %s, text box %s", viewport, textBox)
		}

		t := float64(tick) / cfg.FramesPerSecond
		if t >= 1 {
			pop.OnCreatureMove(CreaturePath(t, viewport))
		}
		pop.Tick(t)
		res.Ticks++

		if rec != nil {
			if err := rec.Record(tick, t, pop.Birds()); err != nil {
				return res, err
			}
		}
		if opts.StatsEvery > 0 && (tick+1)%opts.StatsEvery == 0 {
			logger.Infof("📊 %s", ComputeStats(tick, t, pop.Birds(), textBox))
		}
	}

	// before the first tick the flock is still at its initial state, tick 0
	last := max(res.Ticks-1, 0)
	res.Final = ComputeStats(last, float64(last)/cfg.FramesPerSecond, pop.Birds(), textBox)
	res.Viewport = viewport
	if rec != nil {
		res.TraceRows = rec.Rows()
		logger.Infof("Trace written (%d rows)", res.TraceRows)
	}
	return res, nil
}
