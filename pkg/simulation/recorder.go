package simulation

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/behavior"
)

// TraceRow is one bird at one tick in trace.csv.
type TraceRow struct {
	Tick       int     `csv:"tick"`
	Time       float64 `csv:"time"`
	ID         int     `csv:"id"`
	Behavior   string  `csv:"behavior"`
	X          float64 `csv:"x"`
	Y          float64 `csv:"y"`
	Heading    float64 `csv:"heading"`
	Speed      float64 `csv:"speed"`
	Scale      float64 `csv:"scale"`
	Wingspan   float64 `csv:"wingspan"`
	Spooked    bool    `csv:"spooked"`
	Enthralled bool    `csv:"enthralled"`
}

// TraceRecorder appends flock states to a CSV stream, the header is
// written with the first batch of rows.
type TraceRecorder struct {
	w      io.Writer
	closer io.Closer
	header bool
	rows   int
}

func NewTraceRecorder(w io.Writer) *TraceRecorder {
	return &TraceRecorder{w: w}
}

// CreateTraceFile creates (or truncates) path and records into it.
func CreateTraceFile(path string) (*TraceRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	r := NewTraceRecorder(f)
	r.closer = f
	return r, nil
}

// Record writes one row per bird.
func (r *TraceRecorder) Record(tick int, t float64, birds []*behavior.Bird) error {
	if len(birds) == 0 {
		return nil
	}
	rows := make([]*TraceRow, 0, len(birds))
	for _, b := range birds {
		p := b.Pose()
		rows = append(rows, &TraceRow{
			Tick:       tick,
			Time:       t,
			ID:         p.ID,
			Behavior:   p.Behavior.String(),
			X:          p.Position.X,
			Y:          p.Position.Y,
			Heading:    p.Heading,
			Speed:      p.Speed,
			Scale:      p.Scale,
			Wingspan:   p.Wingspan,
			Spooked:    b.Spooked(),
			Enthralled: b.Enthralled(),
		})
	}

	var err error
	if r.header {
		err = gocsv.MarshalWithoutHeaders(rows, r.w)
	} else {
		err = gocsv.Marshal(rows, r.w)
		r.header = err == nil
	}
	if err != nil {
		return fmt.Errorf("failed to write trace at tick %d: %w", tick, err)
	}
	r.rows += len(rows)
	return nil
}

// Rows returns the number of data rows written so far.
func (r *TraceRecorder) Rows() int {
	return r.rows
}

func (r *TraceRecorder) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
