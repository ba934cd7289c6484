package behavior

import (
	"sync"

	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/geometry"
)

// Environment is what every bird observes during one tick.
// A nil Creature or Obstacle means "not known yet" and disables the
// matching reaction.
type Environment struct {
	Viewport geometry.Size
	Creature *geometry.Vector2D
	Obstacle geometry.Obstacle
}

// WithCreature returns a copy of env tracking the creature at pos.
func (env Environment) WithCreature(pos geometry.Vector2D) Environment {
	env.Creature = &pos
	return env
}

// Population owns a flock and the shared environment it reacts to.
// Input events may arrive from any goroutine; Tick takes one snapshot of the
// environment and applies it to every bird.
type Population struct {
	mu  sync.RWMutex // guards env
	env Environment

	tickMu sync.Mutex // guards birds
	birds  []*Bird
}

// NewPopulation creates a driver for birds flying in a viewport of the given size.
func NewPopulation(birds []*Bird, viewport geometry.Size) *Population {
	return &Population{
		birds: birds,
		env:   Environment{Viewport: viewport},
	}
}

// OnCreatureMove records the latest creature (pointer) position.
func (p *Population) OnCreatureMove(pos geometry.Vector2D) {
	p.mu.Lock()
	p.env.Creature = &pos
	p.mu.Unlock()
}

// OnObstacleChanged replaces the obstacle, nil forgets it. A nil *Rect or
// *Polygon counts as nil.
func (p *Population) OnObstacleChanged(o geometry.Obstacle) {
	switch v := o.(type) {
	case *geometry.Rect:
		if v == nil {
			o = nil
		}
	case *geometry.Polygon:
		if v == nil {
			o = nil
		}
	}
	p.mu.Lock()
	p.env.Obstacle = o
	p.mu.Unlock()
}

// OnResize updates the viewport used for the wrap-around.
func (p *Population) OnResize(viewport geometry.Size) {
	p.mu.Lock()
	p.env.Viewport = viewport
	p.mu.Unlock()
}

// Environment returns a snapshot of the current environment.
func (p *Population) Environment() Environment {
	p.mu.RLock()
	defer p.mu.RUnlock()
	env := p.env
	if env.Creature != nil {
		c := *env.Creature
		env.Creature = &c
	}
	return env
}

// Tick advances every bird by one frame at absolute time (seconds) and
// returns their poses, in flock order.
func (p *Population) Tick(time float64) []Pose {
	env := p.Environment()

	p.tickMu.Lock()
	defer p.tickMu.Unlock()
	poses := make([]Pose, len(p.birds))
	for i, b := range p.birds {
		poses[i] = b.Step(time, env)
	}
	return poses
}

// Birds returns the flock. Callers must not step the birds themselves.
func (p *Population) Birds() []*Bird {
	return p.birds
}

// Len returns the number of birds.
func (p *Population) Len() int {
	return len(p.birds)
}
