// Package behavior implements the steering core of a magic bird: its own
// continuous motion plus its reactions to the creature (the pointer) and to
// the text region it has to fly around.
package behavior

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrInvalidBehavior is returned when parsing an unknown behavior name.
var ErrInvalidBehavior = errors.New("invalid behavior")

// Behavior is the personality of a bird, fixed when the bird is created.
// The numeric values match the flock.v1.Behavior protobuf enum.
type Behavior int32

const (
	// Skittish birds flee the creature with a one-time speed boost.
	Skittish Behavior = iota + 1
	// Friendly birds slow down and fly towards the creature.
	Friendly
	// Neutral birds turn away from the creature without speeding up.
	Neutral
)

// All lists every valid behavior, in the order used to balance a flock.
var All = []Behavior{Skittish, Friendly, Neutral}

var behaviorNames = map[Behavior]string{
	Skittish: "skittish",
	Friendly: "friendly",
	Neutral:  "neutral",
}

// String implements the fmt.Stringer interface.
func (b Behavior) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Behavior(%d)", int32(b))
}

// Valid reports whether b is one of the three known behaviors.
func (b Behavior) Valid() bool {
	_, ok := behaviorNames[b]
	return ok
}

// Color returns the fill color used to draw birds of this behavior.
func (b Behavior) Color() color.RGBA {
	switch b {
	case Skittish:
		return color.RGBA{R: 0xa1, G: 0xd8, B: 0xdd, A: 0xff}
	case Friendly:
		return color.RGBA{R: 0xbf, G: 0xff, B: 0xcd, A: 0xff}
	case Neutral:
		return color.RGBA{R: 0xdf, G: 0xd6, B: 0xd6, A: 0xff}
	default:
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
}

// ParseBehavior converts a name such as "friendly" into a Behavior.
func ParseBehavior(name string) (Behavior, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for b, s := range behaviorNames {
		if s == n {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBehavior, name)
}
