package simulation

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-birds-simulation/pb"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBirdName(t *testing.T) {
	assert.Equal(t, "bird-007", BirdName(7))
	assert.Equal(t, "bird-1234", BirdName(1234))
	assert.Equal(t, 7, BirdID(BirdName(7)))
	assert.Equal(t, 1234, BirdID(BirdName(1234)))
	assert.Equal(t, -1, BirdID("world"))
}

func TestPoseProto(t *testing.T) {
	pose := behavior.Pose{
		ID:       3,
		Behavior: behavior.Friendly,
		Position: geometry.Vector2D{X: 10, Y: 20},
		Heading:  135,
		Scale:    2.1,
		Wingspan: 0.9,
		Radius:   40,
		Speed:    1.5,
	}
	msg := PoseToProto(pose)
	assert.Equal(t, "bird-003", msg.GetId())
	assert.Equal(t, pb.Behavior_BEHAVIOR_FRIENDLY, msg.GetBehavior())
	assert.Equal(t, pose, PoseFromProto(msg))
}

func TestEnvironmentFromProto_NilMeansUnknown(t *testing.T) {
	env := EnvironmentFromProto(&pb.Environment{Viewport: &pb.Viewport{Width: 640, Height: 480}})
	assert.Nil(t, env.Creature)
	assert.Nil(t, env.Obstacle)
	assert.Equal(t, geometry.Size{Width: 640, Height: 480}, env.Viewport)

	empty := EnvironmentFromProto(nil)
	assert.Nil(t, empty.Creature)
	assert.Nil(t, empty.Obstacle)
}

func TestEnvironmentProto_RoundTrip(t *testing.T) {
	box := geometry.Rect{Left: 1, Top: 2, Right: 30, Bottom: 40}
	env := behavior.Environment{
		Viewport: geometry.Size{Width: 800, Height: 600},
		Obstacle: box,
	}.WithCreature(geometry.Vector2D{X: 5, Y: 6})

	back := EnvironmentFromProto(EnvironmentToProto(env))
	require.NotNil(t, back.Creature)
	assert.Equal(t, geometry.Vector2D{X: 5, Y: 6}, *back.Creature)
	assert.Equal(t, box, back.Obstacle)
	assert.Equal(t, env.Viewport, back.Viewport)
}

func TestEnvironmentToProto_PolygonTravelsAsBounds(t *testing.T) {
	tri, err := geometry.NewPolygon(geometry.Vector2D{X: 0, Y: 0}, geometry.Vector2D{X: 10, Y: 0}, geometry.Vector2D{X: 5, Y: 8})
	require.NoError(t, err)

	msg := EnvironmentToProto(behavior.Environment{Obstacle: tri})
	assert.Equal(t, geometry.Rect{Left: 0, Top: 0, Right: 10, Bottom: 8}, RectFromProto(msg.GetObstacle()))
	assert.Nil(t, msg.GetCreature())
}
