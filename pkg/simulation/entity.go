package simulation

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-birds-simulation/pb"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/geometry"
)

// BirdName is the actor name of the bird with the given id.
func BirdName(id int) string {
	return fmt.Sprintf("bird-%03d", id)
}

// BirdID is the inverse of BirdName, it returns -1 for foreign names.
func BirdID(name string) int {
	var id int
	if _, err := fmt.Sscanf(name, "bird-%d", &id); err != nil {
		return -1
	}
	return id
}

// PoseToProto converts the clean Pose into the Protobuf "Envelope"
func PoseToProto(p behavior.Pose) *pb.Pose {
	return &pb.Pose{
		Id:       BirdName(p.ID),
		Behavior: pb.Behavior(p.Behavior),
		Position: VectorToProto(p.Position),
		Heading:  p.Heading,
		Scale:    p.Scale,
		Wingspan: p.Wingspan,
		Radius:   p.Radius,
		Speed:    p.Speed,
	}
}

// PoseFromProto converts incoming messages back to a Pose
func PoseFromProto(p *pb.Pose) behavior.Pose {
	return behavior.Pose{
		ID:       BirdID(p.GetId()),
		Behavior: behavior.Behavior(p.GetBehavior()),
		Position: VectorFromProto(p.GetPosition()),
		Heading:  p.GetHeading(),
		Scale:    p.GetScale(),
		Wingspan: p.GetWingspan(),
		Radius:   p.GetRadius(),
		Speed:    p.GetSpeed(),
	}
}

func VectorToProto(v geometry.Vector2D) *pb.Vector {
	return &pb.Vector{X: v.X, Y: v.Y}
}

// VectorFromProto maps a nil vector to the origin.
func VectorFromProto(v *pb.Vector) geometry.Vector2D {
	return geometry.Vector2D{X: v.GetX(), Y: v.GetY()}
}

func RectToProto(r geometry.Rect) *pb.Rect {
	return &pb.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func RectFromProto(r *pb.Rect) geometry.Rect {
	return geometry.Rect{Left: r.GetLeft(), Top: r.GetTop(), Right: r.GetRight(), Bottom: r.GetBottom()}
}

func ViewportToProto(s geometry.Size) *pb.Viewport {
	return &pb.Viewport{Width: s.Width, Height: s.Height}
}

func ViewportFromProto(v *pb.Viewport) geometry.Size {
	return geometry.Size{Width: v.GetWidth(), Height: v.GetHeight()}
}

// EnvironmentToProto only carries rectangles on the wire, a polygon travels
// as its bounding box.
func EnvironmentToProto(env behavior.Environment) *pb.Environment {
	out := &pb.Environment{Viewport: ViewportToProto(env.Viewport)}
	if env.Creature != nil {
		out.Creature = VectorToProto(*env.Creature)
	}
	switch o := env.Obstacle.(type) {
	case geometry.Rect:
		out.Obstacle = RectToProto(o)
	case *geometry.Rect:
		if o != nil {
			out.Obstacle = RectToProto(*o)
		}
	case *geometry.Polygon:
		if o != nil {
			out.Obstacle = RectToProto(o.Bounds())
		}
	}
	return out
}

// EnvironmentFromProto keeps nil sub-messages as unknown creature or obstacle.
func EnvironmentFromProto(env *pb.Environment) behavior.Environment {
	out := behavior.Environment{Viewport: ViewportFromProto(env.GetViewport())}
	if c := env.GetCreature(); c != nil {
		v := VectorFromProto(c)
		out.Creature = &v
	}
	if r := env.GetObstacle(); r != nil {
		out.Obstacle = RectFromProto(r)
	}
	return out
}
