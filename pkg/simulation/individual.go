package simulation

import (
	"github.com/lao-tseu-is-alive/go-birds-simulation/pb"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/behavior"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// BirdActor wraps one bird. It only ever touches its own bird, so birds of
// a flock can move concurrently.
type BirdActor struct {
	ID   string
	bird *behavior.Bird
}

var _ actor.Actor = (*BirdActor)(nil)

func NewBirdActor(bird *behavior.Bird) *BirdActor {
	return &BirdActor{
		ID:   BirdName(bird.ID()),
		bird: bird,
	}
}

// ============================================================================
// Actor Lifecycle Hooks
// ============================================================================

func (b *BirdActor) PreStart(ctx *actor.Context) error {
	b.ID = ctx.ActorName()
	b.Log(ctx.ActorSystem(), "Born: %s (%s) at %s flying %s",
		b.ID, b.bird.Behavior(), b.bird.Position(), b.bird.Velocity())
	return nil
}

func (b *BirdActor) PostStop(ctx *actor.Context) error {
	b.Log(ctx.ActorSystem(), "Gone: %s", ctx.ActorName())
	return nil
}

// ============================================================================
// Message Routing (Entry Point)
// ============================================================================

func (b *BirdActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		b.Log(ctx.ActorSystem(), "%s started as %s", b.ID, b.bird.Behavior())

	case *pb.Tick:
		env := EnvironmentFromProto(msg.GetEnvironment())
		pose := b.bird.Step(msg.GetTime(), env)
		b.reportPose(ctx, pose)

	default:
		ctx.Unhandled()
	}
}

func (b *BirdActor) reportPose(ctx *actor.ReceiveContext, pose behavior.Pose) {
	// Reply to sender (should be World)
	if ctx.Sender() != nil && ctx.Sender() != ctx.ActorSystem().NoSender() {
		ctx.Tell(ctx.Sender(), PoseToProto(pose))
	}
}

// ============================================================================
// Utilities
// ============================================================================

func (b *BirdActor) Log(sys actor.ActorSystem, format string, args ...interface{}) {
	sys.Logger().Debugf("[%s] "+format, append([]interface{}{b.ID}, args...)...)
}
