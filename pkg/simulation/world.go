package simulation

import (
	"sort"
	"time"

	"github.com/lao-tseu-is-alive/go-birds-simulation/pb"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/geometry"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/proto"
)

// WorldActor is the driver of the flock. Its mailbox serialises input
// events and ticks, so every tick hands the same environment to all birds.
type WorldActor struct {
	birds     []*behavior.Bird
	pids      []*actor.PID // Keep track of children
	pidsCache map[string]*actor.PID // by bird name, filters reported poses
	poses     map[string]*pb.Pose // latest pose reported by each bird

	// env is mutated in place by input events, ticks carry a clone of it
	env      *pb.Environment
	lastTime float64

	// Communication with UI
	snapshotCh chan<- *pb.FlockSnapshot

	// --- Benchmark Stats ---
	tickCount    int
	msgSentCount int
	msgRecvCount int
	lastLogTime  time.Time
}

// NewWorldActor creates the world logic unit. The obstacle may be nil when
// it is not known yet.
func NewWorldActor(snapshotCh chan<- *pb.FlockSnapshot, birds []*behavior.Bird, viewport geometry.Size, obstacle *geometry.Rect) *WorldActor {
	env := &pb.Environment{Viewport: ViewportToProto(viewport)}
	if obstacle != nil {
		env.Obstacle = RectToProto(*obstacle)
	}
	return &WorldActor{
		birds:       birds,
		pidsCache:   make(map[string]*actor.PID),
		poses:       make(map[string]*pb.Pose),
		env:         env,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is getting ready for %d birds...", len(w.birds))
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Info("World Started. Spawning the flock...")
		w.spawnFlock(ctx)

	// 1. Handle Updates from birds
	case *pb.Pose:
		w.msgRecvCount++
		if _, ok := w.pidsCache[msg.GetId()]; !ok {
			ctx.Logger().Warnf("Dropping pose of unknown bird %q", msg.GetId())
			return
		}
		w.poses[msg.GetId()] = msg

	// 2. Input events (Driven by the UI)
	case *pb.CreatureMoved:
		if msg.GetPosition() == nil {
			w.env.Creature = nil
		} else {
			w.env.Creature = proto.Clone(msg.GetPosition()).(*pb.Vector)
		}

	case *pb.ObstacleChanged:
		if msg.GetObstacle() == nil {
			w.env.Obstacle = nil
		} else {
			w.env.Obstacle = proto.Clone(msg.GetObstacle()).(*pb.Rect)
		}

	case *pb.ViewportResized:
		if msg.GetViewport() != nil {
			w.env.Viewport = proto.Clone(msg.GetViewport()).(*pb.Viewport)
		}

	// 3. The Main Simulation Step (Driven by Game Loop)
	case *pb.Tick:
		w.tickCount++
		w.logBenchmarks(ctx)
		w.lastTime = msg.GetTime()
		w.broadcastTick(ctx, msg.GetTime())
		w.pushSnapshot()

	case *pb.GetSnapshot:
		ctx.Response(w.buildSnapshot())

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | MSG RATE: %d/sec (Sent: %d, Recv: %d) | Birds: %d",
			w.tickCount, w.msgSentCount+w.msgRecvCount, w.msgSentCount, w.msgRecvCount, len(w.pids))
		w.tickCount = 0
		w.msgSentCount = 0
		w.msgRecvCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

// broadcastTick sends one frame to every bird. All birds share the same
// read-only copy of the environment.
func (w *WorldActor) broadcastTick(ctx *actor.ReceiveContext, t float64) {
	tick := &pb.Tick{
		Time:        t,
		Environment: proto.Clone(w.env).(*pb.Environment),
	}
	for _, pid := range w.pids {
		w.msgSentCount++
		ctx.Tell(pid, tick)
	}
}

func (w *WorldActor) spawnFlock(ctx *actor.ReceiveContext) {
	for _, bird := range w.birds {
		name := BirdName(bird.ID())
		pid := ctx.Spawn(name, NewBirdActor(bird))
		w.pids = append(w.pids, pid)
		w.pidsCache[name] = pid

		// We must record the pose NOW, so the very first snapshot
		// already shows every bird.
		w.poses[name] = PoseToProto(bird.Pose())
	}
}

func (w *WorldActor) buildSnapshot() *pb.FlockSnapshot {
	snapshot := &pb.FlockSnapshot{
		Time:        w.lastTime,
		Poses:       make([]*pb.Pose, 0, len(w.poses)),
		Environment: proto.Clone(w.env).(*pb.Environment),
	}
	for _, pose := range w.poses {
		snapshot.Poses = append(snapshot.Poses, pose)
	}
	sort.Slice(snapshot.Poses, func(i, j int) bool {
		return snapshot.Poses[i].GetId() < snapshot.Poses[j].GetId()
	})
	return snapshot
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	return nil
}
