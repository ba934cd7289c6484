package simulation

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pb"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-birds-simulation/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

// birdPixelsPerRadius turns radius*scale into the drawn width of a bird.
const birdPixelsPerRadius = 0.5

var (
	backgroundColor = color.RGBA{R: 24, G: 28, B: 40, A: 255}
	textBoxColor    = color.RGBA{R: 240, G: 235, B: 220, A: 40}

	birdSprite     *ebiten.Image
	birdSpriteOnce sync.Once
)

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.FlockSnapshot
	lastState  *pb.FlockSnapshot

	cfg      *Config
	simTime  float64 // time of the last Tick sent, -1 before the first one
	viewport geometry.Size
	creature *geometry.Vector2D
	paused   bool

	// UI Controls
	panel                *ui.UIPanel
	widgetShowRange      *ui.Checkbox
	widgetShowTextBox    *ui.Checkbox
	widgetTicksPerFrame  *ui.Slider
	widgetPause          *ui.Button
	widgetShowPanel      bool
	togglePanelKeyWasHit bool

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// GetNewGame spawns the world actor driving birds and returns the ebiten game
// rendering it.
func GetNewGame(ctx context.Context, cfg *Config, system actor.ActorSystem, birds []*behavior.Bird) (*Game, error) {
	birdSpriteOnce.Do(func() {
		birdSprite = generateSprite(birdDesign, birdPalette)
	})

	// 1. Create Channels for communication
	snapshotCh := make(chan *pb.FlockSnapshot, 10) // Buffer to avoid blocking

	// 2. Spawn World Actor
	viewport := cfg.Viewport()
	textBox := TextBox(viewport, cfg)
	worldActor := NewWorldActor(snapshotCh, birds, viewport, &textBox)
	worldPID, err := system.Spawn(ctx, "world", worldActor)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g := &Game{
		ctx:             ctx,
		System:          system,
		worldPID:        worldPID,
		snapshotCh:      snapshotCh,
		lastState:       &pb.FlockSnapshot{}, // Avoid nil pointer
		cfg:             cfg,
		simTime:         -1,
		viewport:        viewport,
		widgetShowPanel: true,
	}

	// 3. Initialize UI Panel
	panel := ui.NewUIPanel("Magic birds (H to hide)", 10, 10, 220, 240)
	panel.AddSection("Display")
	g.widgetShowRange = panel.AddCheckbox("Observation range", cfg.DisplayObservationRange)
	g.widgetShowTextBox = panel.AddCheckbox("Text region", cfg.DisplayTextBox)
	panel.EndSection()

	panel.AddSection("Simulation")
	g.widgetTicksPerFrame = panel.AddSlider("Ticks per frame", 1, 5, 1)
	g.widgetTicksPerFrame.Step = 1
	g.widgetPause = panel.AddButton("Pause", g.togglePause)
	panel.EndSection()
	g.panel = panel

	return g, nil
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.widgetPause.Label = "Resume"
	} else {
		g.widgetPause.Label = "Pause"
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel
	g.handlePanelToggle()
	if g.widgetShowPanel {
		g.panel.Update()
	}

	// 2. Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// 3. Forward the pointer as the creature
	g.trackCreature()

	if g.paused {
		return nil
	}

	// 4. Trigger Simulation Steps
	times := nextTickTimes(g.simTime, int(g.widgetTicksPerFrame.Value), g.cfg.FramesPerSecond)
	for _, t := range times {
		actor.Tell(g.ctx, g.worldPID, &pb.Tick{Time: t})
	}
	if len(times) > 0 {
		g.simTime = times[len(times)-1]
	}
	return nil
}

// nextTickTimes returns the times of the next n ticks of a simulation clock
// advancing 1/fps per tick. A negative last starts the clock at 0.
// Pausing freezes the clock, more ticks per frame fast-forward it.
func nextTickTimes(last float64, n int, fps float64) []float64 {
	if n <= 0 || !(fps > 0) {
		return nil
	}
	times := make([]float64, n)
	for i := range times {
		if last < 0 {
			times[i] = float64(i) / fps
		} else {
			times[i] = last + float64(i+1)/fps
		}
	}
	return times
}

func (g *Game) handlePanelToggle() {
	pressed := ebiten.IsKeyPressed(ebiten.KeyH)
	if pressed && !g.togglePanelKeyWasHit {
		g.widgetShowPanel = !g.widgetShowPanel
	}
	g.togglePanelKeyWasHit = pressed
}

// trackCreature sends the cursor position once it has entered the window,
// and then every time it moves.
func (g *Game) trackCreature() {
	x, y := ebiten.CursorPosition()
	pos := geometry.Vector2D{X: float64(x), Y: float64(y)}

	if g.creature == nil {
		inside := pos.X > 0 && pos.Y > 0 && pos.X < g.viewport.Width && pos.Y < g.viewport.Height
		if !inside {
			return
		}
	} else if g.creature.Eq(pos) {
		return
	}
	g.creature = &pos
	actor.Tell(g.ctx, g.worldPID, &pb.CreatureMoved{Position: VectorToProto(pos)})
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(backgroundColor)

	// 1. The text region the birds avoid
	if g.widgetShowTextBox.Value {
		if r := g.lastState.GetEnvironment().GetObstacle(); r != nil {
			box := RectFromProto(r)
			vector.FillRect(screen, float32(box.Left), float32(box.Top), float32(box.Width()), float32(box.Height()), textBoxColor, true)
			vector.StrokeRect(screen, float32(box.Left), float32(box.Top), float32(box.Width()), float32(box.Height()), 1, color.RGBA{R: 240, G: 235, B: 220, A: 120}, true)
			ebitenutil.DebugPrintAt(screen, "~ magic birds ~", int(box.Center().X)-45, int(box.Center().Y)-8)
		}
	}

	// 2. Draw all birds from the last known snapshot
	for _, pose := range g.lastState.GetPoses() {
		g.drawBird(screen, PoseFromProto(pose))
	}

	// 3. Draw UI Panel
	if g.widgetShowPanel {
		g.panel.Draw(screen)
	}

	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(g.viewport.Width/2)-18, 20)
	}

	// Display performance stats on the right side
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nBirds: %d\n\nUpdate: %.2fms\nDraw:   %.2fms\nTotal:  %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		len(g.lastState.GetPoses()),
		g.updateAvg,
		g.drawAvg,
		g.updateAvg+g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.viewport.Width)-150, 10)
}

// drawBird builds a fresh transform from the absolute pose every frame.
// The sprite faces right, so the wingspan is a vertical stretch.
func (g *Game) drawBird(screen *ebiten.Image, pose behavior.Pose) {
	clr := pose.Behavior.Color()

	if g.widgetShowRange.Value {
		vector.StrokeCircle(
			screen,
			float32(pose.Position.X),
			float32(pose.Position.Y),
			float32(pose.Radius*g.cfg.CreatureObservationRange),
			1,
			color.RGBA{R: clr.R, G: clr.G, B: clr.B, A: 60},
			true,
		)
	}

	op := &ebiten.DrawImageOptions{}
	w, h := birdSprite.Bounds().Dx(), birdSprite.Bounds().Dy()
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)

	k := pose.Radius * pose.Scale * birdPixelsPerRadius / float64(w)
	op.GeoM.Scale(k, k*pose.Wingspan)
	op.GeoM.Rotate(pose.Heading * math.Pi / 180)
	op.GeoM.Translate(pose.Position.X, pose.Position.Y)

	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(birdSprite, op)
}

// Layout follows the window size. A resize moves the text region, which
// is how birds can end up trapped inside it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := geometry.Size{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if size.Width > 0 && size.Height > 0 && size != g.viewport {
		g.viewport = size
		actor.Tell(g.ctx, g.worldPID, &pb.ViewportResized{Viewport: ViewportToProto(size)})
		actor.Tell(g.ctx, g.worldPID, &pb.ObstacleChanged{Obstacle: RectToProto(TextBox(size, g.cfg))})
	}
	return int(g.viewport.Width), int(g.viewport.Height)
}

// Legend:
// . = Transparent
// W = White (body)
// L = Light gray (wing edges)
// D = Darker gray (tail)
var birdDesign = []string{
	"....LL..........",
	".....WWL........",
	"......WWWL......",
	"DD.....WWWWL....",
	".DDWWWWWWWWWWWW.",
	"DD.....WWWWL....",
	"......WWWL......",
	".....WWL........",
	"....LL..........",
}

var birdPalette = map[rune]color.RGBA{
	'W': {R: 255, G: 255, B: 255, A: 255},
	'L': {R: 210, G: 210, B: 210, A: 255},
	'D': {R: 170, G: 170, B: 170, A: 255},
}

// generateSprite converts an ASCII grid into an Ebiten image
func generateSprite(design []string, palette map[rune]color.RGBA) *ebiten.Image {
	h := len(design)
	w := len(design[0])
	img := ebiten.NewImage(w, h)

	for y, row := range design {
		for x, char := range row {
			if col, ok := palette[char]; ok {
				img.Set(x, y, col)
			}
		}
	}
	return img
}
