package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// stageSize is the square playfield in screen pixels; the arena is fitted into it.
const stageSize = 1024

// hudScale is the integer upscale factor applied to HUD text.
const hudScale = 2

// maxFrameDelta caps a single frame's dt so a stalled window does not
// teleport the swarm.
const maxFrameDelta = 0.1

// gradientRings is the number of concentric fills used for the stage gradient.
const gradientRings = 32

var (
	backdropColor = color.RGBA{R: 12, G: 14, B: 18, A: 255}
	playerColor   = color.RGBA{R: 0x6b, G: 0xdd, B: 0xb7, A: 0xff}
	runnerColor   = color.RGBA{R: 0x23, G: 0x24, B: 0x24, A: 0xff}
	peelFill      = color.RGBA{R: 0xfa, G: 0xcc, B: 0x15, A: 0xff}
	peelStroke    = color.RGBA{R: 0x85, G: 0x4d, B: 0x0e, A: 0xff}
	touchColor    = color.RGBA{R: 56, G: 189, B: 248, A: 178}
)

// Game is the ebiten adapter around a Simulation. It owns input sampling,
// frame timing and drawing; all state changes go through Simulation.Step.
type Game struct {
	width  int
	height int
	scale  float64 // world units → screen pixels

	sim    *Simulation
	logger *slog.Logger

	lastFrame time.Time
	target    *mgl64.Vec2 // pointer/touch steering target in arena space

	hudBuf   *ebiten.Image
	copiedAt time.Time
	reported bool
}

// New builds a Game from cfg. seed 0 picks a time-based seed.
func New(cfg Config, seed int64, logger *slog.Logger) (*Game, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = slog.Default()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	sim, err := NewSimulation(cfg, rng)
	if err != nil {
		return nil, err
	}
	g := &Game{
		width:  stageSize + logPanelWidth,
		height: stageSize,
		sim:    sim,
		logger: logger,
	}
	g.scale = float64(stageSize) / (2 * (cfg.ArenaRadius + stageMargin))
	g.hudBuf = ebiten.NewImage(g.width/hudScale, g.height/hudScale)
	logger.Info("round started", "seed", seed, "runners", cfg.RunnerCount, "biome", g.sim.Biome.Name)
	return g, nil
}

// stageMargin is the world-space gap kept around the arena edge.
const stageMargin = 12

// Update samples input and advances the simulation one frame.
func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		(g.sim.Round.Over() && (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace))) {
		g.restart()
		return nil
	}
	if g.sim.Round.Over() && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySummary()
	}

	in := g.readInput()
	g.sim.Step(dt, in)

	if g.sim.Round.Over() && !g.reported {
		g.reported = true
		g.target = nil
		sum := g.sim.Round.Summary()
		g.logger.Info("round over",
			"outcome", sum.Outcome.String(),
			"elapsed", FormatElapsed(sum.Elapsed),
			"score", sum.Score,
			"total", sum.Total,
			"slips", sum.Slips)
	}
	return nil
}

func (g *Game) restart() {
	g.sim.Reset()
	g.target = nil
	g.reported = false
	g.lastFrame = time.Time{}
	g.logger.Info("round restarted", "biome", g.sim.Biome.Name)
}

func (g *Game) copySummary() {
	if err := clipboard.WriteAll(g.sim.Round.Summary().String()); err != nil {
		g.logger.Warn("copy summary to clipboard", "err", err)
		return
	}
	g.copiedAt = time.Now()
}

// readInput maps the keyboard, held mouse button and first touch onto an
// InputState.
func (g *Game) readInput() InputState {
	in := InputState{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}

	touches := ebiten.AppendTouchIDs(nil)
	switch {
	case len(touches) > 0:
		x, y := ebiten.TouchPosition(touches[0])
		t := g.screenToArena(x, y)
		g.target = &t
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		if x < stageSize {
			t := g.screenToArena(x, y)
			g.target = &t
		}
	default:
		g.target = nil
	}
	in.Target = g.target
	return in
}

func (g *Game) screenToArena(x, y int) mgl64.Vec2 {
	half := float64(stageSize) / 2
	return mgl64.Vec2{(float64(x) - half) / g.scale, (float64(y) - half) / g.scale}
}

func (g *Game) arenaToScreen(p mgl64.Vec2) (float32, float32) {
	half := float64(stageSize) / 2
	return float32(half + p[0]*g.scale), float32(half + p[1]*g.scale)
}

// Draw renders the current snapshot. It never mutates the simulation.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdropColor)
	snap := g.sim.Snapshot()

	g.drawStage(screen, snap)
	g.drawPeels(screen, snap)
	g.drawRunners(screen, snap)
	g.drawPlayer(screen, snap)
	for _, r := range snap.Runners {
		g.drawSpeechBubble(screen, r, runnerBubbleStyle)
	}
	g.drawTouchIndicator(screen, snap)
	g.drawSpeechBubble(screen, snap.Player, playerBubbleStyle)

	g.drawFeed(screen, stageSize)
	g.drawHUD(screen)
	if snap.Terminal() {
		g.drawGameOver(screen)
	}
}

func (g *Game) drawStage(screen *ebiten.Image, snap Snapshot) {
	cx, cy := g.arenaToScreen(mgl64.Vec2{})
	R := snap.Arena.Radius
	for i := 0; i < gradientRings; i++ {
		t := float64(i) / float64(gradientRings-1)
		r := R * (1 - float64(i)/float64(gradientRings)*0.9)
		vector.FillCircle(screen, cx, cy, float32(r*g.scale), snap.Biome.lerp(1-t), true)
	}
	vector.StrokeCircle(screen, cx, cy, float32(R*g.scale), 2, snap.Biome.Rim, true)
}

func (g *Game) drawPeels(screen *ebiten.Image, snap Snapshot) {
	for _, p := range snap.Peels {
		x, y := g.arenaToScreen(p.Pos)
		r := float32(p.Radius * g.scale)
		vector.FillCircle(screen, x, y, r, peelFill, true)
		vector.StrokeCircle(screen, x, y, r, 2, peelStroke, true)
	}
}

func (g *Game) drawRunners(screen *ebiten.Image, snap Snapshot) {
	for _, r := range snap.Runners {
		x, y := g.arenaToScreen(r.Pos)
		vector.FillCircle(screen, x, y, float32(r.Radius*g.scale), runnerColor, true)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, snap Snapshot) {
	x, y := g.arenaToScreen(snap.Player.Pos)
	alpha := float32(1)
	if snap.Stunned {
		alpha = 0.55
	}
	vector.FillCircle(screen, x, y, float32(snap.Player.Radius*g.scale), fade(playerColor, alpha), true)
}

func (g *Game) drawTouchIndicator(screen *ebiten.Image, snap Snapshot) {
	if g.target == nil || snap.Terminal() {
		return
	}
	x, y := g.arenaToScreen(*g.target)
	pr := snap.Player.Radius * g.scale
	width := float32(max(1.5, pr*0.18))
	vector.StrokeCircle(screen, x, y, float32(pr*1.8), width, touchColor, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := g.sim.HUD()
	lines := []string{
		fmt.Sprintf("TIME %s", hud.TimerText()),
		fmt.Sprintf("CAUGHT %s", hud.ScoreText()),
	}
	g.hudBuf.Clear()
	drawPanel(g.hudBuf, 4, 4, lines)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(hudScale), float64(hudScale))
	screen.DrawImage(g.hudBuf, opts)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("TPS %.0f  FPS %.0f  %s", ebiten.ActualTPS(), ebiten.ActualFPS(), g.sim.Biome.Name),
		8, g.height-20)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	sum := g.sim.Round.Summary()
	lines := []string{
		sum.Headline(),
		fmt.Sprintf("Elapsed: %s", FormatElapsed(sum.Elapsed)),
		fmt.Sprintf("Caught: %d / %d", sum.Score, sum.Total),
		"",
		"R / Enter: play again   C: copy result",
	}
	if !g.copiedAt.IsZero() && time.Since(g.copiedAt) < 2*time.Second {
		lines = append(lines, "copied to clipboard")
	}
	w, h := panelSize(lines)
	x := (stageSize/hudScale - w) / 2
	y := (stageSize/hudScale - h) / 2
	g.hudBuf.Clear()
	drawPanel(g.hudBuf, x, y, lines)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(hudScale), float64(hudScale))
	screen.DrawImage(g.hudBuf, opts)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
