// Package game owns the application shell: it wires the simulation core,
// pointer input, camera, renderers, control panel, and telemetry together and
// drives them from the raylib frame loop (or a bare loop in headless mode).
package game

import (
	"log/slog"
	"math/rand"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ember/camera"
	"github.com/pthm-cable/ember/config"
	"github.com/pthm-cable/ember/field"
	"github.com/pthm-cable/ember/renderer"
	"github.com/pthm-cable/ember/snapshot"
	"github.com/pthm-cable/ember/telemetry"
	"github.com/pthm-cable/ember/ui"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	SnapshotPath   string // initial layout snapshot CSV (empty = procedural)
	OutputDir      string // CSV/config output directory (empty = disabled)
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	StepsPerUpdate int
}

// Game holds the complete application state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	integrator *field.Integrator
	pointer    *field.PointerTracker
	seedPoints []float32 // replayed on reinit so layout stays stable

	camera     *camera.Camera
	points     *renderer.PointRenderer
	background *renderer.Background
	panel      *ui.Panel

	perf   *telemetry.PerfCollector
	output *telemetry.OutputManager

	opts       Options
	paused     bool
	lastCount  int
	windowLeft float64 // sim time when the current stats window opened

	touches map[int32]bool

	width, height float32
}

// NewGameWithOptions builds a ready-to-run game instance.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}
	if opts.StatsWindowSec <= 0 {
		opts.StatsWindowSec = float64(cfg.Telemetry.StatsWindow)
	}

	g := &Game{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		opts:      opts,
		lastCount: cfg.Field.Count,
		width:     float32(cfg.Screen.Width),
		height:    float32(cfg.Screen.Height),
		touches:   make(map[int32]bool),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
	}

	if opts.SnapshotPath != "" {
		pts, err := snapshot.Load(opts.SnapshotPath)
		if err != nil {
			slog.Error("failed to load layout snapshot, falling back to procedural",
				"path", opts.SnapshotPath, "error", err)
		} else {
			g.seedPoints = snapshot.Flatten(pts)
			slog.Info("layout snapshot loaded", "path", opts.SnapshotPath, "points", len(pts))
		}
	}

	g.pointer = field.NewPointerTracker(g.width, g.height)
	g.integrator = field.NewIntegrator(cfg, g.rng, g.pointer, g.width/2, g.height/2, g.seedPoints)

	if !opts.Headless {
		g.camera = camera.New(g.width, g.height, g.width/2, g.height/2)
		g.points = renderer.NewPointRenderer(cfg)
		g.background = renderer.NewBackground(int32(g.width), int32(g.height), opts.Seed)
		g.panel = ui.NewPanel(cfg, g.width-340, 20)
		// Route pointer mapping through the camera so pan/zoom keep the
		// interaction point under the cursor.
		g.pointer.SetTransform(g.camera.ScreenToWorld)
	}

	if opts.OutputDir != "" {
		out, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output directory", "dir", opts.OutputDir, "error", err)
		} else {
			g.output = out
			if err := out.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config snapshot", "error", err)
			}
		}
	}

	slog.Info("field initialized",
		"seed", opts.Seed,
		"particles", cfg.Field.Count,
		"snapshot", opts.SnapshotPath != "",
	)

	return g
}

// Update advances the simulation one frame in graphical mode.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseStep)
	for i := 0; i < g.opts.StepsPerUpdate; i++ {
		g.integrator.Step()
	}
	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.collectStats()

	g.reinitIfCountChanged()
}

// UpdateHeadless advances the simulation without graphics.
func (g *Game) UpdateHeadless() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseStep)
	for i := 0; i < g.opts.StepsPerUpdate; i++ {
		g.integrator.Step()
	}
	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.collectStats()
	g.perf.EndTick()
}

// Draw renders one frame. The perf tick opened in Update closes here so the
// render phase lands in the same sample as the step.
func (g *Game) Draw() {
	if !g.paused {
		g.perf.StartPhase(telemetry.PhaseRender)
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 4, G: 4, B: 10, A: 255})

	g.background.Draw()
	g.points.Draw(g.integrator.Positions(), g.integrator.Temperatures(), g.camera)
	g.panel.Draw()

	if g.paused {
		rl.DrawText("paused", 10, 10, 18, rl.Gray)
	}

	rl.EndDrawing()

	if !g.paused {
		g.perf.EndTick()
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.integrator.Tick()
}

// Unload stops the simulation and flushes telemetry.
func (g *Game) Unload() {
	g.integrator.Stop()
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
	if g.opts.LogStats {
		g.perf.Log(g.integrator.Tick())
	}
}

// reinitIfCountChanged rebuilds the particle buffers when the panel edits the
// count. Everything else is read live and needs no rebuild.
func (g *Game) reinitIfCountChanged() {
	if g.cfg.Field.Count == g.lastCount {
		return
	}
	g.lastCount = g.cfg.Field.Count

	g.integrator.Stop()
	g.integrator = field.NewIntegrator(g.cfg, g.rng, g.pointer, g.width/2, g.height/2, g.seedPoints)
	slog.Info("field reinitialized", "particles", g.cfg.Field.Count)
}

// collectStats emits a windowed stats record when the window elapses.
func (g *Game) collectStats() {
	clock := g.integrator.Clock()
	if clock-g.windowLeft < g.opts.StatsWindowSec {
		return
	}
	g.windowLeft = clock

	ptr := g.pointer.Sample()
	ws := telemetry.Collect(
		g.integrator.Tick(),
		clock,
		g.integrator.Velocities(),
		g.integrator.Temperatures(),
		ptr.Active,
	)

	if g.opts.LogStats {
		ws.Log()
		g.perf.Log(g.integrator.Tick())
	}
	if g.output != nil {
		if err := g.output.WriteTelemetry(ws); err != nil {
			slog.Error("failed to write stats record", "error", err)
		}
	}
}

// exportSnapshot saves the current positions as a layout snapshot CSV.
func (g *Game) exportSnapshot() {
	dir := g.opts.OutputDir
	if g.output != nil {
		dir = g.output.Dir()
	}
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, time.Now().Format("layout-20060102-150405.csv"))
	pts := snapshot.FromPositions(g.integrator.CopyPositions())
	if err := snapshot.Save(path, pts); err != nil {
		slog.Error("failed to export snapshot", "path", path, "error", err)
		return
	}
	slog.Info("snapshot exported", "path", path, "points", len(pts))
}
