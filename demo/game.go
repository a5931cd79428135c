package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/vulp/cull"
	"github.com/oliverbestmann/vulp/glimpse"
	"github.com/oliverbestmann/vulp/glm"
	"github.com/oliverbestmann/vulp/orion"
	"github.com/oliverbestmann/vulp/palette"
	"github.com/oliverbestmann/vulp/scene"
)

const (
	// left mouse button orbits the camera while held
	dragButton glimpse.MouseButton = 0

	// radians per pixel of mouse movement
	dragSpeed = 0.005

	// radians per frame when using the arrow keys or auto orbit
	keyOrbitStep  = glm.Rad(0.03)
	autoOrbitStep = glm.Rad(0.004)

	zoomFactor  = 1.1
	minDistance = 5
	maxDistance = 180
)

type Options struct {
	Palette palette.Options
	Camera  scene.OrbitCamera
	Terrain scene.TerrainOptions

	// Workers used when parallel culling is enabled
	Workers int

	// Commands are registered after the built-in commands
	Commands []palette.Command
}

// Game shows a terrain of boxes, culled against the frustum of an orbit
// camera every frame. Nothing is rendered, the window title shows the
// culling results and the command palette.
type Game struct {
	opts Options

	palette *palette.Palette
	surface orion.TitleSurface

	camera  scene.OrbitCamera
	terrain scene.TerrainOptions
	boxes   []cull.Box

	frustum    cull.Frustum
	hasFrustum bool
	visible    []int

	frozen    bool
	parallel  bool
	autoOrbit bool
	showStats bool
}

func NewGame(opts Options) *Game {
	return &Game{
		opts:      opts,
		palette:   palette.New(opts.Palette),
		camera:    opts.Camera,
		terrain:   opts.Terrain,
		autoOrbit: true,
	}
}

func (g *Game) Palette() *palette.Palette {
	return g.palette
}

func (g *Game) Initialize() error {
	g.registerCommands()

	for _, cmd := range g.opts.Commands {
		if _, err := g.palette.Register(cmd); err != nil {
			return fmt.Errorf("register command %q: %w", cmd.ID, err)
		}
	}

	g.boxes = scene.Terrain(g.terrain)

	slog.Info("Generated terrain",
		slog.Int("boxes", len(g.boxes)),
		slog.Uint64("seed", g.terrain.Seed),
	)

	return nil
}

func (g *Game) registerCommands() {
	commands := []palette.Command{
		{
			ID:       "camera.reset",
			Detail:   "Reset Camera",
			Path:     "View/Camera/Reset",
			Shortcut: glimpse.MustParseChord("r"),
			Handler:  palette.Funcs{Action: g.resetCamera},
		},
		{
			ID:       "camera.orbit",
			Detail:   "Auto Orbit",
			Path:     "View/Camera/Auto Orbit",
			Shortcut: glimpse.MustParseChord("o"),
			Handler:  palette.BoolToggle{Value: &g.autoOrbit},
		},
		{
			ID:       "camera.zoom_in",
			Detail:   "Zoom In",
			Path:     "View/Camera/Zoom In",
			Shortcut: glimpse.MustParseChord("="),
			Handler: palette.Funcs{
				Action: func() { g.camera.Zoom(1 / zoomFactor) },
				Update: func(cmd *palette.Command) { cmd.Disabled = g.camera.Distance <= minDistance },
			},
		},
		{
			ID:       "camera.zoom_out",
			Detail:   "Zoom Out",
			Path:     "View/Camera/Zoom Out",
			Shortcut: glimpse.MustParseChord("-"),
			Handler: palette.Funcs{
				Action: func() { g.camera.Zoom(zoomFactor) },
				Update: func(cmd *palette.Command) { cmd.Disabled = g.camera.Distance >= maxDistance },
			},
		},
		{
			ID:       "cull.freeze",
			Detail:   "Freeze Culling",
			Path:     "View/Culling/Freeze",
			Shortcut: glimpse.MustParseChord("f"),
			Handler:  palette.BoolToggle{Value: &g.frozen},
		},
		{
			ID:      "cull.parallel",
			Detail:  "Parallel Culling",
			Path:    "View/Culling/Parallel",
			Handler: palette.BoolToggle{Value: &g.parallel},
		},
		{
			ID:       "terrain.reseed",
			Detail:   "Regenerate Terrain",
			Path:     "Scene/Regenerate",
			Shortcut: glimpse.MustParseChord("ctrl+r"),
			Handler:  palette.Funcs{Action: g.reseed},
		},
		{
			ID:       "debug.stats",
			Detail:   "Show Frame Stats",
			Path:     "View/Frame Stats",
			Shortcut: glimpse.MustParseChord("f3"),
			Handler:  palette.BoolToggle{Value: &g.showStats},
		},
		{
			ID:       "app.quit",
			Detail:   "Quit",
			Path:     "File/Quit",
			Shortcut: glimpse.MustParseChord("ctrl+q"),
			Handler:  palette.Funcs{Action: orion.Exit},
		},
	}

	for _, cmd := range commands {
		_, err := g.palette.Register(cmd)
		orion.Handle(err, "register command %q", cmd.ID)
	}
}

func (g *Game) resetCamera() {
	g.camera = g.opts.Camera
}

func (g *Game) reseed() {
	g.terrain.Seed += 1
	g.boxes = scene.Terrain(g.terrain)

	// indices of the old terrain mean nothing now
	g.visible = g.visible[:0]

	slog.Info("Regenerated terrain", slog.Uint64("seed", g.terrain.Seed))
}

func (g *Game) Update() error {
	width, height := orion.CurrentWindow().GetSize()
	viewport := glm.Vec2f{float32(width), float32(height)}

	g.surface.Begin(orion.CurrentInput(), viewport)
	g.palette.Render(&g.surface)

	if !g.palette.Visible() {
		g.control()
	}

	return g.updateCulling(viewport)
}

func (g *Game) updateCulling(viewport glm.Vec2f) error {
	if g.autoOrbit {
		g.camera.Orbit(autoOrbitStep, 0)
	}

	if g.frozen && g.hasFrustum {
		return nil
	}

	aspect := float32(1)
	if viewport[1] > 0 {
		aspect = viewport[0] / viewport[1]
	}

	frustum, err := cull.NewFrustum(g.camera.ViewProjection(aspect))
	switch {
	case errors.Is(err, cull.ErrDegenerate):
		// keep culling against the last good frustum
		slog.Warn("Skip degenerate frustum", slog.Float64("aspect", float64(aspect)))

	case err != nil:
		return err

	default:
		g.frustum = frustum
		g.hasFrustum = true
	}

	if !g.hasFrustum {
		return nil
	}

	if g.parallel {
		visible, err := cull.VisibleParallel(context.Background(), &g.frustum, g.boxes, g.opts.Workers)
		if err != nil {
			return fmt.Errorf("cull terrain: %w", err)
		}

		g.visible = visible
	} else {
		g.visible = cull.Visible(&g.frustum, g.boxes, g.visible[:0])
	}

	return nil
}

func (g *Game) control() {
	var yaw, pitch glm.Rad

	if orion.IsKeyPressed(glimpse.KeyLeft) {
		yaw -= keyOrbitStep
	}

	if orion.IsKeyPressed(glimpse.KeyRight) {
		yaw += keyOrbitStep
	}

	if orion.IsKeyPressed(glimpse.KeyUp) {
		pitch += keyOrbitStep
	}

	if orion.IsKeyPressed(glimpse.KeyDown) {
		pitch -= keyOrbitStep
	}

	if orion.IsMouseButtonPressed(dragButton) {
		delta := orion.MouseDelta()
		yaw -= glm.Rad(delta[0] * dragSpeed)
		pitch += glm.Rad(delta[1] * dragSpeed)
	}

	if yaw != 0 || pitch != 0 {
		g.camera.Orbit(yaw, pitch)
	}
}

func (g *Game) Draw(screen *orion.Screen) {
	if title := g.surface.String(); title != "" {
		screen.Print(title)
		return
	}

	screen.Printf("visible %d / %d", len(g.visible), len(g.boxes))

	if g.frozen {
		screen.Print("frozen")
	}

	if g.showStats {
		screen.Print(orion.DebugOverlay.Summary())
	}

	screen.Printf("%s for commands", g.palette.Options().OpenChord)
}
