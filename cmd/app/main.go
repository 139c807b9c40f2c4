package main

import (
	"fmt"
	"log"
	"math"

	"vector-playground/internal/path"
	"vector-playground/internal/sim"
	"vector-playground/internal/vec2"

	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ============================================================================
// CONFIGURATION - Adjust these values to customize the playground
// ============================================================================

// Render window dimensions
const (
	WindowWidth  = 1200
	WindowHeight = 800
)

// World dimensions the course is laid out in
const (
	WorldWidth  = 1000.0
	WorldHeight = 700.0
)

// Playground settings
const (
	NumParticles     = 6     // Particles following the course
	CourseSamples    = 160   // Resampled points on the smoothed course
	CourseCtrlPoints = 14    // Control points of the raw course
	ClampLimit       = 120.0 // Radius of the clamp disc around the probe anchor
	ProbeScale       = 60.0  // Length of the drawn unit vectors
	RotateTrailSteps = 5     // Ghost copies shown per side of the rotate trail
	RotateTrailStep  = math.Pi / 12
	ViewScaleMargin  = 0.9 // Margin for fitting the course in the window
	SlowTickDivisor  = 4   // In slow mode, advance once every N frames
)

// Course colors
var (
	ColorCourse     = color.RGBA{80, 80, 80, 255}
	ColorCtrlPoint  = color.RGBA{255, 0, 0, 255}
	ColorCourseNorm = color.RGBA{50, 155, 50, 40} // Perpendiculars along the course
)

// Probe visualization colors
var (
	ColorProbe      = color.RGBA{255, 255, 0, 255}  // Anchor to cursor
	ColorProbeUnit  = color.RGBA{255, 165, 0, 255}  // Normalized probe
	ColorPerpLeft   = color.RGBA{0, 200, 255, 255}  // +90 normal
	ColorPerpRight  = color.RGBA{255, 0, 255, 255}  // -90 normal
	ColorProjection = color.RGBA{50, 255, 50, 200}  // Probe projected on the X axis
	ColorClampDisc  = color.RGBA{255, 255, 255, 60} // Clamp radius
	ColorClamped    = color.RGBA{255, 80, 80, 255}  // Probe clamped to the disc
	ColorTrail      = color.RGBA{120, 120, 255, 90} // Rotate trail ghosts
	ColorParticle   = color.RGBA{255, 0, 0, 255}
)

// ============================================================================

type Game struct {
	Course    *path.Polyline // Smoothed course the particles follow
	RawCourse *path.Polyline // Control polygon the course was fitted through
	Particles []*sim.Particle
	Anchor    vec2.Vec2 // World-space anchor of the probe vector
	Slow      bool
	frame     int

	// Rendering Scale
	ViewScale   float32
	ViewOffsetX float32
	ViewOffsetY float32
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Slow = !g.Slow
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.spawnParticles()
	}

	g.frame++
	if g.Slow && g.frame%SlowTickDivisor != 0 {
		return nil
	}

	for _, p := range g.Particles {
		p.Follow(g.Course)
	}
	return nil
}

// spawnParticles spreads the particles evenly along the course, at rest.
func (g *Game) spawnParticles() {
	g.Particles = g.Particles[:0]
	for i := 0; i < NumParticles; i++ {
		s := g.Course.Length() * float64(i) / NumParticles
		g.Particles = append(g.Particles, sim.NewParticle(g.Course.At(s)))
	}
}

// probe returns the probe vector: anchor to the cursor, in world space.
func (g *Game) probe() vec2.Vec2 {
	mx, my := ebiten.CursorPosition()
	wx := (float64(mx) - float64(g.ViewOffsetX)) / float64(g.ViewScale)
	wy := (float64(my) - float64(g.ViewOffsetY)) / float64(g.ViewScale)
	cursor, err := vec2.New(wx, wy)
	if err != nil {
		// Off-window cursors can report garbage; fall back to a resting probe.
		return vec2.Zero()
	}
	return cursor.Sub(g.Anchor)
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Helper to transform world coordinates to screen coordinates
	toScreen := func(v vec2.Vec2) (float32, float32) {
		return float32(v.X)*g.ViewScale + g.ViewOffsetX, float32(v.Y)*g.ViewScale + g.ViewOffsetY
	}
	line := func(a, b vec2.Vec2, width float32, col color.RGBA) {
		ax, ay := toScreen(a)
		bx, by := toScreen(b)
		vector.StrokeLine(screen, ax, ay, bx, by, width, col, true)
	}

	// Draw the course with short perpendicular ticks along it
	coursePts := g.Course.Points()
	for i, pt := range coursePts {
		next := coursePts[(i+1)%len(coursePts)]
		line(pt, next, 2, ColorCourse)

		left, right := next.Sub(pt).Perpendiculars()
		line(pt, pt.Add(left.Mul(8)), 1, ColorCourseNorm)
		line(pt, pt.Add(right.Mul(8)), 1, ColorCourseNorm)
	}

	// Control points of the raw course
	for _, pt := range g.RawCourse.Points() {
		x, y := toScreen(pt)
		vector.FillRect(screen, x-2, y-2, 4, 4, ColorCtrlPoint, true)
	}

	g.drawProbe(screen, toScreen, line)

	// Draw Particles as heading-oriented triangles
	for _, p := range g.Particles {
		local := []vec2.Vec2{{X: 9, Y: 0}, {X: -5, Y: 5}, {X: -5, Y: -5}}
		heading := p.Heading()

		var tri vector.Path
		for i, corner := range local {
			world := p.Pos.Add(corner.Rotate(vec2.Zero(), heading))
			sx, sy := toScreen(world)
			if i == 0 {
				tri.MoveTo(sx, sy)
			} else {
				tri.LineTo(sx, sy)
			}
		}
		tri.Close()

		var cs ebiten.ColorScale
		cs.ScaleWithColor(ColorParticle)
		vector.FillPath(screen, &tri, nil, &vector.DrawPathOptions{
			AntiAlias:  true,
			ColorScale: cs,
		})
	}

	g.drawHUD(screen)
}

// drawProbe renders the mouse-driven probe vector and the operations applied
// to it: normalization, perpendiculars, projection, clamping, rotation.
func (g *Game) drawProbe(
	screen *ebiten.Image,
	toScreen func(vec2.Vec2) (float32, float32),
	line func(a, b vec2.Vec2, width float32, col color.RGBA),
) {
	probe := g.probe()
	tip := g.Anchor.Add(probe)

	// Clamp disc and the clamped probe
	ax, ay := toScreen(g.Anchor)
	vector.StrokeCircle(screen, ax, ay, float32(ClampLimit)*g.ViewScale, 1, ColorClampDisc, true)
	line(g.Anchor, g.Anchor.Add(probe.Clamp(ClampLimit)), 4, ColorClamped)

	// Raw probe on top of the clamped one
	line(g.Anchor, tip, 2, ColorProbe)

	// Unit probe and its two normals
	unit := probe.Normalize()
	line(g.Anchor, g.Anchor.Add(unit.Mul(ProbeScale)), 3, ColorProbeUnit)
	left, right := probe.Perpendiculars()
	line(g.Anchor, g.Anchor.Add(left.Mul(ProbeScale)), 2, ColorPerpLeft)
	line(g.Anchor, g.Anchor.Add(right.Mul(ProbeScale)), 2, ColorPerpRight)

	// Projection of the probe onto the X axis through the anchor, plus the
	// dropped perpendicular from the tip
	if probe.MagSq() > 0 {
		proj := probe.Proj(vec2.Right())
		line(g.Anchor, g.Anchor.Add(proj), 2, ColorProjection)
		line(tip, g.Anchor.Add(proj), 1, ColorProjection)
	}

	// Rotate trail: ghost copies swept to either side
	for i := 1; i <= RotateTrailSteps; i++ {
		for _, sign := range []float64{1, -1} {
			ghost := tip.Rotate(g.Anchor, sign*float64(i)*RotateTrailStep)
			line(g.Anchor, ghost, 1, ColorTrail)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, 190, 150, color.RGBA{0, 0, 0, 180}, true)

	probe := g.probe()
	_, _, courseDist := g.Course.Closest(g.Anchor.Add(probe))

	msg := "VECTOR PLAYGROUND\n"
	msg += "-----------------\n"
	msg += fmt.Sprintf("Probe:  %s\n", probe)
	msg += fmt.Sprintf("Mag:    %.2f\n", probe.Mag())
	msg += fmt.Sprintf("Angle:  %.1f deg\n", probe.Angle()*180/math.Pi)
	msg += fmt.Sprintf("Course: %.1f away\n", courseDist)
	if g.Slow {
		msg += "[Slow motion]\n"
	}
	msg += "\nControls:\nS = Toggle Slow Mode\nR = Respawn Particles"

	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return WindowWidth, WindowHeight
}

// buildCourse lays out a wobbled ellipse of control points and fits a smooth
// closed course through them.
func buildCourse() (smooth, raw *path.Polyline, err error) {
	const (
		radiusX = 420.0
		radiusY = 280.0
		wobble  = 60.0
	)
	center, err := vec2.New(WorldWidth/2, WorldHeight/2)
	if err != nil {
		return nil, nil, err
	}

	ctrl := make([]vec2.Vec2, 0, CourseCtrlPoints)
	for i := 0; i < CourseCtrlPoints; i++ {
		theta := 2 * math.Pi * float64(i) / CourseCtrlPoints
		// Deterministic wobble keeps the course interesting without RNG state.
		r := wobble * math.Sin(3*theta)
		p, err := vec2.Polar(radiusX+r, theta)
		if err != nil {
			return nil, nil, err
		}
		// Squash onto the ellipse's minor axis.
		p, err = vec2.New(p.X, p.Y*radiusY/radiusX)
		if err != nil {
			return nil, nil, err
		}
		ctrl = append(ctrl, center.Add(p))
	}

	raw, err = path.New(ctrl, true)
	if err != nil {
		return nil, nil, err
	}
	smooth, err = raw.Resample(CourseSamples)
	if err != nil {
		return nil, nil, err
	}
	return smooth, raw, nil
}

func main() {
	course, raw, err := buildCourse()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle("Vector Playground")

	// 1. Calculate Scale to fit
	scaleW := WindowWidth / WorldWidth
	scaleH := WindowHeight / WorldHeight

	viewScale := float32(scaleW)
	if scaleH < scaleW {
		viewScale = float32(scaleH)
	}
	// Add some margin
	viewScale *= ViewScaleMargin

	// 2. Center the course
	viewOffsetX := (float32(WindowWidth) - float32(WorldWidth)*viewScale) / 2
	viewOffsetY := (float32(WindowHeight) - float32(WorldHeight)*viewScale) / 2

	anchor, err := vec2.New(WorldWidth/2, WorldHeight/2)
	if err != nil {
		log.Fatal(err)
	}

	game := &Game{
		Course:      course,
		RawCourse:   raw,
		Anchor:      anchor,
		ViewScale:   viewScale,
		ViewOffsetX: viewOffsetX,
		ViewOffsetY: viewOffsetY,
	}
	game.spawnParticles()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
