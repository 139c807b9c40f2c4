package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"

	"vector-playground/internal/path"
	"vector-playground/internal/vec2"
)

const (
	Width  = 800
	Height = 600

	CtrlPoints = 12
	Samples    = 400
	OutputPath = "assets/course.png"
)

// buildCourse lays out a wobbled ellipse of control points and fits a smooth
// closed course through them, the same construction the playground uses.
func buildCourse() (*path.Polyline, *path.Polyline, error) {
	const (
		radiusX = 320.0
		radiusY = 220.0
		wobble  = 45.0
	)
	center, err := vec2.New(Width/2, Height/2)
	if err != nil {
		return nil, nil, err
	}

	ctrl := make([]vec2.Vec2, 0, CtrlPoints)
	for i := 0; i < CtrlPoints; i++ {
		theta := 2 * math.Pi * float64(i) / CtrlPoints
		r := wobble * math.Sin(3*theta)
		p, err := vec2.Polar(radiusX+r, theta)
		if err != nil {
			return nil, nil, err
		}
		p, err = vec2.New(p.X, p.Y*radiusY/radiusX)
		if err != nil {
			return nil, nil, err
		}
		ctrl = append(ctrl, center.Add(p))
	}

	raw, err := path.New(ctrl, true)
	if err != nil {
		return nil, nil, err
	}
	smooth, err := raw.Resample(Samples)
	if err != nil {
		return nil, nil, err
	}
	return smooth, raw, nil
}

// drawSegment stamps pixels along a-b, sampling at sub-pixel arc-length steps.
func drawSegment(img *image.RGBA, a, b vec2.Vec2, thickness float64, col color.RGBA) {
	length := a.Dist(b)
	if length == 0 {
		return
	}
	dir := b.Sub(a).Normalize()
	for s := 0.0; s <= length; s += 0.5 {
		stampDot(img, a.Add(dir.Mul(s)), thickness, col)
	}
}

// stampDot fills the pixels within radius of p.
func stampDot(img *image.RGBA, p vec2.Vec2, radius float64, col color.RGBA) {
	r := int(math.Ceil(radius))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) > radius*radius {
				continue
			}
			img.SetRGBA(int(p.X)+dx, int(p.Y)+dy, col)
		}
	}
}

func main() {
	smooth, raw, err := buildCourse()
	if err != nil {
		log.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))

	// Fill with White (background)
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			img.SetRGBA(x, y, white)
		}
	}

	// Draw the smoothed course (Black)
	black := color.RGBA{0, 0, 0, 255}
	pts := smooth.Points()
	for i := range pts {
		drawSegment(img, pts[i], pts[(i+1)%len(pts)], 2, black)
	}

	// Draw the control polygon (Gray) and its points (Red)
	gray := color.RGBA{180, 180, 180, 255}
	red := color.RGBA{255, 0, 0, 255}
	ctrl := raw.Points()
	for i := range ctrl {
		drawSegment(img, ctrl[i], ctrl[(i+1)%len(ctrl)], 1, gray)
	}
	for _, p := range ctrl {
		stampDot(img, p, 4, red)
	}

	if err := os.MkdirAll("assets", 0o755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(OutputPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%d course samples, %d control points)", OutputPath, Samples, CtrlPoints)
}
