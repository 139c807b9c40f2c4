// Package path provides a piecewise-linear curve over vec2 points: arc-length
// parameterization, closest-point queries, and cubic-spline resampling.
package path

import (
	"errors"
	"fmt"
	"math"

	"github.com/cnkei/gospline"

	"vector-playground/internal/vec2"
)

// ErrTooFewPoints reports a polyline with fewer than 2 points.
var ErrTooFewPoints = errors.New("path: polyline needs at least 2 points")

// Polyline is an ordered sequence of points treated as a piecewise-linear
// curve, optionally closed into a loop. Arc lengths are precomputed at
// construction; the value is immutable afterwards.
type Polyline struct {
	pts    []vec2.Vec2
	segLen []float64 // length of each segment
	cum    []float64 // arc length at the start of each segment
	total  float64
	closed bool
}

// New builds a polyline over a copy of points. A closed polyline gains an
// implicit segment from the last point back to the first.
func New(points []vec2.Vec2, closed bool) (*Polyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewPoints, len(points))
	}

	pts := make([]vec2.Vec2, len(points))
	copy(pts, points)

	segs := len(pts) - 1
	if closed {
		segs++
	}

	p := &Polyline{
		pts:    pts,
		segLen: make([]float64, segs),
		cum:    make([]float64, segs),
		closed: closed,
	}
	for i := 0; i < segs; i++ {
		a, b := p.segment(i)
		p.cum[i] = p.total
		p.segLen[i] = a.Dist(b)
		p.total += p.segLen[i]
	}
	return p, nil
}

// segment returns the endpoints of segment i. For a closed polyline the last
// segment wraps back to the first point.
func (p *Polyline) segment(i int) (a, b vec2.Vec2) {
	return p.pts[i], p.pts[(i+1)%len(p.pts)]
}

// Points returns a copy of the polyline's points.
func (p *Polyline) Points() []vec2.Vec2 {
	out := make([]vec2.Vec2, len(p.pts))
	copy(out, p.pts)
	return out
}

// Closed reports whether the polyline loops back on itself.
func (p *Polyline) Closed() bool {
	return p.closed
}

// Length returns the total arc length, including the closing segment for a
// closed polyline.
func (p *Polyline) Length() float64 {
	return p.total
}

// At returns the point at arc length s from the start. On a closed polyline
// s wraps; on an open one it clamps to the endpoints.
func (p *Polyline) At(s float64) vec2.Vec2 {
	if p.closed {
		s = math.Mod(s, p.total)
		if s < 0 {
			s += p.total
		}
	} else {
		if s <= 0 {
			return p.pts[0]
		}
		if s >= p.total {
			return p.pts[len(p.pts)-1]
		}
	}

	for i := range p.segLen {
		if s <= p.cum[i]+p.segLen[i] || i == len(p.segLen)-1 {
			a, b := p.segment(i)
			if p.segLen[i] == 0 {
				return a
			}
			t := (s - p.cum[i]) / p.segLen[i]
			return a.Add(b.Sub(a).Mul(t))
		}
	}
	return p.pts[len(p.pts)-1]
}

// Closest returns the point on the polyline nearest to q, the index of the
// segment it lies on, and the distance to it. Linear scan over segments.
// TODO: switch to a spatial index if courses ever exceed a few thousand points.
func (p *Polyline) Closest(q vec2.Vec2) (point vec2.Vec2, segment int, dist float64) {
	bestSq := math.MaxFloat64
	for i := range p.segLen {
		a, b := p.segment(i)
		dSq := q.DistToSegmentSq(a, b)
		if dSq < bestSq {
			bestSq = dSq
			segment = i
			point = closestOnSegment(q, a, b)
		}
	}
	return point, segment, math.Sqrt(bestSq)
}

// closestOnSegment projects q onto the segment a-b and clamps to it.
func closestOnSegment(q, a, b vec2.Vec2) vec2.Vec2 {
	segSq := a.DistSq(b)
	if segSq == 0 {
		return a
	}
	t := q.Sub(a).Dot(b.Sub(a)) / segSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(b.Sub(a).Mul(t))
}

// Resample fits a cubic spline through the polyline's points, parameterized
// by arc length, and returns a new polyline of n evenly spaced points. The
// source's closure carries over; a closed source repeats its first point as
// the final spline knot so the fitted curve joins up.
func (p *Polyline) Resample(n int) (*Polyline, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w, requested %d samples", ErrTooFewPoints, n)
	}

	knots := len(p.pts)
	if p.closed {
		knots++
	}
	s := make([]float64, knots)
	xs := make([]float64, knots)
	ys := make([]float64, knots)
	for i := 0; i < knots; i++ {
		pt := p.pts[i%len(p.pts)]
		if i < len(p.cum) {
			s[i] = p.cum[i]
		} else {
			s[i] = p.total
		}
		xs[i] = pt.X
		ys[i] = pt.Y
	}

	sx := gospline.NewCubicSpline(s, xs)
	sy := gospline.NewCubicSpline(s, ys)

	out := make([]vec2.Vec2, 0, n)
	for i := 0; i < n; i++ {
		// Closed curves skip the duplicate endpoint sample; open curves
		// include both endpoints.
		var si float64
		if p.closed {
			si = p.total * float64(i) / float64(n)
		} else {
			si = p.total * float64(i) / float64(n-1)
		}
		v, err := vec2.New(sx.At(si), sy.At(si))
		if err != nil {
			return nil, fmt.Errorf("resample at s=%v: %w", si, err)
		}
		out = append(out, v)
	}
	return New(out, p.closed)
}
