package vec2

import (
	"fmt"
	"math"
)

// Add adds two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: round(v.X + o.X), Y: round(v.Y + o.Y)}
}

// Sub subtracts o from v.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: round(v.X - o.X), Y: round(v.Y - o.Y)}
}

// Mul multiplies the vector by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: round(v.X * s), Y: round(v.Y * s)}
}

// Div divides the vector by a scalar. A zero scalar produces infinities,
// which the sanitizer rejects with ErrInvalidNumber.
func (v Vec2) Div(s float64) (Vec2, error) {
	return New(v.X/s, v.Y/s)
}

// MagSq returns the squared magnitude. Cheaper than Mag for comparisons.
func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Mag returns the magnitude (Euclidean length) of the vector.
func (v Vec2) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Angle returns the direction of the vector in radians, in [0, 2*pi).
// The zero vector reports 0. Axis-aligned vectors are special-cased so the
// general arctangent branch never divides by zero.
func (v Vec2) Angle() float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	if v.X == 0 {
		if v.Y > 0 {
			return math.Pi / 2
		}
		return 3 * math.Pi / 2
	}
	if v.Y == 0 {
		if v.X > 0 {
			return 0
		}
		return math.Pi
	}

	a := math.Atan(v.Y / v.X)
	switch {
	case v.X < 0:
		// quadrants II and III
		a += math.Pi
	case v.Y < 0:
		// quadrant IV
		a += 2 * math.Pi
	}
	return a
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the signed z-component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// DistSq returns the squared distance between the points v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	return o.Sub(v).MagSq()
}

// Dist returns the distance between the points v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Sqrt(v.DistSq(o))
}

// AngleBetween returns the unsigned angle between v and o in radians.
// Precondition: both vectors are non-zero. A zero-magnitude input divides
// by zero and the result is NaN; callers must avoid it.
func (v Vec2) AngleBetween(o Vec2) float64 {
	return math.Acos(v.Dot(o) / (v.Mag() * o.Mag()))
}

// DistToSegmentSq returns the squared distance from the point v to the
// segment from a to b. The projection parameter is clamped to the segment;
// a degenerate segment (a == b) reduces to point-to-point distance.
func (v Vec2) DistToSegmentSq(a, b Vec2) float64 {
	segSq := a.DistSq(b)
	if segSq == 0 {
		return v.DistSq(a)
	}
	t := v.Sub(a).Dot(b.Sub(a)) / segSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(b.Sub(a).Mul(t))
	return v.DistSq(closest)
}

// DistToSegment returns the distance from the point v to the segment a-b.
func (v Vec2) DistToSegment(a, b Vec2) float64 {
	return math.Sqrt(v.DistToSegmentSq(a, b))
}

// Normalize returns a unit vector in the same direction. The zero vector
// normalizes to itself rather than failing.
func (v Vec2) Normalize() Vec2 {
	m := v.Mag()
	if m == 0 {
		return Vec2{}
	}
	return v.Mul(1 / m)
}

// Clamp limits the magnitude of v to limit, preserving direction.
// Precondition: limit is non-negative.
func (v Vec2) Clamp(limit float64) Vec2 {
	if v.MagSq() <= limit*limit {
		return v
	}
	theta := v.Angle()
	return Vec2{
		X: round(limit * math.Cos(theta)),
		Y: round(limit * math.Sin(theta)),
	}
}

// Rotate rotates v about pivot by the given angle in radians. Positive
// angles rotate counter-clockwise in standard mathematical orientation.
func (v Vec2) Rotate(pivot Vec2, radians float64) Vec2 {
	d := v.Sub(pivot)
	sin, cos := math.Sincos(radians)
	return Vec2{
		X: round(d.X*cos - d.Y*sin + pivot.X),
		Y: round(d.X*sin + d.Y*cos + pivot.Y),
	}
}

// Inverse returns the vector pointing the opposite way.
func (v Vec2) Inverse() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Offset translates v by a polar displacement.
func (v Vec2) Offset(mag, angleRadians float64) Vec2 {
	sin, cos := math.Sincos(angleRadians)
	return v.Add(Vec2{X: round(mag * cos), Y: round(mag * sin)})
}

// Midpoint returns the point halfway between v and o.
func (v Vec2) Midpoint(o Vec2) Vec2 {
	return v.Add(o).Mul(0.5)
}

// Proj returns the projection of v onto o. Precondition: o is non-zero;
// projecting onto the zero vector divides by zero and yields NaN components,
// which trip ErrInvalidNumber at the next construction.
func (v Vec2) Proj(o Vec2) Vec2 {
	return o.Mul(v.Dot(o) / o.MagSq())
}

// Perpendiculars returns the two unit vectors perpendicular to v: the left
// normal (v rotated +90 degrees) and the right normal (-90 degrees).
func (v Vec2) Perpendiculars() (left, right Vec2) {
	left = Vec2{X: -v.Y, Y: v.X}.Normalize()
	right = Vec2{X: v.Y, Y: -v.X}.Normalize()
	return left, right
}

// Avg returns the component-wise mean of vs. An empty slice fails with
// ErrEmptyInput.
func Avg(vs []Vec2) (Vec2, error) {
	if len(vs) == 0 {
		return Vec2{}, fmt.Errorf("%w: cannot average zero vectors", ErrEmptyInput)
	}
	var sum Vec2
	for _, v := range vs {
		sum = sum.Add(v)
	}
	return sum.Mul(1 / float64(len(vs))), nil
}

// Zero returns the zero vector.
func Zero() Vec2 { return Vec2{} }

// Up returns the unit vector pointing along +Y.
func Up() Vec2 { return Vec2{X: 0, Y: 1} }

// Down returns the unit vector pointing along -Y.
func Down() Vec2 { return Vec2{X: 0, Y: -1} }

// Left returns the unit vector pointing along -X.
func Left() Vec2 { return Vec2{X: -1, Y: 0} }

// Right returns the unit vector pointing along +X.
func Right() Vec2 { return Vec2{X: 1, Y: 0} }
