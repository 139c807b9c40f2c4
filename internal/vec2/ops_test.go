package vec2_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vector-playground/internal/vec2"
)

func TestArithmetic(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, mk(t, 5, 8), mk(t, 1, 5).Add(mk(t, 4, 3)))
	})

	t.Run("Sub", func(t *testing.T) {
		assert.Equal(t, mk(t, -3, 2), mk(t, 1, 5).Sub(mk(t, 4, 3)))
	})

	t.Run("Mul", func(t *testing.T) {
		assert.Equal(t, mk(t, 6, 15), mk(t, 2, 5).Mul(3))
	})

	t.Run("Div", func(t *testing.T) {
		v, err := mk(t, 6, 15).Div(3)
		require.NoError(t, err)
		assert.Equal(t, mk(t, 2, 5), v)
	})

	t.Run("DivByZero", func(t *testing.T) {
		_, err := mk(t, 6, 15).Div(0)
		assert.ErrorIs(t, err, vec2.ErrInvalidNumber)
	})

	t.Run("Inverse", func(t *testing.T) {
		assert.Equal(t, mk(t, -3, 4), mk(t, 3, -4).Inverse())
	})
}

func TestMagnitude(t *testing.T) {
	v := mk(t, 3, 4)
	assert.Equal(t, 25.0, v.MagSq())
	assert.Equal(t, 5.0, v.Mag())
	assert.Equal(t, 0.0, vec2.Zero().Mag())
}

func TestAngle(t *testing.T) {
	cases := []struct {
		name string
		v    vec2.Vec2
		want float64
	}{
		{"ZeroVector", mk(t, 0, 0), 0},
		{"PosX", mk(t, 1, 0), 0},
		{"PosY", mk(t, 0, 4), math.Pi / 2},
		{"NegX", mk(t, -1, 0), math.Pi},
		{"NegY", mk(t, 0, -2), 3 * math.Pi / 2},
		{"QuadrantI", mk(t, 2, 2), math.Pi / 4},
		{"QuadrantII", mk(t, -2, 2), 3 * math.Pi / 4},
		{"QuadrantIII", mk(t, -2, -2), 5 * math.Pi / 4},
		{"QuadrantIV", mk(t, 2, -2), 7 * math.Pi / 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.v.Angle(), 1e-9)
		})
	}
}

func TestProducts(t *testing.T) {
	a := mk(t, 5, 6)
	b := mk(t, 3, 4)
	assert.Equal(t, 39.0, a.Dot(b))
	assert.Equal(t, -2.0, a.Cross(b))
	assert.Equal(t, 2.0, b.Cross(a))
}

func TestDistance(t *testing.T) {
	a := mk(t, 2, 4)
	b := mk(t, 4, 6)
	assert.Equal(t, 8.0, a.DistSq(b))
	assert.InDelta(t, 2*math.Sqrt2, a.Dist(b), 1e-9)
	assert.Equal(t, a.Dist(b), b.Dist(a))
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, math.Pi/2, mk(t, 1, 0).AngleBetween(mk(t, 0, 3)), 1e-9)
	assert.InDelta(t, math.Pi, mk(t, 2, 0).AngleBetween(mk(t, -5, 0)), 1e-9)
	assert.InDelta(t, 0, mk(t, 1, 1).AngleBetween(mk(t, 4, 4)), 1e-6)
}

func TestDistToSegment(t *testing.T) {
	t.Run("PerpendicularFoot", func(t *testing.T) {
		// Point above the middle of a horizontal segment.
		d := mk(t, 5, 3).DistToSegment(mk(t, 0, 0), mk(t, 10, 0))
		assert.InDelta(t, 3, d, 1e-9)
	})

	t.Run("ClampsToEndpoint", func(t *testing.T) {
		// Projection parameter would be negative; distance is to the start.
		d := mk(t, -3, 4).DistToSegment(mk(t, 0, 0), mk(t, 10, 0))
		assert.InDelta(t, 5, d, 1e-9)
	})

	t.Run("DegenerateSegment", func(t *testing.T) {
		p := mk(t, 3, 4)
		v := mk(t, 0, 0)
		assert.Equal(t, p.Dist(v), p.DistToSegment(v, v))
	})

	t.Run("SquaredVariant", func(t *testing.T) {
		d := mk(t, 5, 3).DistToSegmentSq(mk(t, 0, 0), mk(t, 10, 0))
		assert.InDelta(t, 9, d, 1e-9)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("Standard", func(t *testing.T) {
		n := mk(t, 3, 4).Normalize()
		assert.True(t, n.Equals(mk(t, 0.6, 0.8)), "got %v", n)
	})

	t.Run("ZeroVector", func(t *testing.T) {
		assert.Equal(t, vec2.Zero(), vec2.Zero().Normalize())
	})

	t.Run("UnitMagnitudeProperty", func(t *testing.T) {
		for _, v := range []vec2.Vec2{
			mk(t, 1, 0), mk(t, -7, 0.5), mk(t, 123.456, -654.321), mk(t, 0.001, 0.001),
		} {
			assert.InDelta(t, 1, v.Normalize().Mag(), 1e-7, "input %v", v)
		}
	})
}

func TestClamp(t *testing.T) {
	t.Run("UnderLimitUnchanged", func(t *testing.T) {
		v := mk(t, 3, 3)
		assert.Equal(t, v, v.Clamp(5))
	})

	t.Run("OverLimitScaled", func(t *testing.T) {
		c := mk(t, 3, 3).Clamp(math.Sqrt2)
		assert.True(t, c.Equals(mk(t, 1, 1)), "got %v", c)
	})

	t.Run("PreservesDirection", func(t *testing.T) {
		v := mk(t, -6, 8)
		c := v.Clamp(5)
		assert.InDelta(t, v.Angle(), c.Angle(), 1e-7)
		assert.InDelta(t, 5, c.Mag(), 1e-7)
	})
}

func TestRotate(t *testing.T) {
	t.Run("QuarterTurnAboutOrigin", func(t *testing.T) {
		// Counter-clockwise for positive angles.
		r := mk(t, 3, 4).Rotate(vec2.Zero(), math.Pi/2)
		assert.True(t, r.Equals(mk(t, -4, 3)), "got %v", r)
	})

	t.Run("AboutPivot", func(t *testing.T) {
		r := mk(t, 2, 1).Rotate(mk(t, 1, 1), math.Pi)
		assert.True(t, r.Equals(mk(t, 0, 1)), "got %v", r)
	})

	t.Run("FullTurnIdentity", func(t *testing.T) {
		v := mk(t, 12.5, -7.25)
		assert.True(t, v.Rotate(mk(t, 3, 9), 2*math.Pi).Equals(v))
	})
}

func TestOffset(t *testing.T) {
	o := mk(t, 1, 1).Offset(2, math.Pi/2)
	assert.True(t, o.Equals(mk(t, 1, 3)), "got %v", o)
}

func TestMidpoint(t *testing.T) {
	assert.Equal(t, mk(t, 3, 6), mk(t, 2, 4).Midpoint(mk(t, 4, 8)))
}

func TestProj(t *testing.T) {
	// Projecting onto the X axis drops the Y component.
	p := mk(t, 3, 4).Proj(mk(t, 10, 0))
	assert.True(t, p.Equals(mk(t, 3, 0)), "got %v", p)

	// Projection onto an arbitrary direction. proj((2,2) onto (3,0)) = (2,0).
	p = mk(t, 2, 2).Proj(mk(t, 3, 0))
	assert.True(t, p.Equals(mk(t, 2, 0)), "got %v", p)
}

func TestPerpendiculars(t *testing.T) {
	left, right := mk(t, 0, 5).Perpendiculars()
	assert.True(t, left.Equals(vec2.Left()), "left: %v", left)
	assert.True(t, right.Equals(vec2.Right()), "right: %v", right)

	left, right = mk(t, 3, 4).Perpendiculars()
	assert.InDelta(t, 1, left.Mag(), 1e-7)
	assert.InDelta(t, 1, right.Mag(), 1e-7)
	assert.InDelta(t, 0, left.Dot(mk(t, 3, 4)), 1e-7)
	assert.True(t, left.Equals(right.Inverse()))
}

func TestAvg(t *testing.T) {
	t.Run("Mean", func(t *testing.T) {
		got, err := vec2.Avg([]vec2.Vec2{mk(t, 1, 2), mk(t, 3, 4), mk(t, 5, 6)})
		require.NoError(t, err)
		assert.True(t, got.Equals(mk(t, 3, 4)), "got %v", got)
	})

	t.Run("SingleElement", func(t *testing.T) {
		got, err := vec2.Avg([]vec2.Vec2{mk(t, 9, -9)})
		require.NoError(t, err)
		assert.Equal(t, mk(t, 9, -9), got)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := vec2.Avg(nil)
		assert.ErrorIs(t, err, vec2.ErrEmptyInput)
	})
}

func TestConstants(t *testing.T) {
	assert.Equal(t, mk(t, 0, 0), vec2.Zero())
	assert.Equal(t, mk(t, 0, 1), vec2.Up())
	assert.Equal(t, mk(t, 0, -1), vec2.Down())
	assert.Equal(t, mk(t, -1, 0), vec2.Left())
	assert.Equal(t, mk(t, 1, 0), vec2.Right())
}
