package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func toMgl(v Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

var sampleVectors = []Vec3{
	NewVec3(1, 0, 0),
	NewVec3(0, -2, 0),
	NewVec3(1, 2, 3),
	NewVec3(-4.5, 0.25, 7),
	NewVec3(1e-3, -3e2, 12.5),
}

func TestVec3_Arithmetic(t *testing.T) {
	u := NewVec3(1, 2, 3)
	v := NewVec3(-2, 0.5, 4)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"negate", u.Negate(), NewVec3(-1, -2, -3)},
		{"add", u.Add(v), NewVec3(-1, 2.5, 7)},
		{"subtract", u.Subtract(v), NewVec3(3, 1.5, -1)},
		{"add scalar", u.AddScalar(1), NewVec3(2, 3, 4)},
		{"subtract scalar", u.SubtractScalar(1), NewVec3(0, 1, 2)},
		{"multiply", u.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", u.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"multiply vec", u.MultiplyVec(v), NewVec3(-2, 1, 12)},
		{"clamp", NewVec3(-1, 0.5, 2).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.result, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_VectorSpaceLaws(t *testing.T) {
	for _, u := range sampleVectors {
		for _, v := range sampleVectors {
			for _, w := range sampleVectors {
				if !vecNear(u.Add(v).Add(w), u.Add(v.Add(w)), 1e-9) {
					t.Errorf("Addition not associative for %v, %v, %v", u, v, w)
				}
			}
			if !vecNear(u.Add(v), v.Add(u), tolerance) {
				t.Errorf("Addition not commutative for %v, %v", u, v)
			}
			if !vecNear(u.Add(v).Multiply(3.5), u.Multiply(3.5).Add(v.Multiply(3.5)), 1e-9) {
				t.Errorf("Scaling does not distribute over addition for %v, %v", u, v)
			}
			if !vecNear(u.Subtract(v).Add(v), u, 1e-9) {
				t.Errorf("Subtract is not the inverse of Add for %v, %v", u, v)
			}
		}
		if !vecNear(u.Multiply(2).Add(u.Multiply(-0.5)), u.Multiply(1.5), 1e-9) {
			t.Errorf("Scalars do not distribute for %v", u)
		}
		if !vecNear(u.Add(u.Negate()), Vec3{}, tolerance) {
			t.Errorf("Negate is not the additive inverse for %v", u)
		}
	}
}

func TestVec3_DotMatchesLengthSquared(t *testing.T) {
	for _, v := range sampleVectors {
		if math.Abs(v.Dot(v)-v.LengthSquared()) > tolerance {
			t.Errorf("Dot(v,v)=%f but LengthSquared=%f for %v", v.Dot(v), v.LengthSquared(), v)
		}
		if math.Abs(v.Length()*v.Length()-v.LengthSquared()) > 1e-6 {
			t.Errorf("Length²=%f does not match LengthSquared=%f", v.Length()*v.Length(), v.LengthSquared())
		}
	}
}

func TestVec3_DotAndCrossAgainstMathgl(t *testing.T) {
	for _, u := range sampleVectors {
		for _, v := range sampleVectors {
			wantDot := toMgl(u).Dot(toMgl(v))
			if math.Abs(u.Dot(v)-wantDot) > tolerance {
				t.Errorf("Dot(%v, %v): expected %f, got %f", u, v, wantDot, u.Dot(v))
			}

			c := toMgl(u).Cross(toMgl(v))
			if !vecNear(u.Cross(v), NewVec3(c[0], c[1], c[2]), tolerance) {
				t.Errorf("Cross(%v, %v): expected %v, got %v", u, v, c, u.Cross(v))
			}
		}
	}
}

func TestVec3_CrossAntiCommutative(t *testing.T) {
	for _, u := range sampleVectors {
		for _, v := range sampleVectors {
			if !vecNear(u.Cross(v), v.Cross(u).Negate(), tolerance) {
				t.Errorf("Cross(%v, %v) != -Cross(%v, %v)", u, v, v, u)
			}
		}
	}

	x, y := NewVec3(1, 0, 0), NewVec3(0, 1, 0)
	if !vecNear(x.Cross(y), NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected x × y = z, got %v", x.Cross(y))
	}
}

func TestVec3_UnitVector(t *testing.T) {
	for _, v := range sampleVectors {
		u := v.UnitVector()
		if math.Abs(u.Length()-1) > 1e-9 {
			t.Errorf("Expected unit length for %v, got %f", v, u.Length())
		}
		if u.Dot(v) <= 0 {
			t.Errorf("UnitVector of %v points the wrong way: %v", v, u)
		}
		want := toMgl(v).Normalize()
		if !vecNear(u, NewVec3(want[0], want[1], want[2]), 1e-9) {
			t.Errorf("UnitVector(%v): expected %v, got %v", v, want, u)
		}
	}
}

func TestVec3_UnitVectorZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic normalizing a zero-length vector")
		}
	}()
	Vec3{}.UnitVector()
}

func TestVec3_NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

func TestVec3_Index(t *testing.T) {
	v := NewVec3(7, 8, 9)
	for i, want := range []float64{7, 8, 9} {
		if v.At(i) != want {
			t.Errorf("At(%d): expected %f, got %f", i, want, v.At(i))
		}
	}

	v.Set(1, -1)
	if v != NewVec3(7, -1, 9) {
		t.Errorf("Set(1) produced %v", v)
	}
}

func TestVec3_IndexOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"At negative", func() { NewVec3(1, 2, 3).At(-1) }},
		{"At 3", func() { NewVec3(1, 2, 3).At(3) }},
		{"Set 3", func() { v := NewVec3(1, 2, 3); v.Set(3, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic for out-of-range index")
				}
			}()
			tt.fn()
		})
	}
}

func TestVec3_String(t *testing.T) {
	if got := NewVec3(1, 0.5, -2).String(); got != "1 0.5 -2" {
		t.Errorf("Expected \"1 0.5 -2\", got %q", got)
	}
}

func TestDegreesToRadians(t *testing.T) {
	if math.Abs(DegreesToRadians(180)-math.Pi) > tolerance {
		t.Errorf("Expected π, got %f", DegreesToRadians(180))
	}
}
