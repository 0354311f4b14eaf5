package math

import (
	"fmt"
	"math"
)

// Infinity is the default far bound for ray queries
var Infinity = math.Inf(1)

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a position in space
type Point3 = Vec3

// Color is an RGB triple with components nominally in [0,1]
type Color = Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// AddScalar adds s to every component
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// SubtractScalar subtracts s from every component
func (v Vec3) SubtractScalar(s float64) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// At returns component i (0=X, 1=Y, 2=Z). Any other index panics.
func (v Vec3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("Vec3 index %d out of range [0,2]", i))
}

// Set assigns component i (0=X, 1=Y, 2=Z). Any other index panics.
func (v *Vec3) Set(i int, value float64) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("Vec3 index %d out of range [0,2]", i))
	}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// UnitVector returns v scaled to length 1.
// The caller must ensure v has non-zero length; a zero vector panics.
func (v Vec3) UnitVector() Vec3 {
	length := v.Length()
	if length == 0 {
		panic("Vec3.UnitVector called on zero-length vector")
	}
	return v.Divide(length)
}

// Normalize returns a unit vector in the same direction, or the zero vector
// when v has zero length
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return v.Divide(length)
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// String formats the components separated by spaces
func (v Vec3) String() string {
	return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z)
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
