package geometry

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/df07/go-raycast/pkg/math"
)

// ErrNegativeRadius is returned when a sphere is built with a negative or NaN radius
var ErrNegativeRadius = errors.New("sphere radius must be a non-negative number")

// Sphere represents a sphere shape
type Sphere struct {
	Center math.Point3
	Radius float64
}

// NewSphere creates a new sphere. A zero radius is allowed and never hit.
func NewSphere(center math.Point3, radius float64) (*Sphere, error) {
	if radius < 0 || gomath.IsNaN(radius) {
		return nil, fmt.Errorf("sphere at %v with radius %g: %w", center, radius, ErrNegativeRadius)
	}
	return &Sphere{
		Center: center,
		Radius: radius,
	}, nil
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray math.Ray, tMin, tMax float64, rec *HitRecord) bool {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// Exact tangency counts as a miss
	if discriminant <= 0 {
		return false
	}

	sqrtD := gomath.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !inOpenRange(root, tMin, tMax) {
		root = (-halfB + sqrtD) / a
		if !inOpenRange(root, tMin, tMax) {
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)
	outwardNormal := rec.Point.Subtract(s.Center).Divide(s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)

	return true
}

func inOpenRange(t, tMin, tMax float64) bool {
	return t > tMin && t < tMax
}
