package renderer

import (
	"github.com/df07/go-raycast/pkg/math"
)

// CameraConfig describes a fixed, axis-aligned pinhole camera
type CameraConfig struct {
	Origin         math.Point3 // Eye position
	AspectRatio    float64     // Viewport width / height
	ViewportHeight float64     // Viewport height in world units
	FocalLength    float64     // Distance from origin to the viewport along -Z
}

// DefaultCameraConfig returns a 16:9 camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:         math.NewVec3(0, 0, 0),
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin          math.Point3
	lowerLeftCorner math.Point3
	horizontal      math.Vec3
	vertical        math.Vec3
	aspectRatio     float64
}

// NewCamera creates a simple camera
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.AspectRatio * config.ViewportHeight

	origin := config.Origin
	horizontal := math.NewVec3(viewportWidth, 0, 0)
	vertical := math.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(math.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		aspectRatio:     config.AspectRatio,
	}
}

// AspectRatio returns the viewport width / height
func (c *Camera) AspectRatio() float64 {
	return c.aspectRatio
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// (0,0) is the lower-left corner of the viewport.
func (c *Camera) GetRay(s, t float64) math.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return math.NewRay(c.origin, direction)
}
