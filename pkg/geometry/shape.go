package geometry

import "github.com/df07/go-raycast/pkg/math"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     math.Point3 // Point of intersection
	Normal    math.Vec3   // Unit surface normal, always facing against the incoming ray
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must point out of the surface and have unit length.
func (h *HitRecord) SetFaceNormal(ray math.Ray, outwardNormal math.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape interface for objects that can be hit by rays.
//
// Hit reports whether the ray hits the shape at some t with tMin < t < tMax.
// On success rec is filled in; on failure rec is left untouched.
type Shape interface {
	Hit(ray math.Ray, tMin, tMax float64, rec *HitRecord) bool
}
