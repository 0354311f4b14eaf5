package geometry

import "github.com/df07/go-raycast/pkg/math"

// ShapeList is an ordered collection of shapes that is itself a Shape.
// It holds the shapes it is given and never modifies them.
type ShapeList struct {
	shapes []Shape
}

// NewShapeList creates a list holding the given shapes in order
func NewShapeList(shapes ...Shape) *ShapeList {
	l := &ShapeList{}
	for _, s := range shapes {
		l.Add(s)
	}
	return l
}

// Add appends a shape. Nil shapes are ignored.
func (l *ShapeList) Add(shape Shape) {
	if shape == nil {
		return
	}
	l.shapes = append(l.shapes, shape)
}

// Clear removes every shape from the list
func (l *ShapeList) Clear() {
	l.shapes = nil
}

// Len returns the number of shapes in the list
func (l *ShapeList) Len() int {
	return len(l.shapes)
}

// Shapes returns the shapes in visiting order
func (l *ShapeList) Shapes() []Shape {
	return l.shapes
}

// Hit finds the nearest hit among all shapes.
// Each shape is tested against the closest t found so far, so a later shape
// only wins if it is strictly closer; ties go to the earlier shape.
func (l *ShapeList) Hit(ray math.Ray, tMin, tMax float64, rec *HitRecord) bool {
	var scratch HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, shape := range l.shapes {
		if shape.Hit(ray, tMin, closestSoFar, &scratch) {
			hitAnything = true
			closestSoFar = scratch.T
			*rec = scratch
		}
	}

	return hitAnything
}
