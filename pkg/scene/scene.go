package scene

import (
	"errors"
	"fmt"
	gomath "math"
	"sort"

	"github.com/df07/go-raycast/pkg/geometry"
	"github.com/df07/go-raycast/pkg/math"
	"github.com/df07/go-raycast/pkg/renderer"
)

// ErrUnknownScene is returned by New for names with no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Camera      *renderer.Camera
	World       *geometry.ShapeList
	TopColor    math.Color
	BottomColor math.Color
	Width       int // Image width
	Height      int // Image height
}

func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }
func (s *Scene) GetWorld() geometry.Shape    { return s.World }
func (s *Scene) GetBackgroundColors() (math.Color, math.Color) {
	return s.TopColor, s.BottomColor
}

type builder func(world *geometry.ShapeList) error

var builders = map[string]builder{
	"default": buildDefault,
	"spheres": buildSphereRow,
	"inside":  buildInside,
}

// Names lists the built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene for an image of the given width.
// The height follows from the camera's aspect ratio.
func New(name string, width int) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if width <= 0 {
		return nil, fmt.Errorf("scene %s: width must be positive, got %d", name, width)
	}

	world := geometry.NewShapeList()
	if err := build(world); err != nil {
		return nil, fmt.Errorf("building scene %s: %w", name, err)
	}

	config := renderer.DefaultCameraConfig()
	height := max(int(gomath.Round(float64(width)/config.AspectRatio)), 1)

	return &Scene{
		Name:        name,
		Camera:      renderer.NewCamera(config),
		World:       world,
		TopColor:    math.NewVec3(0.5, 0.7, 1.0), // Blue
		BottomColor: math.NewVec3(1.0, 1.0, 1.0), // White
		Width:       width,
		Height:      height,
	}, nil
}

type sphereSpec struct {
	center math.Point3
	radius float64
}

func addSpheres(world *geometry.ShapeList, specs []sphereSpec) error {
	for _, spec := range specs {
		sphere, err := geometry.NewSphere(spec.center, spec.radius)
		if err != nil {
			return err
		}
		world.Add(sphere)
	}
	return nil
}

// buildDefault places a sphere in front of the camera on a large ground sphere
func buildDefault(world *geometry.ShapeList) error {
	return addSpheres(world, []sphereSpec{
		{math.NewVec3(0, 0, -1), 0.5},
		{math.NewVec3(0, -100.5, -1), 100},
	})
}

// buildSphereRow receding spheres that overlap on screen
func buildSphereRow(world *geometry.ShapeList) error {
	specs := []sphereSpec{{math.NewVec3(0, -100.5, -1), 100}}
	for i := 0; i < 5; i++ {
		x := -1.2 + 0.6*float64(i)
		z := -1.0 - 0.75*float64(i)
		specs = append(specs, sphereSpec{math.NewVec3(x, 0, z), 0.4})
	}
	return addSpheres(world, specs)
}

// buildInside surrounds the camera with a sphere, so every hit is a back face
func buildInside(world *geometry.ShapeList) error {
	return addSpheres(world, []sphereSpec{
		{math.NewVec3(0, 0, 0), 10},
		{math.NewVec3(0, 0, -3), 1},
	})
}
