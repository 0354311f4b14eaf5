package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-raycast/pkg/geometry"
	"github.com/df07/go-raycast/pkg/math"
)

// Near bound for world queries; keeps rays from hitting their own origin
const hitEpsilon = 0.001

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetBackgroundColors() (topColor, bottomColor math.Color)
}

// Raytracer casts one ray per pixel and shades hits by their surface normal
type Raytracer struct {
	scene  Scene
	width  int
	height int
	logger Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards progress output.
func NewRaytracer(scene Scene, width, height int, logger Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		logger: logger,
	}
}

// backgroundGradient returns a gradient color based on ray direction
func (rt *Raytracer) backgroundGradient(r math.Ray) math.Color {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// RayColor returns the normal-mapped color of the nearest hit, or the
// background gradient when the ray escapes
func (rt *Raytracer) RayColor(r math.Ray) math.Color {
	var hit geometry.HitRecord
	if rt.scene.GetWorld().Hit(r, hitEpsilon, math.Infinity, &hit) {
		return hit.Normal.AddScalar(1).Multiply(0.5)
	}
	return rt.backgroundGradient(r)
}

// vec3ToColor converts a color in [0,1] to RGBA
func vec3ToColor(colorVec math.Color) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255.999 * colorVec.X),
		G: uint8(255.999 * colorVec.Y),
		B: uint8(255.999 * colorVec.Z),
		A: 255,
	}
}

// RenderPass renders the full image, top scanline first
func (rt *Raytracer) RenderPass() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	camera := rt.scene.GetCamera()

	for j := rt.height - 1; j >= 0; j-- {
		if j%64 == 0 {
			rt.logger.Printf("Scanlines remaining: %d\n", j+1)
		}
		for i := 0; i < rt.width; i++ {
			s := float64(i) / float64(max(rt.width-1, 1))
			t := float64(j) / float64(max(rt.height-1, 1))

			ray := camera.GetRay(s, t)
			img.SetRGBA(i, rt.height-1-j, vec3ToColor(rt.RayColor(ray)))
		}
	}

	rt.logger.Printf("Rendered %dx%d\n", rt.width, rt.height)
	return img
}
