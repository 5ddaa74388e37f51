package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Framebuffer holds linear radiance for every pixel, row-major with the top
// row first
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the color of pixel (i, j)
func (fb *Framebuffer) Set(i, j int, c core.Vec3) {
	fb.Pixels[j*fb.Width+i] = c
}

// At returns the color of pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[j*fb.Width+i]
}

// Image tone maps every pixel into an opaque RGBA image
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			img.SetRGBA(i, j, vec3ToColor(fb.At(i, j)))
		}
	}
	return img
}

// ToneMap rescales a color whose brightest channel exceeds 1 so that channel
// becomes 1, then clamps every channel to [0, 1]
func ToneMap(c core.Vec3) core.Vec3 {
	if m := c.MaxComponent(); m > 1 {
		c = c.Multiply(1 / m)
	}
	return c.Clamp(0, 1)
}

// Quantize converts a channel in [0, 1] to a byte, truncating
func Quantize(v float64) uint8 {
	return uint8(255 * v)
}

// vec3ToColor converts a linear color to RGBA after tone mapping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = ToneMap(colorVec)

	return color.RGBA{
		R: Quantize(colorVec.X),
		G: Quantize(colorVec.Y),
		B: Quantize(colorVec.Z),
		A: 255,
	}
}
