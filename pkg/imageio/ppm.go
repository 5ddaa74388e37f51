package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

var ErrMalformedPPM = errors.New("imageio: malformed ppm")

func init() {
	image.RegisterFormat("ppm", "P6", DecodePPM, DecodePPMConfig)
}

// EncodePPM writes img as a binary PPM: the P6 header followed by one RGB
// byte triple per pixel, rows top to bottom. Alpha is dropped.
func EncodePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}

	row := make([]byte, 3*bounds.Dx())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			off := 3 * (x - bounds.Min.X)
			row[off], row[off+1], row[off+2] = c.R, c.G, c.B
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodePPMConfig reads the dimensions from a binary PPM header
func DecodePPMConfig(r io.Reader) (image.Config, error) {
	width, height, err := readHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: width, Height: height}, nil
}

// DecodePPM reads a binary PPM with a maximum value of 255
func DecodePPM(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	width, height, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := make([]byte, 3*width)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedPPM, y, err)
		}
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: row[3*x], G: row[3*x+1], B: row[3*x+2], A: 255})
		}
	}
	return img, nil
}

// readHeader parses "P6 <width> <height> 255" and the single whitespace byte
// that ends it. Comments are not supported.
func readHeader(br *bufio.Reader) (int, int, error) {
	var magic string
	var width, height, maxVal int
	if _, err := fmt.Fscan(br, &magic, &width, &height, &maxVal); err != nil {
		return 0, 0, fmt.Errorf("%w: header: %v", ErrMalformedPPM, err)
	}
	if magic != "P6" {
		return 0, 0, fmt.Errorf("%w: magic %q", ErrMalformedPPM, magic)
	}
	if width <= 0 || height <= 0 || maxVal != 255 {
		return 0, 0, fmt.Errorf("%w: %dx%d max %d", ErrMalformedPPM, width, height, maxVal)
	}
	if _, err := br.ReadByte(); err != nil {
		return 0, 0, fmt.Errorf("%w: header: %v", ErrMalformedPPM, err)
	}
	return width, height, nil
}
