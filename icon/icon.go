package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"

	"fyne.io/fyne/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var _ fyne.Resource = (*Icon)(nil)

// Icon is a rendered placeholder square. It satisfies fyne.Resource so the
// PNG bytes can be handed to anything that consumes bundled resources.
type Icon struct {
	name string
	data *image.RGBA
}

// Name is the output file name, e.g. "home-active.png".
func (i *Icon) Name() string {
	return i.name
}

// Content returns the PNG encoding, or nil if encoding fails.
func (i *Icon) Content() []byte {
	buf := new(bytes.Buffer)
	if err := i.Encode(buf); err != nil {
		return nil
	}
	return buf.Bytes()
}

// Image returns the underlying raster.
func (i *Icon) Image() *image.RGBA {
	return i.data
}

// Encode writes the icon as PNG. Opaque rasters are stored without an alpha
// channel.
func (i *Icon) Encode(w io.Writer) error {
	return png.Encode(w, i.data)
}

// Render paints a size x size square filled with bg and, if label is not
// empty, draws the label in white with its ink box centered on the square.
func Render(name string, size int, bg color.Color, label string, face font.Face) *Icon {
	i := &Icon{name: name}
	i.data = image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(i.data, i.data.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	if label == "" || face == nil {
		return i
	}

	b, _ := font.BoundString(face, label)
	w := (b.Max.X - b.Min.X).Ceil()
	h := (b.Max.Y - b.Min.Y).Ceil()
	x := floorDiv(size-w, 2)
	y := floorDiv(size-h, 2)

	d := &font.Drawer{
		Dst:  i.data,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x) - b.Min.X, Y: fixed.I(y) - b.Min.Y},
	}
	d.DrawString(label)

	return i
}

// floorDiv rounds toward negative infinity, so labels wider than the square
// still overhang both edges evenly.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
