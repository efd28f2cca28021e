package tspl

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentHeader(t *testing.T) {
	d := NewDocument(101, 152, 3)
	lines := strings.Split(strings.TrimSuffix(d.String(), "\r\n"), "\r\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "SIZE 101 mm,152 mm", lines[0])
	assert.Equal(t, "GAP 3 mm,0 mm", lines[1])
}

func TestDocumentFractionalSize(t *testing.T) {
	d := NewDocument(100.5, 148.25, 2)
	assert.True(t, strings.HasPrefix(d.String(), "SIZE 100.5 mm,148.25 mm\r\n"))
}

func TestDocumentFullStream(t *testing.T) {
	s := DefaultFontSettings()
	spec := Resolve(RoleHeader, s)

	d := NewDocument(80, 50, 2).
		Density(8).
		Direction(0).
		Cls().
		Text(20, 20, spec, "TO:").
		Bar(20, 200, 600, 4).
		Print(2)

	want := strings.Join([]string{
		"SIZE 80 mm,50 mm",
		"GAP 2 mm,0 mm",
		"DENSITY 8",
		"DIRECTION 0",
		"CLS",
		`TEXT 20,20,"2",0,4,3,"TO:"`,
		"BAR 20,200,600,4",
		"PRINT 1,2",
		"",
	}, "\r\n")
	assert.Equal(t, want, d.String())
}

func TestDocumentTextSanitization(t *testing.T) {
	d := NewDocument(80, 50, 2)
	d.Text(0, 0, FontSpec{Font: "2", XMul: 1, YMul: 1}, "say \"hi\"\r\nthere")

	assert.Contains(t, d.String(), `"say 'hi'  there"`)
}

func TestDocumentClampsNegativePositions(t *testing.T) {
	d := NewDocument(80, 50, 2)
	d.Text(-5, -9, FontSpec{Font: "2", XMul: 1, YMul: 1}, "x")

	assert.Contains(t, d.String(), "TEXT 0,0,")
}

func TestDocumentPrintCopiesFloor(t *testing.T) {
	d := NewDocument(80, 50, 2).Print(0)
	assert.Contains(t, d.String(), "PRINT 1,1\r\n")
}

func TestDocumentDensityBounds(t *testing.T) {
	d := NewDocument(80, 50, 2).Density(99)
	assert.Contains(t, d.String(), "DENSITY 15\r\n")

	d = NewDocument(80, 50, 2).Density(-1)
	assert.Contains(t, d.String(), "DENSITY 0\r\n")
}

func fillRGBA(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRasterizeStrideAndPolarity(t *testing.T) {
	// A solid black source must come out as all-zero bits (TSPL prints
	// where bits are clear); the stride pads to whole bytes.
	data, widthBytes := Rasterize(fillRGBA(10, 2, color.Black), 10, 2)

	assert.Equal(t, 2, widthBytes)
	require.Len(t, data, 4)
	for _, b := range data {
		assert.Zero(t, b&0xC0) // the two leftmost dots of each byte are ink
	}

	data, widthBytes = Rasterize(fillRGBA(8, 1, color.White), 8, 1)
	assert.Equal(t, 1, widthBytes)
	require.Len(t, data, 1)
	assert.Equal(t, byte(0xFF), data[0])
}

func TestRasterizeMinimumSize(t *testing.T) {
	data, widthBytes := Rasterize(fillRGBA(4, 4, color.White), 0, 0)
	assert.Equal(t, 1, widthBytes)
	assert.Len(t, data, 1)
}

func TestDocumentBitmapCommand(t *testing.T) {
	d := NewDocument(80, 50, 2)
	d.Bitmap(10, 12, 2, 2, []byte{0xFF, 0xFF, 0x00, 0x00})

	assert.Contains(t, d.String(), "BITMAP 10,12,2,2,0,")
}
