package tspl

import (
	"fmt"
	"strings"
)

// Document assembles a TSPL command stream. Commands are accumulated in
// call order and terminated with CRLF, matching what TSC firmware expects
// on the raw 9100 socket.
type Document struct {
	b strings.Builder
}

// NewDocument starts a command stream for a label of the given physical
// size and inter-label gap, both in millimeters.
func NewDocument(widthMM, heightMM, gapMM float64) *Document {
	d := &Document{}
	d.writef("SIZE %s mm,%s mm", trimFloat(widthMM), trimFloat(heightMM))
	d.writef("GAP %s mm,0 mm", trimFloat(gapMM))
	return d
}

// Density sets print darkness (0-15).
func (d *Document) Density(level int) *Document {
	if level < 0 {
		level = 0
	}
	if level > 15 {
		level = 15
	}
	d.writef("DENSITY %d", level)
	return d
}

// Direction sets the feed orientation (0 or 1).
func (d *Document) Direction(dir int) *Document {
	if dir != 1 {
		dir = 0
	}
	d.writef("DIRECTION %d", dir)
	return d
}

// Cls clears the image buffer. Must precede drawing commands.
func (d *Document) Cls() *Document {
	d.writef("CLS")
	return d
}

// Text draws a text element with the resolved font spec.
func (d *Document) Text(x, y int, spec FontSpec, content string) *Document {
	d.writef("TEXT %d,%d,%s,%q", clampDot(x), clampDot(y), spec.CommandFragment(), sanitizeText(content))
	return d
}

// Bar draws a filled rectangle, used for separator elements.
func (d *Document) Bar(x, y, width, height int) *Document {
	d.writef("BAR %d,%d,%d,%d", clampDot(x), clampDot(y), width, height)
	return d
}

// Bitmap draws a 1-bit image. widthBytes is the row stride in bytes
// (width dots padded to a multiple of 8); mode 0 overwrites.
func (d *Document) Bitmap(x, y, widthBytes, heightDots int, data []byte) *Document {
	d.writef("BITMAP %d,%d,%d,%d,0,%s", clampDot(x), clampDot(y), widthBytes, heightDots, string(data))
	return d
}

// Print closes the stream with a PRINT command for the given copy count.
func (d *Document) Print(copies int) *Document {
	if copies < 1 {
		copies = 1
	}
	d.writef("PRINT 1,%d", copies)
	return d
}

// String returns the accumulated command stream.
func (d *Document) String() string {
	return d.b.String()
}

// Bytes returns the accumulated command stream as a byte slice.
func (d *Document) Bytes() []byte {
	return []byte(d.b.String())
}

func (d *Document) writef(format string, args ...any) {
	fmt.Fprintf(&d.b, format, args...)
	d.b.WriteString("\r\n")
}

// sanitizeText strips characters that would break the quoted TSPL content
// argument. Double quotes become apostrophes; CR/LF become spaces.
func sanitizeText(s string) string {
	r := strings.NewReplacer(`"`, "'", "\r", " ", "\n", " ")
	return r.Replace(s)
}

func clampDot(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// trimFloat formats a millimeter value without trailing zeros, matching
// the terse numbers TSPL templates are usually written with.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
