package tspl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elementIDs(elements []Element) []string {
	ids := make([]string, 0, len(elements))
	for _, e := range elements {
		ids = append(ids, e.ElementID)
	}
	return ids
}

func TestDefaultLayoutShortLabel(t *testing.T) {
	// 80x50 mm: too short for a title and for the FROM section.
	elements := DefaultLayout(80, 50, DefaultFontSettings())

	assert.Equal(t, []string{"to_header", "to_name", "to_address", "to_phone"}, elementIDs(elements))
}

func TestDefaultLayoutFullLabel(t *testing.T) {
	// 101x152 mm: title, full TO block, full FROM block.
	elements := DefaultLayout(101, 152, DefaultFontSettings())

	assert.Equal(t, []string{
		"label_title",
		"to_header", "to_name", "to_address", "to_phone",
		"from_header", "from_name", "from_phone",
	}, elementIDs(elements))
}

func TestDefaultLayoutTitleGate(t *testing.T) {
	short := DefaultLayout(80, 50, DefaultFontSettings())
	assert.NotContains(t, elementIDs(short), "label_title")

	tall := DefaultLayout(100, 152, DefaultFontSettings())
	assert.Contains(t, elementIDs(tall), "label_title")

	boundary := DefaultLayout(100, 80, DefaultFontSettings())
	assert.Contains(t, elementIDs(boundary), "label_title")
}

func TestDefaultLayoutVerticalFlow(t *testing.T) {
	elements := DefaultLayout(101, 152, DefaultFontSettings())
	require.Len(t, elements, 8)

	// The cursor only moves down, starting at the top margin.
	assert.Equal(t, TopMargin, elements[0].Y)
	for i := 1; i < len(elements); i++ {
		assert.Greater(t, elements[i].Y, elements[i-1].Y, "element %s", elements[i].ElementID)
	}

	// Nothing crosses the printable height.
	heightDots := MMToDots(152)
	for _, e := range elements {
		assert.Less(t, e.Y, heightDots)
	}
}

func TestDefaultLayoutPositions(t *testing.T) {
	elements := DefaultLayout(101, 152, DefaultFontSettings())
	require.Len(t, elements, 8)

	byID := make(map[string]Element, len(elements))
	for _, e := range elements {
		byID[e.ElementID] = e
	}

	assert.Equal(t, TopMargin, byID["label_title"].Y)
	assert.Equal(t, TopMargin+TitleAdvance, byID["to_header"].Y)
	assert.Equal(t, byID["to_header"].Y+HeaderAdvance, byID["to_name"].Y)
	assert.Equal(t, byID["to_name"].Y+NameAdvance, byID["to_address"].Y)
	assert.Equal(t, byID["to_address"].Y+AddressAdvance, byID["to_phone"].Y)
	assert.Equal(t, byID["to_phone"].Y+PhoneAdvance, byID["from_header"].Y)
	assert.Equal(t, byID["from_header"].Y+HeaderAdvance, byID["from_name"].Y)
	assert.Equal(t, byID["from_name"].Y+NameAdvance, byID["from_phone"].Y)

	// Body elements hug the left margin; the title is centered.
	for _, id := range []string{"to_header", "to_name", "to_address", "to_phone", "from_header", "from_name", "from_phone"} {
		assert.Equal(t, LeftMargin, byID[id].X, "element %s", id)
	}
	assert.Greater(t, byID["label_title"].X, LeftMargin)
}

func TestDefaultLayoutTitleCentering(t *testing.T) {
	s := DefaultFontSettings()
	elements := DefaultLayout(101, 152, s)
	title := elements[0]
	require.Equal(t, "label_title", title.ElementID)

	w, _ := Resolve(RoleLabelTitle, s).Measure(TitlePlaceholder)
	assert.Equal(t, (MMToDots(101)-w)/2, title.X)

	// A label narrower than the title text pins it to the left margin.
	narrow := DefaultLayout(40, 152, s)
	require.Equal(t, "label_title", narrow[0].ElementID)
	assert.Equal(t, LeftMargin, narrow[0].X)
}

func TestDefaultLayoutRoleStyles(t *testing.T) {
	s := DefaultFontSettings()
	elements := DefaultLayout(101, 152, s)

	for _, e := range elements {
		size, bold := s.RoleStyle(e.Role)
		assert.Equal(t, size, e.FontSize, "element %s", e.ElementID)
		assert.Equal(t, bold, e.Bold, "element %s", e.ElementID)
		assert.True(t, e.Visible)
	}
}

func TestDefaultLayoutDeterministic(t *testing.T) {
	a := DefaultLayout(101, 152, DefaultFontSettings())
	b := DefaultLayout(101, 152, DefaultFontSettings())
	assert.Equal(t, a, b)
}

func TestDefaultLayoutDegenerateHeight(t *testing.T) {
	// Even a label with no usable height still yields the TO block; the
	// generator never fails.
	elements := DefaultLayout(80, 0, DefaultFontSettings())
	assert.Equal(t, []string{"to_header", "to_name", "to_address", "to_phone"}, elementIDs(elements))

	elements = DefaultLayout(80, -10, DefaultFontSettings())
	assert.Len(t, elements, 4)
}

func TestDefaultLayoutFromPhoneGate(t *testing.T) {
	// 55.5 mm = 444 dots. Without a title the TO block ends at 320 dots,
	// so the FROM pair fits (320+120 <= 444) but the phone line does not
	// (430+30 > 444). The two space checks are independent.
	elements := DefaultLayout(80, 55.5, DefaultFontSettings())
	ids := elementIDs(elements)
	assert.Contains(t, ids, "from_header")
	assert.Contains(t, ids, "from_name")
	assert.NotContains(t, ids, "from_phone")
}
