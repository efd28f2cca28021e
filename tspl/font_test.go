package tspl

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMultiplierBounds(t *testing.T) {
	// For every size/bold combination the horizontal multiplier must be
	// at least the vertical one, and both must stay inside the printer's
	// 1-4 magnification range.
	for size := MinFontSize; size <= MaxFontSize; size++ {
		for _, bold := range []bool{false, true} {
			t.Run(fmt.Sprintf("size=%d bold=%v", size, bold), func(t *testing.T) {
				s := DefaultFontSettings()
				s.Name = RoleStyle{Size: size, Bold: bold}
				spec := Resolve(RoleName, s)

				assert.GreaterOrEqual(t, spec.XMul, spec.YMul)
				assert.GreaterOrEqual(t, spec.XMul, MinMultiplier)
				assert.LessOrEqual(t, spec.XMul, MaxMultiplier)
				assert.GreaterOrEqual(t, spec.YMul, MinMultiplier)
				assert.LessOrEqual(t, spec.YMul, MaxMultiplier)
			})
		}
	}
}

func TestResolveMultiplierValues(t *testing.T) {
	cases := []struct {
		size  int
		bold  bool
		wantX int
		wantY int
	}{
		{size: 1, bold: false, wantX: 1, wantY: 1},
		{size: 1, bold: true, wantX: 2, wantY: 1},
		{size: 2, bold: false, wantX: 2, wantY: 2},
		{size: 4, bold: false, wantX: 3, wantY: 3},
		{size: 4, bold: true, wantX: 4, wantY: 3},
		{size: 7, bold: true, wantX: 4, wantY: 4},
		{size: 8, bold: false, wantX: 4, wantY: 4},
		{size: 8, bold: true, wantX: 4, wantY: 4},
	}

	for _, tc := range cases {
		s := DefaultFontSettings()
		s.Name = RoleStyle{Size: tc.size, Bold: tc.bold}
		spec := Resolve(RoleName, s)
		assert.Equal(t, tc.wantX, spec.XMul, "size=%d bold=%v", tc.size, tc.bold)
		assert.Equal(t, tc.wantY, spec.YMul, "size=%d bold=%v", tc.size, tc.bold)
	}
}

func TestResolveFixedFont(t *testing.T) {
	spec := Resolve(RoleHeader, DefaultFontSettings())
	assert.Equal(t, TextFont, spec.Font)
	assert.Equal(t, 0, spec.Rotation)
}

func TestCommandFragment(t *testing.T) {
	spec := FontSpec{Font: "2", Rotation: 0, XMul: 3, YMul: 2}
	assert.Equal(t, `"2",0,3,2`, spec.CommandFragment())
}

func TestMeasure(t *testing.T) {
	spec := FontSpec{Font: "2", XMul: 2, YMul: 2}

	w, h := spec.Measure("ABC")
	assert.Equal(t, 3*BaseCellWidth*2, w)
	assert.Equal(t, BaseCellHeight*2, h)

	w, h = spec.Measure("")
	assert.Zero(t, w)
	assert.Equal(t, BaseCellHeight*2, h)
}

func TestLegacyAliasResolution(t *testing.T) {
	// A legacy alias must resolve to the same (size, bold) pair as the
	// current role it maps to.
	aliases := map[string]Role{
		"subtitle": RoleHeader,
		"title":    RoleName,
		"content":  RoleAddress,
		"small":    RolePhone,
	}

	s := DefaultFontSettings()
	for legacy, current := range aliases {
		t.Run(legacy, func(t *testing.T) {
			gotSize, gotBold := s.RoleStyle(RoleFromString(legacy))
			wantSize, wantBold := s.RoleStyle(current)
			assert.Equal(t, wantSize, gotSize)
			assert.Equal(t, wantBold, gotBold)
		})
	}
}

func TestRoleFromStringFallback(t *testing.T) {
	assert.Equal(t, RoleName, RoleFromString("no-such-role"))
	assert.Equal(t, RoleName, RoleFromString(""))
	assert.Equal(t, RoleCOD, RoleFromString("cod"))
	assert.Equal(t, RoleLabelTitle, RoleFromString("labelTitle"))
}

func TestParseRoleRejectsAliases(t *testing.T) {
	// ParseRole handles only the closed set; aliases belong to the
	// deserialization boundary.
	for _, name := range []string{"subtitle", "title", "content", "small", "bogus"} {
		_, ok := ParseRole(name)
		assert.False(t, ok, "ParseRole(%q)", name)
	}
	for _, name := range []string{"header", "name", "address", "phone", "labelTitle", "cod"} {
		r, ok := ParseRole(name)
		assert.True(t, ok, "ParseRole(%q)", name)
		assert.True(t, r.Valid())
	}
}

func TestClampFontSize(t *testing.T) {
	assert.Equal(t, MinFontSize, ClampFontSize(0))
	assert.Equal(t, MinFontSize, ClampFontSize(-3))
	assert.Equal(t, 5, ClampFontSize(5))
	assert.Equal(t, MaxFontSize, ClampFontSize(12))
}

func TestMMToDots(t *testing.T) {
	assert.Equal(t, 400, MMToDots(50))
	assert.Equal(t, 808, MMToDots(101))
	assert.Equal(t, 1216, MMToDots(152))
	assert.Equal(t, 4, MMToDots(0.5))
}
