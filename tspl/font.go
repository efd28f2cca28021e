// Package tspl implements label geometry and TSPL (TSC printer language)
// command generation: role-based font resolution, default layout placement,
// and document assembly. Everything in this package is pure computation.
package tspl

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Printer geometry constants. The target printers are 203 DPI devices.
const (
	// DotsPerMM is the fixed printer resolution (203 DPI).
	DotsPerMM = 8

	// BaseCellWidth and BaseCellHeight describe the glyph cell of the
	// built-in TSPL font used for all text elements, in dots, before
	// magnification.
	BaseCellWidth  = 12
	BaseCellHeight = 20

	// TextFont is the fixed TSPL built-in font index used for every text
	// element.
	TextFont = "2"

	// MinFontSize and MaxFontSize bound the 1-8 semantic font size scale.
	MinFontSize = 1
	MaxFontSize = 8

	// MinMultiplier and MaxMultiplier bound the TSPL magnification range.
	MinMultiplier = 1
	MaxMultiplier = 4
)

// MMToDots converts a physical length in millimeters to printer dots.
func MMToDots(mm float64) int {
	return int(math.Round(mm * DotsPerMM))
}

// Role is the semantic category of a text element. It drives font size and
// boldness selection via FontSettings.
type Role int

const (
	// RoleUnknown is returned by ParseRole for names outside the closed
	// set. Resolution treats it like RoleName.
	RoleUnknown Role = iota
	RoleHeader
	RoleName
	RoleAddress
	RolePhone
	RoleLabelTitle
	RoleCOD
)

// String returns the canonical wire name of the role.
func (r Role) String() string {
	switch r {
	case RoleHeader:
		return "header"
	case RoleName:
		return "name"
	case RoleAddress:
		return "address"
	case RolePhone:
		return "phone"
	case RoleLabelTitle:
		return "labelTitle"
	case RoleCOD:
		return "cod"
	default:
		return "unknown"
	}
}

// Valid reports whether the role is a member of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleHeader, RoleName, RoleAddress, RolePhone, RoleLabelTitle, RoleCOD:
		return true
	default:
		return false
	}
}

// ParseRole maps a canonical role name to its Role. It does not accept
// legacy aliases; callers that must handle persisted legacy names should
// use RoleFromString at the deserialization boundary.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "header":
		return RoleHeader, true
	case "name":
		return RoleName, true
	case "address":
		return RoleAddress, true
	case "phone":
		return RolePhone, true
	case "labelTitle":
		return RoleLabelTitle, true
	case "cod":
		return RoleCOD, true
	default:
		return RoleUnknown, false
	}
}

// legacyRoleAliases translates role names written by old app versions to
// their current equivalents. The table lives only at this boundary; the
// rest of the package works with the closed Role set.
var legacyRoleAliases = map[string]Role{
	"subtitle": RoleHeader,
	"title":    RoleName,
	"content":  RoleAddress,
	"small":    RolePhone,
}

// RoleFromString resolves a stored role name, accepting current names and
// legacy aliases. Unrecognized names fall back to RoleName so that old
// documents keep rendering.
func RoleFromString(s string) Role {
	if r, ok := ParseRole(s); ok {
		return r
	}
	if r, ok := legacyRoleAliases[s]; ok {
		return r
	}
	return RoleName
}

// FontSpec is the resolved drawing instruction for a text element: the
// fixed built-in font plus the TSPL magnification pair.
type FontSpec struct {
	Font     string
	Rotation int
	XMul     int
	YMul     int
}

// CommandFragment renders the font portion of a TSPL TEXT command:
// `"<font>",<rotation>,<xmul>,<ymul>`.
func (f FontSpec) CommandFragment() string {
	return fmt.Sprintf("%q,%d,%d,%d", f.Font, f.Rotation, f.XMul, f.YMul)
}

// CellSize returns the magnified glyph cell in dots.
func (f FontSpec) CellSize() (w, h int) {
	return BaseCellWidth * f.XMul, BaseCellHeight * f.YMul
}

// Measure estimates the bounding box of text drawn with this spec, in dots.
func (f FontSpec) Measure(text string) (w, h int) {
	cw, ch := f.CellSize()
	return cw * utf8.RuneCountInString(text), ch
}

// Resolve maps a semantic role and the active settings to a concrete
// FontSpec. It is total: an invalid role resolves with the name role's
// size and boldness.
func Resolve(role Role, s FontSettings) FontSpec {
	size, bold := s.RoleStyle(role)
	return ResolveStyle(size, bold)
}

// ResolveStyle maps an explicit (size, bold) pair to a FontSpec. Stored
// design elements carry their own style and bypass role lookup.
func ResolveStyle(size int, bold bool) FontSpec {
	size = ClampFontSize(size)

	m := clampMultiplier(int(math.Round(float64(size+1) / 2)))
	x := m
	if bold {
		x = clampMultiplier(m + 1)
	}

	return FontSpec{
		Font:     TextFont,
		Rotation: 0,
		XMul:     x,
		YMul:     m,
	}
}

func clampMultiplier(m int) int {
	if m < MinMultiplier {
		return MinMultiplier
	}
	if m > MaxMultiplier {
		return MaxMultiplier
	}
	return m
}

// ClampFontSize clamps a semantic font size to the 1-8 scale.
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}
