package tspl

// Element is a positioned drawable unit produced by the layout generator
// and consumed by the document builder. X and Y are printer dots.
type Element struct {
	ElementID string
	Role      Role
	Text      string
	X         int
	Y         int
	FontSize  int
	Bold      bool
	Visible   bool
}

// Layout placement constants. The reserve margins are empirical values
// carried over from the shipped label templates; do not re-derive them.
const (
	// TopMargin and LeftMargin are the fixed page margins in dots.
	TopMargin  = 20
	LeftMargin = 20

	// TitleMinHeightMM is the minimum label height that still fits a
	// title line above the TO block.
	TitleMinHeightMM = 80

	// Vertical cursor advances per emitted element, in dots.
	TitleAdvance   = 80
	HeaderAdvance  = 50
	NameAdvance    = 60
	AddressAdvance = 140
	PhoneAdvance   = 50

	// FromSectionReserve is the space that must remain below the cursor
	// before the FROM header/name pair is emitted.
	FromSectionReserve = 120

	// FromPhoneReserve is the space that must remain before the FROM
	// phone line is emitted.
	FromPhoneReserve = 30
)

// Default placeholder texts for generated elements.
const (
	TitlePlaceholder     = "SHIPPING LABEL"
	ToHeaderText         = "TO:"
	ToNamePlaceholder    = "[TO NAME]"
	ToAddressPlaceholder = "[TO ADDRESS]"
	ToPhonePlaceholder   = "[TO PHONE]"
	FromHeaderText       = "FROM:"
	FromNamePlaceholder  = "[FROM NAME]"
	FromPhonePlaceholder = "[FROM PHONE]"
)

// DefaultLayout deterministically produces a starting element list for a
// label of the given physical size. Elements flow top to bottom; sections
// that would overrun the printable height are omitted rather than clipped,
// so a short label yields a truncated list. The function always succeeds.
func DefaultLayout(widthMM, heightMM float64, s FontSettings) []Element {
	widthDots := MMToDots(widthMM)
	heightDots := MMToDots(heightMM)

	elements := make([]Element, 0, 8)
	y := TopMargin

	emit := func(id string, role Role, text string, x int) {
		size, bold := s.RoleStyle(role)
		elements = append(elements, Element{
			ElementID: id,
			Role:      role,
			Text:      text,
			X:         x,
			Y:         y,
			FontSize:  size,
			Bold:      bold,
			Visible:   true,
		})
	}

	if heightMM >= TitleMinHeightMM {
		emit("label_title", RoleLabelTitle, TitlePlaceholder, centeredX(widthDots, TitlePlaceholder, s))
		y += TitleAdvance
	}

	emit("to_header", RoleHeader, ToHeaderText, LeftMargin)
	y += HeaderAdvance
	emit("to_name", RoleName, ToNamePlaceholder, LeftMargin)
	y += NameAdvance
	emit("to_address", RoleAddress, ToAddressPlaceholder, LeftMargin)
	y += AddressAdvance
	emit("to_phone", RolePhone, ToPhonePlaceholder, LeftMargin)
	y += PhoneAdvance

	if y+FromSectionReserve > heightDots {
		return elements
	}

	emit("from_header", RoleHeader, FromHeaderText, LeftMargin)
	y += HeaderAdvance
	emit("from_name", RoleName, FromNamePlaceholder, LeftMargin)
	y += NameAdvance

	if y+FromPhoneReserve > heightDots {
		return elements
	}
	emit("from_phone", RolePhone, FromPhonePlaceholder, LeftMargin)

	return elements
}

// centeredX horizontally centers text using the resolved font's estimated
// width, never crossing the left margin.
func centeredX(widthDots int, text string, s FontSettings) int {
	w, _ := Resolve(RoleLabelTitle, s).Measure(text)
	x := (widthDots - w) / 2
	if x < LeftMargin {
		return LeftMargin
	}
	return x
}
