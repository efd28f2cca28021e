package tspl

// RoleStyle is a (size, bold) pair for one semantic role.
type RoleStyle struct {
	Size int
	Bold bool
}

// FontSettings holds the per-role text styling for a label design. Treat
// values as immutable: functions that need a modified copy return a new
// value instead of mutating in place.
type FontSettings struct {
	Header     RoleStyle
	Name       RoleStyle
	Address    RoleStyle
	Phone      RoleStyle
	LabelTitle RoleStyle
	COD        RoleStyle

	// LineSpacing scales the vertical gap between stacked text lines.
	LineSpacing float64

	// AutoSize lets the layout shrink oversized text to fit the label.
	AutoSize bool

	// MaxAddressLines caps how many lines an address element may wrap to.
	MaxAddressLines int
}

// RoleStyle returns the (size, bold) pair for a role. Roles outside the
// closed set use the name role's style, so resolution never fails.
func (s FontSettings) RoleStyle(role Role) (size int, bold bool) {
	var st RoleStyle
	switch role {
	case RoleHeader:
		st = s.Header
	case RoleAddress:
		st = s.Address
	case RolePhone:
		st = s.Phone
	case RoleLabelTitle:
		st = s.LabelTitle
	case RoleCOD:
		st = s.COD
	default:
		st = s.Name
	}
	return ClampFontSize(st.Size), st.Bold
}

// DefaultFontSettings is the standard preset.
func DefaultFontSettings() FontSettings {
	return FontSettings{
		Header:          RoleStyle{Size: 5, Bold: true},
		Name:            RoleStyle{Size: 6, Bold: true},
		Address:         RoleStyle{Size: 4, Bold: false},
		Phone:           RoleStyle{Size: 4, Bold: false},
		LabelTitle:      RoleStyle{Size: 7, Bold: true},
		COD:             RoleStyle{Size: 6, Bold: true},
		LineSpacing:     1.0,
		AutoSize:        true,
		MaxAddressLines: 3,
	}
}

// SmallFontSettings is a compact preset for narrow label stock.
func SmallFontSettings() FontSettings {
	return FontSettings{
		Header:          RoleStyle{Size: 3, Bold: true},
		Name:            RoleStyle{Size: 4, Bold: true},
		Address:         RoleStyle{Size: 2, Bold: false},
		Phone:           RoleStyle{Size: 2, Bold: false},
		LabelTitle:      RoleStyle{Size: 5, Bold: true},
		COD:             RoleStyle{Size: 4, Bold: true},
		LineSpacing:     0.8,
		AutoSize:        true,
		MaxAddressLines: 2,
	}
}

// LargeFontSettings is a high-visibility preset for wide label stock.
func LargeFontSettings() FontSettings {
	return FontSettings{
		Header:          RoleStyle{Size: 7, Bold: true},
		Name:            RoleStyle{Size: 8, Bold: true},
		Address:         RoleStyle{Size: 6, Bold: false},
		Phone:           RoleStyle{Size: 6, Bold: false},
		LabelTitle:      RoleStyle{Size: 8, Bold: true},
		COD:             RoleStyle{Size: 8, Bold: true},
		LineSpacing:     1.2,
		AutoSize:        false,
		MaxAddressLines: 4,
	}
}

// Normalize returns a copy with every font size clamped to the 1-8 scale
// and degenerate numeric fields replaced by defaults.
func (s FontSettings) Normalize() FontSettings {
	s.Header.Size = ClampFontSize(s.Header.Size)
	s.Name.Size = ClampFontSize(s.Name.Size)
	s.Address.Size = ClampFontSize(s.Address.Size)
	s.Phone.Size = ClampFontSize(s.Phone.Size)
	s.LabelTitle.Size = ClampFontSize(s.LabelTitle.Size)
	s.COD.Size = ClampFontSize(s.COD.Size)
	if s.LineSpacing <= 0 {
		s.LineSpacing = 1.0
	}
	if s.MaxAddressLines <= 0 {
		s.MaxAddressLines = 3
	}
	return s
}

// Persisted key names for the flat map representation. Legacy keys written
// by old app versions are accepted on input only.
const (
	keyHeaderFontSize     = "headerFontSize"
	keyHeaderBold         = "headerBold"
	keyNameFontSize       = "nameFontSize"
	keyNameBold           = "nameBold"
	keyAddressFontSize    = "addressFontSize"
	keyAddressBold        = "addressBold"
	keyPhoneFontSize      = "phoneFontSize"
	keyPhoneBold          = "phoneBold"
	keyLabelTitleFontSize = "labelTitleFontSize"
	keyLabelTitleBold     = "labelTitleBold"
	keyCODFontSize        = "codFontSize"
	keyCODBold            = "codBold"
	keyLineSpacing        = "lineSpacing"
	keyAutoSize           = "autoSize"
	keyMaxAddressLines    = "maxAddressLines"

	legacyKeySubtitleFontSize = "subtitleFontSize"
	legacyKeySubtitleBold     = "subtitleBold"
	legacyKeyTitleFontSize    = "titleFontSize"
	legacyKeyTitleBold        = "titleBold"
	legacyKeyContentFontSize  = "contentFontSize"
	legacyKeyContentBold      = "contentBold"
	legacyKeySmallFontSize    = "smallFontSize"
	legacyKeySmallBold        = "smallBold"
)

// ToMap serializes the settings to the flat key-value representation used
// for persistence. Only current key names are written.
func (s FontSettings) ToMap() map[string]any {
	return map[string]any{
		keyHeaderFontSize:     s.Header.Size,
		keyHeaderBold:         s.Header.Bold,
		keyNameFontSize:       s.Name.Size,
		keyNameBold:           s.Name.Bold,
		keyAddressFontSize:    s.Address.Size,
		keyAddressBold:        s.Address.Bold,
		keyPhoneFontSize:      s.Phone.Size,
		keyPhoneBold:          s.Phone.Bold,
		keyLabelTitleFontSize: s.LabelTitle.Size,
		keyLabelTitleBold:     s.LabelTitle.Bold,
		keyCODFontSize:        s.COD.Size,
		keyCODBold:            s.COD.Bold,
		keyLineSpacing:        s.LineSpacing,
		keyAutoSize:           s.AutoSize,
		keyMaxAddressLines:    s.MaxAddressLines,
	}
}

// FontSettingsFromMap deserializes the flat representation. Missing keys
// keep the default preset's values. Legacy key names are honored when the
// current name is absent, and sizes are clamped to the 1-8 scale.
func FontSettingsFromMap(m map[string]any) FontSettings {
	s := DefaultFontSettings()
	if m == nil {
		return s
	}

	readStyle := func(st *RoleStyle, sizeKey, boldKey, legacySizeKey, legacyBoldKey string) {
		if v, ok := mapInt(m, sizeKey); ok {
			st.Size = v
		} else if legacySizeKey != "" {
			if v, ok := mapInt(m, legacySizeKey); ok {
				st.Size = v
			}
		}
		if v, ok := mapBool(m, boldKey); ok {
			st.Bold = v
		} else if legacyBoldKey != "" {
			if v, ok := mapBool(m, legacyBoldKey); ok {
				st.Bold = v
			}
		}
	}

	readStyle(&s.Header, keyHeaderFontSize, keyHeaderBold, legacyKeySubtitleFontSize, legacyKeySubtitleBold)
	readStyle(&s.Name, keyNameFontSize, keyNameBold, legacyKeyTitleFontSize, legacyKeyTitleBold)
	readStyle(&s.Address, keyAddressFontSize, keyAddressBold, legacyKeyContentFontSize, legacyKeyContentBold)
	readStyle(&s.Phone, keyPhoneFontSize, keyPhoneBold, legacyKeySmallFontSize, legacyKeySmallBold)
	readStyle(&s.LabelTitle, keyLabelTitleFontSize, keyLabelTitleBold, "", "")
	readStyle(&s.COD, keyCODFontSize, keyCODBold, "", "")

	if v, ok := mapFloat(m, keyLineSpacing); ok {
		s.LineSpacing = v
	}
	if v, ok := mapBool(m, keyAutoSize); ok {
		s.AutoSize = v
	}
	if v, ok := mapInt(m, keyMaxAddressLines); ok {
		s.MaxAddressLines = v
	}

	return s.Normalize()
}

// mapInt reads an integer that may have round-tripped through JSON as a
// float64.
func mapInt(m map[string]any, key string) (int, bool) {
	switch v := m[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func mapBool(m map[string]any, key string) (bool, bool) {
	v, ok := m[key].(bool)
	return v, ok
}

func mapFloat(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
