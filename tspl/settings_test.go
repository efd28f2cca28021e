package tspl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontSettingsRoundTrip(t *testing.T) {
	presets := map[string]FontSettings{
		"default": DefaultFontSettings(),
		"small":   SmallFontSettings(),
		"large":   LargeFontSettings(),
	}

	for name, s := range presets {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, s, FontSettingsFromMap(s.ToMap()))
		})
	}
}

func TestFontSettingsRoundTripThroughJSON(t *testing.T) {
	// Persistence stores the map as JSON, which turns every number into a
	// float64. The round trip must survive that.
	s := LargeFontSettings()
	s.Header = RoleStyle{Size: 2, Bold: false}
	s.LineSpacing = 1.35

	raw, err := json.Marshal(s.ToMap())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, s, FontSettingsFromMap(decoded))
}

func TestFontSettingsLegacyKeys(t *testing.T) {
	// Maps written by old app versions only carry the legacy key names.
	m := map[string]any{
		"subtitleFontSize": 3,
		"subtitleBold":     false,
		"titleFontSize":    7,
		"titleBold":        true,
		"contentFontSize":  2,
		"contentBold":      true,
		"smallFontSize":    1,
		"smallBold":        false,
	}

	s := FontSettingsFromMap(m)
	assert.Equal(t, RoleStyle{Size: 3, Bold: false}, s.Header)
	assert.Equal(t, RoleStyle{Size: 7, Bold: true}, s.Name)
	assert.Equal(t, RoleStyle{Size: 2, Bold: true}, s.Address)
	assert.Equal(t, RoleStyle{Size: 1, Bold: false}, s.Phone)

	// Fields absent from the map keep the default preset values.
	def := DefaultFontSettings()
	assert.Equal(t, def.LabelTitle, s.LabelTitle)
	assert.Equal(t, def.COD, s.COD)
	assert.Equal(t, def.LineSpacing, s.LineSpacing)
	assert.Equal(t, def.MaxAddressLines, s.MaxAddressLines)
}

func TestFontSettingsCurrentKeysWinOverLegacy(t *testing.T) {
	m := map[string]any{
		"headerFontSize":   6,
		"subtitleFontSize": 2,
		"headerBold":       false,
		"subtitleBold":     true,
	}

	s := FontSettingsFromMap(m)
	assert.Equal(t, RoleStyle{Size: 6, Bold: false}, s.Header)
}

func TestFontSettingsFromMapClamps(t *testing.T) {
	m := map[string]any{
		"headerFontSize":  99,
		"nameFontSize":    0,
		"addressFontSize": -4,
		"lineSpacing":     -1.0,
		"maxAddressLines": 0,
	}

	s := FontSettingsFromMap(m)
	assert.Equal(t, MaxFontSize, s.Header.Size)
	assert.Equal(t, MinFontSize, s.Name.Size)
	assert.Equal(t, MinFontSize, s.Address.Size)
	assert.Equal(t, 1.0, s.LineSpacing)
	assert.Equal(t, 3, s.MaxAddressLines)
}

func TestFontSettingsFromNilMap(t *testing.T) {
	assert.Equal(t, DefaultFontSettings(), FontSettingsFromMap(nil))
}

func TestToMapWritesOnlyCurrentKeys(t *testing.T) {
	m := DefaultFontSettings().ToMap()
	for _, legacy := range []string{
		"subtitleFontSize", "subtitleBold",
		"titleFontSize", "titleBold",
		"contentFontSize", "contentBold",
		"smallFontSize", "smallBold",
	} {
		assert.NotContains(t, m, legacy)
	}
	assert.Len(t, m, 15)
}

func TestRoleStyleUnknownRoleUsesName(t *testing.T) {
	s := DefaultFontSettings()
	s.Name = RoleStyle{Size: 3, Bold: true}

	size, bold := s.RoleStyle(RoleUnknown)
	assert.Equal(t, 3, size)
	assert.True(t, bold)

	size, bold = s.RoleStyle(Role(99))
	assert.Equal(t, 3, size)
	assert.True(t, bold)
}
