package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeColor(t *testing.T) {
	cases := []struct {
		in   string
		def  ColorTag
		want ColorTag
	}{
		{"yellow", ColorGrey, ColorYellow},
		{"  Blue ", ColorGrey, ColorBlue},
		{"light_blue", ColorGrey, ColorLightBlue},
		{"Light Green", ColorGrey, ColorLightGreen},
		{"gray", ColorYellow, ColorGrey},
		{"purple", ColorYellow, ColorViolet},
		{"rouge", ColorYellow, ColorRed},
		{"chartreuse", ColorYellow, ColorYellow},
		{"", ColorGrey, ColorGrey},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeColor(tc.in, tc.def), "input %q", tc.in)
	}
}

func TestNoteAndConnectorDefaults(t *testing.T) {
	assert.Equal(t, ColorYellow, NoteColor("#ff00ff"))
	assert.Equal(t, ColorGrey, ConnectorColor("not-a-color"))
	assert.Equal(t, ColorGreen, ConnectorColor("green"))
}

func TestPaletteAndLight(t *testing.T) {
	assert.Equal(t, Palette(0), Palette(len(branchPalette)))
	assert.Equal(t, ColorLightBlue, Light(ColorBlue))
	assert.Equal(t, ColorYellow, Light(ColorYellow))
	assert.True(t, Known("light-violet"))
	assert.False(t, Known("gray"))
}

func TestKindGenerated(t *testing.T) {
	assert.True(t, KindMindMap.Generated())
	assert.True(t, KindFlowDiagram.Generated())
	assert.False(t, KindBrainstorm.Generated())
	assert.False(t, Kind("other").Valid())
}
