package charts

import (
	"strings"
)

type Palette []string

// At cycles through the palette so that any index gives a colour.
func (p Palette) At(i int) string {
	if len(p) == 0 {
		return defaultTextColor
	}
	return p[i%len(p)]
}

var (
	Category10 Palette
	Tableau10  Palette

	BarColors Palette
	PieColors Palette

	palettes map[string]Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")

	BarColors = splitColorString("0056a4e74c3c27ae60f39c12")
	PieColors = splitColorString("0056a4e74c3c27ae60f39c129b59b6")

	palettes = map[string]Palette{
		"category10": Category10,
		"tableau10":  Tableau10,
		"bar":        BarColors,
		"pie":        PieColors,
	}
}

// PaletteByName gives a copy of one of the named palettes: category10,
// tableau10, bar or pie. Case is ignored.
func PaletteByName(name string) (Palette, bool) {
	p, ok := palettes[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return clonePalette(p), true
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

func clonePalette(p Palette) Palette {
	return append(Palette(nil), p...)
}
