package sim

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme maps pixel colors onto terminal cell colors. The zero value is
// unusable; pick one of the predefined themes or build one from two
// palette endpoints.
//
// Monochrome display themes discard hue and map pixel luminance onto the
// Off→On palette, which makes a binary-color sparkline look like the
// OLED or LCD panel it is destined for.
type Theme struct {
	// Name identifies the theme in logs and demos.
	Name string

	// TrueColor passes pixel colors through unchanged instead of
	// mapping them onto the palette.
	TrueColor bool

	// Off is the palette color of an unlit pixel.
	Off colorful.Color

	// On is the palette color of a fully lit pixel.
	On colorful.Color
}

// Predefined themes, named after the display types the original
// hardware demos target.
var (
	// ThemeDefault renders pixel colors as-is on true-color terminals.
	ThemeDefault = Theme{Name: "default", TrueColor: true}

	// ThemeOledBlue imitates a blue-on-black OLED panel.
	ThemeOledBlue = Theme{
		Name: "oled-blue",
		Off:  colorful.Color{R: 0.00, G: 0.02, B: 0.11},
		On:   colorful.Color{R: 0.12, G: 0.56, B: 1.00},
	}

	// ThemeLCDGreen imitates a green monochrome LCD.
	ThemeLCDGreen = Theme{
		Name: "lcd-green",
		Off:  colorful.Color{R: 0.05, G: 0.09, B: 0.05},
		On:   colorful.Color{R: 0.27, G: 0.89, B: 0.33},
	}

	// ThemeLCDWhite imitates a white-on-dark LCD.
	ThemeLCDWhite = Theme{
		Name: "lcd-white",
		Off:  colorful.Color{R: 0.08, G: 0.08, B: 0.11},
		On:   colorful.Color{R: 0.95, G: 0.95, B: 0.98},
	}
)

// CellColor converts one pixel color to the tcell color painted for it.
// Palette themes blend Off→On in Lab space by the pixel's luminance, so
// anti-aliased or dim pixels land between the endpoints.
func (t Theme) CellColor(c color.Color) tcell.Color {
	if t.TrueColor {
		r, g, b, _ := c.RGBA()
		return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
	}

	cc, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent pixel: treat as unlit.
		cc = colorful.Color{}
	}
	_, lum, _ := cc.Xyz()
	if lum < 0 {
		lum = 0
	}
	if lum > 1 {
		lum = 1
	}

	blended := t.Off.BlendLab(t.On, lum).Clamped()
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
