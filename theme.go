package ui

import colorful "github.com/lucasb-eyer/go-colorful"

// Theme provides a set of styles for consistent UI appearance. The engine
// serves both the menus and the HUD; themes keep the two looking alike.
type Theme struct {
	Base   Style // default text style
	Muted  Style // de-emphasized text
	Accent Style // highlighted/important text
	Danger Style // warnings, critical hull, errors
	Panel  Style // HUD panel backgrounds
}

// ThemeHUD is the in-game overlay theme: readable over water and terrain.
var ThemeHUD = Theme{
	Base:   Style{FG: White, BG: DefaultColor()},
	Muted:  Style{FG: BrightBlack, BG: DefaultColor()},
	Accent: Style{FG: BrightCyan, BG: DefaultColor()},
	Danger: Style{FG: BrightRed, BG: DefaultColor()},
	Panel:  Style{FG: White, BG: RGB(8, 24, 48), Padding: 1},
}

// ThemeMenu is the main-menu and intermission theme.
var ThemeMenu = Theme{
	Base:   Style{FG: White, BG: DefaultColor()},
	Muted:  Style{FG: BrightBlack, BG: DefaultColor()},
	Accent: Style{FG: BrightYellow, BG: DefaultColor()},
	Danger: Style{FG: Red, BG: DefaultColor()},
	Panel:  Style{FG: White, BG: RGB(16, 16, 32), Padding: 2},
}

// Lerp blends two RGB colors in Luv space. Non-RGB colors cannot be blended
// and resolve to b at t >= 0.5, a otherwise.
func Lerp(a, b Color, t float64) Color {
	if a.Mode != ColorRGB || b.Mode != ColorRGB {
		if t >= 0.5 {
			return b
		}
		return a
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLuv(cb, t).Clamped().RGB255()
	return RGB(r, g, bl)
}

// MeterColor maps a 0..1 ratio onto a red-yellow-green ramp, for hull and
// supply meters.
func MeterColor(ratio float64) Color {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	low := RGB(200, 32, 32)
	mid := RGB(220, 180, 32)
	high := RGB(32, 180, 64)
	if ratio < 0.5 {
		return Lerp(low, mid, ratio*2)
	}
	return Lerp(mid, high, (ratio-0.5)*2)
}
