package colors

// Color is 8-bit RGBA, the layout instances carry to the GPU.
type Color struct {
	R, G, B, A uint8
}

// RGBA builds a Color.
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Magenta     = Color{255, 0, 255, 255}
	Cyan        = Color{0, 255, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Gray        = Color{128, 128, 128, 255}
	DarkGray    = Color{20, 26, 31, 255}
)

func (c Color) WithR(r uint8) Color { c.R = r; return c }
func (c Color) WithG(g uint8) Color { c.G = g; return c }
func (c Color) WithB(b uint8) Color { c.B = b; return c }

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Float returns the color normalized to [0..1], as GPU clear values expect.
func (c Color) Float() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
