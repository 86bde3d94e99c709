package game

import "math"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	DeepTop    RGB // backdrop gradient anchors
	DeepBottom RGB
	WarmTop    RGB
	WarmBottom RGB
	Text       RGB
	TextDim    RGB
	Meter      RGB
	MeterFill  RGB
	Mote       RGB
	Highlight  RGB
}{
	DeepTop:    RGB{R: 24, G: 34, B: 66},
	DeepBottom: RGB{R: 52, G: 86, B: 124},
	WarmTop:    RGB{R: 46, G: 42, B: 86},
	WarmBottom: RGB{R: 120, G: 92, B: 130},
	Text:       RGB{R: 235, G: 240, B: 250},
	TextDim:    RGB{R: 150, G: 162, B: 185},
	Meter:      RGB{R: 60, G: 74, B: 105},
	MeterFill:  RGB{R: 130, G: 210, B: 255},
	Mote:       RGB{R: 190, G: 215, B: 240},
	Highlight:  RGB{R: 255, G: 255, B: 255},
}

// hsvToRGB converts hue (degrees), saturation and value in [0,1] to RGB.
func hsvToRGB(h, s, v float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}

// BubbleShade holds the colors derived from one base hue: a translucent
// body tone, a brighter rim, and a saturated glow for the halo pass.
type BubbleShade struct {
	Body RGB
	Rim  RGB
	Glow RGB
}

// ShadeFromHue derives the shading colors for a bubble. Pure function:
// the same hue always yields the same shade triple.
func ShadeFromHue(hue float64) BubbleShade {
	return BubbleShade{
		Body: hsvToRGB(hue, 0.42, 0.92),
		Rim:  hsvToRGB(hue+24, 0.30, 1.0),
		Glow: hsvToRGB(hue-12, 0.60, 1.0),
	}
}

// Backdrop drift settings. The gradient eases between the deep and warm
// anchor pairs over one full period so long sessions stay visually calm.
const (
	BackdropPeriod = 120.0 // seconds per full drift cycle
)

// BackdropCycle computes the top and bottom gradient colors for the given
// session time. The blend follows a raised sine so the midpoints linger.
func BackdropCycle(t float64) (top, bottom RGB) {
	phase := math.Mod(t, BackdropPeriod) / BackdropPeriod
	blend := 0.5 - 0.5*math.Cos(phase*2*math.Pi)
	top = lerpRGB(Palette.DeepTop, Palette.WarmTop, blend)
	bottom = lerpRGB(Palette.DeepBottom, Palette.WarmBottom, blend)
	return
}
