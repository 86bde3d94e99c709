package game

import "testing"

func TestHSVPrimaries(t *testing.T) {
	cases := []struct {
		hue  float64
		want RGB
	}{
		{0, RGB{R: 255}},
		{120, RGB{G: 255}},
		{240, RGB{B: 255}},
	}
	for _, c := range cases {
		if got := hsvToRGB(c.hue, 1, 1); got != c.want {
			t.Fatalf("hsv(%v) = %+v, want %+v", c.hue, got, c.want)
		}
	}
	if got := hsvToRGB(200, 0, 1); got != (RGB{R: 255, G: 255, B: 255}) {
		t.Fatalf("zero saturation = %+v, want white", got)
	}
}

func TestHSVWrapsHue(t *testing.T) {
	if got, want := hsvToRGB(480, 1, 1), hsvToRGB(120, 1, 1); got != want {
		t.Fatalf("hue 480 = %+v, hue 120 = %+v", got, want)
	}
	if got, want := hsvToRGB(-120, 1, 1), hsvToRGB(240, 1, 1); got != want {
		t.Fatalf("hue -120 = %+v, hue 240 = %+v", got, want)
	}
}

func TestShadeFromHueIsPure(t *testing.T) {
	a := ShadeFromHue(85)
	b := ShadeFromHue(85)
	if a != b {
		t.Fatalf("same hue shaded differently: %+v vs %+v", a, b)
	}
	c := ShadeFromHue(300)
	if a == c {
		t.Fatalf("distinct hues collapsed to one shade: %+v", a)
	}
	if a.Rim == a.Glow {
		t.Fatalf("rim and glow derived identically: %+v", a)
	}
}

func TestRGBAddClamps(t *testing.T) {
	c := RGB{R: 250, G: 10, B: 128}
	got := c.Add(40, -40, 0)
	want := RGB{R: 255, G: 0, B: 128}
	if got != want {
		t.Fatalf("Add = %+v, want %+v", got, want)
	}
}

func TestRGBMulScalesDown(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 0}
	if got := c.Mul(255); got != c {
		t.Fatalf("Mul(255) changed the colour: %+v", got)
	}
	got := c.Mul(51)
	if got.R != 40 || got.G != 20 || got.B != 0 {
		t.Fatalf("Mul(51) = %+v, want {40 20 0}", got)
	}
}

func TestBackdropCycleLoops(t *testing.T) {
	top0, bot0 := BackdropCycle(0)
	if top0 != Palette.DeepTop || bot0 != Palette.DeepBottom {
		t.Fatalf("cycle start = %+v/%+v, want the deep anchors", top0, bot0)
	}

	topHalf, botHalf := BackdropCycle(BackdropPeriod / 2)
	if topHalf != Palette.WarmTop || botHalf != Palette.WarmBottom {
		t.Fatalf("cycle midpoint = %+v/%+v, want the warm anchors", topHalf, botHalf)
	}

	topFull, botFull := BackdropCycle(BackdropPeriod)
	if topFull != top0 || botFull != bot0 {
		t.Fatalf("cycle did not loop: %+v/%+v vs %+v/%+v", topFull, botFull, top0, bot0)
	}

	topQ, _ := BackdropCycle(BackdropPeriod / 4)
	if topQ == top0 || topQ == topHalf {
		t.Fatalf("quarter cycle pinned to an anchor: %+v", topQ)
	}
}

func TestLerpRGBEndpoints(t *testing.T) {
	a := RGB{R: 10, G: 20, B: 30}
	b := RGB{R: 200, G: 100, B: 50}
	if got := lerpRGB(a, b, 0); got != a {
		t.Fatalf("lerp t=0 = %+v, want %+v", got, a)
	}
	if got := lerpRGB(a, b, 1); got != b {
		t.Fatalf("lerp t=1 = %+v, want %+v", got, b)
	}
	mid := lerpRGB(a, b, 0.5)
	if mid.R != 105 {
		t.Fatalf("lerp midpoint R = %d, want 105", mid.R)
	}
}
