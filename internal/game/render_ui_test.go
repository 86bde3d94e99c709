package game

import "testing"

func TestDrawCharQueuesOneSpritePerLitPixel(t *testing.T) {
	r := &Renderer{}
	r.DrawChar('A', 0, 0, 1, RGB{R: 255, G: 255, B: 255}, 1)

	// 'A' lights 18 of the 35 glyph pixels, each packed as 8 floats.
	if got := len(r.textBuf) / 8; got != 18 {
		t.Fatalf("sprites for A = %d, want 18", got)
	}

	// Top row of A is .###. so the first sprite sits at column 1.
	if r.textBuf[0] != 1.5 || r.textBuf[1] != 0.5 {
		t.Fatalf("first pixel at (%v, %v), want (1.5, 0.5)", r.textBuf[0], r.textBuf[1])
	}
	if r.textBuf[2] != 1 {
		t.Fatalf("pixel size = %v, want scale 1", r.textBuf[2])
	}
	if r.textBuf[3] != 1 || r.textBuf[4] != 1 || r.textBuf[5] != 1 || r.textBuf[6] != 1 {
		t.Fatalf("white glyph packed as (%v %v %v %v)", r.textBuf[3], r.textBuf[4], r.textBuf[5], r.textBuf[6])
	}
}

func TestDrawCharFoldsLowercase(t *testing.T) {
	lower := &Renderer{}
	upper := &Renderer{}
	lower.DrawChar('g', 10, 20, 2, RGB{R: 200, G: 100, B: 50}, 0.8)
	upper.DrawChar('G', 10, 20, 2, RGB{R: 200, G: 100, B: 50}, 0.8)

	if len(lower.textBuf) != len(upper.textBuf) {
		t.Fatalf("lowercase emitted %d floats, uppercase %d", len(lower.textBuf), len(upper.textBuf))
	}
	for i := range lower.textBuf {
		if lower.textBuf[i] != upper.textBuf[i] {
			t.Fatalf("buffers diverge at %d: %v vs %v", i, lower.textBuf[i], upper.textBuf[i])
		}
	}
}

func TestDrawCharSkipsUnknownRunes(t *testing.T) {
	r := &Renderer{}
	r.DrawChar('%', 0, 0, 1, RGB{R: 255}, 1)
	r.DrawChar('~', 0, 0, 1, RGB{R: 255}, 1)
	if len(r.textBuf) != 0 {
		t.Fatalf("unknown runes queued %d floats", len(r.textBuf))
	}
}

func TestDrawStringAdvancesAndWraps(t *testing.T) {
	r := &Renderer{}
	r.DrawString("AA", 0, 0, 1, RGB{R: 255, G: 255, B: 255})

	past := false
	for i := 0; i < len(r.textBuf); i += 8 {
		if r.textBuf[i] >= float32(fontAdvX) {
			past = true
		}
	}
	if !past {
		t.Fatalf("second glyph never advanced past the first cell")
	}

	r.textBuf = r.textBuf[:0]
	r.DrawString("A\nA", 0, 0, 1, RGB{R: 255, G: 255, B: 255})
	wrapped := false
	for i := 0; i < len(r.textBuf); i += 8 {
		x, y := r.textBuf[i], r.textBuf[i+1]
		if y >= float32(fontAdvY) {
			wrapped = true
			if x >= float32(fontAdvX) {
				t.Fatalf("newline kept advancing x: pixel at (%v, %v)", x, y)
			}
		}
	}
	if !wrapped {
		t.Fatalf("newline never moved to the next row")
	}
}

func TestTextWidthCoversWidestLine(t *testing.T) {
	if got := TextWidth("ABC", 1); got != 3*fontAdvX {
		t.Fatalf("width(ABC) = %d, want %d", got, 3*fontAdvX)
	}
	if got := TextWidth("ABC", 2); got != 6*fontAdvX {
		t.Fatalf("width(ABC, x2) = %d, want %d", got, 6*fontAdvX)
	}
	if got := TextWidth("AB\nABCD\nA", 1); got != 4*fontAdvX {
		t.Fatalf("multiline width = %d, want %d", got, 4*fontAdvX)
	}
	if got := TextWidth("", 1); got != 0 {
		t.Fatalf("width of empty string = %d", got)
	}
}
