package banner

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoadEmbeddedFonts(t *testing.T) {
	tests := []struct {
		size   Size
		height int
	}{
		{SizeBig, 5},
		{SizeSmall, 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			f, err := LoadFont(tt.size)
			if err != nil {
				t.Fatalf("LoadFont: %v", err)
			}
			if got := f.Height(); got != tt.height {
				t.Errorf("height = %d, want %d", got, tt.height)
			}
		})
	}
}

func TestLoadFontCaches(t *testing.T) {
	a, err := LoadFont(SizeBig)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := LoadFont(SizeBig)
	if a != b {
		t.Error("font not cached")
	}
}

func TestLoadFontUnknownSize(t *testing.T) {
	if _, err := LoadFont(Size("giant")); err == nil {
		t.Error("expected error for unknown size")
	}
}

func TestParseFontRejectsGarbage(t *testing.T) {
	if _, err := ParseFont([]byte(":::not yaml")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := ParseFont([]byte("name: empty\n")); err == nil {
		t.Error("expected error for font without glyphs")
	}
}

func TestGlyphLookupIsCaseInsensitive(t *testing.T) {
	f, err := LoadFont(SizeBig)
	if err != nil {
		t.Fatal(err)
	}
	upper := f.Glyph('H')
	lower := f.Glyph('h')
	if len(upper) == 0 || len(lower) != len(upper) {
		t.Fatal("case-insensitive lookup broken")
	}
	for i := range upper {
		if upper[i] != lower[i] {
			t.Errorf("row %d differs: %q vs %q", i, upper[i], lower[i])
		}
	}
}

func TestGlyphFallback(t *testing.T) {
	f, err := LoadFont(SizeBig)
	if err != nil {
		t.Fatal(err)
	}
	rows := f.Glyph('§')
	if len(rows) != f.Height() {
		t.Fatalf("fallback has %d rows, want %d", len(rows), f.Height())
	}
	for _, row := range rows {
		if row != "?" {
			t.Errorf("fallback row = %q", row)
		}
	}
}

func TestRenderSubstitutesSymbol(t *testing.T) {
	f, err := LoadFont(SizeBig)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	NewPrinter(f, nil, Position{}, '#').Render(&buf, "HI")

	out := buf.String()
	if strings.Contains(out, "*") {
		t.Error("pattern symbol not substituted")
	}
	if !strings.Contains(out, "#") {
		t.Error("substituted symbol missing from output")
	}
	if got := len(strings.Split(strings.TrimRight(out, "\n"), "\n")); got != f.Height() {
		t.Errorf("rendered %d rows, want %d", got, f.Height())
	}
}

func TestPrintAddressesCursor(t *testing.T) {
	f, err := LoadFont(SizeSmall)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	p := NewPrinter(f, nil, Position{Row: 4, Col: 10}, '*')
	p.SetOutput(&buf)
	p.Print("OK")

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[s") || !strings.HasSuffix(out, "\x1b[u") {
		t.Error("cursor not saved and restored")
	}
	if !strings.Contains(out, "\x1b[4;10H") {
		t.Error("first row not addressed at the printer position")
	}
	if !strings.Contains(out, "\x1b[6;10H") {
		t.Error("later rows not addressed below the first")
	}
}
