// Package banner renders text as large glyph-art banners.
//
// It is pure lookup and formatting: fonts are glyph pattern tables and
// the printer owns no mutable device state.
package banner

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Size selects one of the embedded fonts.
type Size string

// Embedded font sizes.
const (
	SizeSmall Size = "small"
	SizeBig   Size = "big"
)

//go:embed fonts/*.yaml
var fontFS embed.FS

// Font is a table of glyph patterns. Pattern rows use '*' for the
// cells the printer substitutes with its symbol.
type Font struct {
	Name   string              `yaml:"name"`
	Glyphs map[string][]string `yaml:"glyphs"`
}

var (
	fontMu    sync.Mutex
	fontCache = make(map[Size]*Font)
)

// LoadFont returns an embedded font, parsing it once and caching it.
func LoadFont(size Size) (*Font, error) {
	fontMu.Lock()
	defer fontMu.Unlock()

	if f, ok := fontCache[size]; ok {
		return f, nil
	}
	data, err := fontFS.ReadFile(fmt.Sprintf("fonts/%s.yaml", size))
	if err != nil {
		return nil, fmt.Errorf("unknown font %q: %w", size, err)
	}
	f, err := ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", size, err)
	}
	fontCache[size] = f
	return f, nil
}

// ParseFont parses a YAML font document.
func ParseFont(data []byte) (*Font, error) {
	var f Font
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	if len(f.Glyphs) == 0 {
		return nil, errors.New("font has no glyphs")
	}
	return &f, nil
}

// Height returns the tallest glyph's row count.
func (f *Font) Height() int {
	height := 0
	for _, rows := range f.Glyphs {
		if len(rows) > height {
			height = len(rows)
		}
	}
	return height
}

// Glyph returns the pattern for a character. Lookup is case
// insensitive; an unknown character yields question-mark rows.
func (f *Font) Glyph(r rune) []string {
	if rows, ok := f.Glyphs[strings.ToUpper(string(r))]; ok {
		return rows
	}
	rows := make([]string, f.Height())
	for i := range rows {
		rows[i] = "?"
	}
	return rows
}
