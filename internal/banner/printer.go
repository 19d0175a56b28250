package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Position is a one-based terminal cell position.
type Position struct {
	Row int
	Col int
}

// Printer renders banner text with a fixed font, style, symbol, and
// screen position.
type Printer struct {
	out    io.Writer
	style  *color.Color
	pos    Position
	symbol rune
	font   *Font
}

// NewPrinter creates a printer. A zero symbol defaults to '*'; a nil
// style renders unstyled.
func NewPrinter(font *Font, style *color.Color, pos Position, symbol rune) *Printer {
	if symbol == 0 {
		symbol = '*'
	}
	return &Printer{
		out:    color.Output,
		style:  style,
		pos:    pos,
		symbol: symbol,
		font:   font,
	}
}

// SetOutput redirects output, mainly for tests.
func (p *Printer) SetOutput(w io.Writer) {
	p.out = w
}

// lines lays the text out row by row, substituting the pattern symbol.
func (p *Printer) lines(text string) []string {
	height := 0
	for _, r := range text {
		if n := len(p.font.Glyph(r)); n > height {
			height = n
		}
	}

	out := make([]string, 0, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		for _, r := range text {
			pattern := p.font.Glyph(r)
			if row < len(pattern) {
				b.WriteString(strings.ReplaceAll(pattern[row], "*", string(p.symbol)))
			} else {
				b.WriteString(strings.Repeat(" ", len(pattern[0])))
			}
			b.WriteString(" ")
		}
		out = append(out, b.String())
	}
	return out
}

// Render writes the banner rows to w without any cursor addressing.
func (p *Printer) Render(w io.Writer, text string) {
	for _, line := range p.lines(text) {
		p.write(w, line)
		fmt.Fprintln(w)
	}
}

// Print renders the banner at the printer's screen position, saving
// and restoring the caller's cursor around it.
func (p *Printer) Print(text string) {
	fmt.Fprint(p.out, "\x1b[s")
	for i, line := range p.lines(text) {
		fmt.Fprintf(p.out, "\x1b[%d;%dH", p.pos.Row+i, p.pos.Col)
		p.write(p.out, line)
	}
	fmt.Fprint(p.out, "\x1b[u")
}

func (p *Printer) write(w io.Writer, line string) {
	if p.style != nil {
		p.style.Fprint(w, line)
		return
	}
	fmt.Fprint(w, line)
}

// Print is the one-shot form: load the font, render at position.
func Print(text string, style *color.Color, pos Position, symbol rune, size Size) error {
	font, err := LoadFont(size)
	if err != nil {
		return err
	}
	NewPrinter(font, style, pos, symbol).Print(text)
	return nil
}
