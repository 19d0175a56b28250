package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dshills/virtkbd/internal/banner"
)

// bannerColors maps flag values to console styles.
var bannerColors = map[string]*color.Color{
	"red":     color.New(color.FgRed),
	"green":   color.New(color.FgGreen),
	"yellow":  color.New(color.FgYellow),
	"blue":    color.New(color.FgBlue),
	"magenta": color.New(color.FgMagenta),
	"cyan":    color.New(color.FgCyan),
}

func bannerCmd() *cobra.Command {
	var (
		font      string
		colorName string
		symbol    string
		row, col  int
	)

	cmd := &cobra.Command{
		Use:   "banner <text>",
		Short: "Render text as a glyph-art banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := banner.LoadFont(banner.Size(font))
			if err != nil {
				return err
			}

			var style *color.Color
			if colorName != "" {
				style = bannerColors[strings.ToLower(colorName)]
				if style == nil {
					return fmt.Errorf("unknown color %q", colorName)
				}
			}

			sym := '*'
			if symbol != "" {
				sym = []rune(symbol)[0]
			}

			p := banner.NewPrinter(f, style, banner.Position{Row: row, Col: col}, sym)
			if row > 0 && col > 0 {
				p.Print(args[0])
				fmt.Fprintln(color.Output)
				return nil
			}
			p.Render(color.Output, args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&font, "font", string(banner.SizeBig), "font size (big, small)")
	cmd.Flags().StringVar(&colorName, "color", "", "banner color (red, green, yellow, blue, magenta, cyan)")
	cmd.Flags().StringVar(&symbol, "symbol", "*", "glyph fill symbol")
	cmd.Flags().IntVar(&row, "row", 0, "screen row to print at (with --col)")
	cmd.Flags().IntVar(&col, "col", 0, "screen column to print at (with --row)")
	return cmd
}
