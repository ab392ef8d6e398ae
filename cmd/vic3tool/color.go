package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Faultbox/vicky3-mod/pkg/color"
)

var colorCmd = &cobra.Command{
	Use:   "color <value>",
	Short: "Decode a color and show it in every variant",
	Example: `  vic3tool color "hsv360 { 200 100 50 }"
  vic3tool color 8 84 160
  vic3tool color "#0854a0"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColorArg(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return describeColor(cmd.OutOrStdout(), c, encodeOptions())
	},
}

// parseColorArg accepts script text or a #rrggbb hex string.
func parseColorArg(text string) (color.Color, error) {
	if strings.HasPrefix(text, "#") {
		return color.ParseHex(text)
	}
	return color.Parse(text)
}

func describeColor(w io.Writer, c color.Color, opts color.EncodeOptions) error {
	if _, err := fmt.Fprintf(w, "variant  %s\n", c.Variant()); err != nil {
		return err
	}
	for _, v := range []color.Variant{color.RGBIntVariant, color.RGBFloatVariant, color.HSVIntVariant, color.HSVFloatVariant} {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", v, c.Convert(v).Format(opts)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "hex      %s\n", c.Hex())
	return err
}
