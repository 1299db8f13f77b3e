package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
)

// models lists the accepted model names and how many values each takes.
var models = map[string]int{
	"rgb":  3,
	"hex":  1,
	"int":  1,
	"cmyk": 4,
	"hsl":  3,
	"hsv":  3,
}

func newConvertCmd() *cobra.Command {
	var shorthand bool

	cmd := &cobra.Command{
		Use:   "convert <from> <to> <values...>",
		Short: "Convert a single color between models",
		Long: `Convert a single color between rgb, hex, int, cmyk, hsl and hsv.

Conversions between two non-RGB models go through RGB, so they inherit its
rounding (channels from cmyk, hsl and hsv are rounded up).`,
		Example: `  color-mcp convert rgb hex 255 128 0
  color-mcp convert hex hsl ff8000
  color-mcp convert cmyk rgb 0 0 0 1
  color-mcp convert hex rgb --shorthand f80`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := strings.ToLower(args[0]), strings.ToLower(args[1])
			if _, ok := models[to]; !ok {
				return fmt.Errorf("unknown target model %q", args[1])
			}

			c, err := parseColor(from, args[2:], shorthand)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatColor(to, c))
			return nil
		},
	}

	cmd.Flags().BoolVar(&shorthand, "shorthand", false, "expand 3-digit hex input CSS-style (f80 -> ff8800)")
	return cmd
}

// parseColor validates values for the given model and converts them to RGB.
func parseColor(model string, values []string, shorthand bool) (colorconv.RGB, error) {
	n, ok := models[model]
	if !ok {
		return colorconv.RGB{}, fmt.Errorf("unknown source model %q", model)
	}
	if len(values) != n {
		return colorconv.RGB{}, fmt.Errorf("%s takes %d value(s), got %d", model, n, len(values))
	}

	switch model {
	case "hex":
		hex := values[0]
		if shorthand {
			expanded, err := colorconv.ExpandShortHex(hex)
			if err != nil {
				return colorconv.RGB{}, err
			}
			hex = expanded
		}
		return colorconv.HexToRGB(hex)

	case "int":
		v, err := strconv.ParseUint(values[0], 0, 32)
		if err != nil {
			return colorconv.RGB{}, fmt.Errorf("invalid packed value %q: %w", values[0], err)
		}
		return colorconv.IntToRGB(uint32(v)), nil

	case "rgb":
		ch := make([]int, 3)
		for i, s := range values {
			v, err := strconv.Atoi(s)
			if err != nil {
				return colorconv.RGB{}, fmt.Errorf("invalid channel %q: %w", s, err)
			}
			ch[i] = v
		}
		return colorconv.NewRGB(ch[0], ch[1], ch[2])
	}

	f, err := parseFloats(values)
	if err != nil {
		return colorconv.RGB{}, err
	}

	switch model {
	case "cmyk":
		c, err := colorconv.NewCMYK(f[0], f[1], f[2], f[3])
		if err != nil {
			return colorconv.RGB{}, err
		}
		return colorconv.CMYKToRGB(c), nil
	case "hsl":
		c, err := colorconv.NewHSL(f[0], f[1], f[2])
		if err != nil {
			return colorconv.RGB{}, err
		}
		return colorconv.HSLToRGB(c), nil
	default:
		c, err := colorconv.NewHSV(f[0], f[1], f[2])
		if err != nil {
			return colorconv.RGB{}, err
		}
		return colorconv.HSVToRGB(c), nil
	}
}

func parseFloats(values []string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, s := range values {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

// formatColor renders c in the target model.
func formatColor(model string, c colorconv.RGB) string {
	switch model {
	case "hex":
		return colorconv.RGBToHex(c)
	case "int":
		return strconv.FormatUint(uint64(colorconv.RGBToInt(c)), 10)
	case "cmyk":
		v := colorconv.RGBToCMYK(c)
		return fmt.Sprintf("%.4f %.4f %.4f %.4f", v.C, v.M, v.Y, v.K)
	case "hsl":
		v := colorconv.RGBToHSL(c)
		return fmt.Sprintf("%.2f %.4f %.4f", v.H, v.S, v.L)
	case "hsv":
		v := colorconv.RGBToHSV(c)
		return fmt.Sprintf("%.2f %.4f %.4f", v.H, v.S, v.V)
	default:
		return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
	}
}
