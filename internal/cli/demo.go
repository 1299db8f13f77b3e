package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Pack and unpack a sample color",
		Long:  `Packs RGB(170, 85, 170) into a 24-bit integer and unpacks 11,163,050 back into RGB.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			sample := colorconv.RGB{R: 170, G: 85, B: 170}
			fmt.Fprintf(out, "R: %d\tG: %d\tB: %d\t%s\n",
				sample.R, sample.G, sample.B, colorconv.FormatInt(colorconv.RGBToInt(sample)))

			const packed = 11163050
			c := colorconv.IntToRGB(packed)
			fmt.Fprintf(out, "%s\tR: %d\tG: %d\tB: %d\n", colorconv.FormatInt(packed), c.R, c.G, c.B)
			return nil
		},
	}
}
