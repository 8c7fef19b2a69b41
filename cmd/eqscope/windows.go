package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-eqscope/dsp/window"
)

func newWindowsCmd(c *cli) *cobra.Command {
	var (
		size     int
		periodic bool
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "windows [window-name ...]",
		Short: "Print spectral properties of the analyzer window functions",
		Long: `Print spectral properties of the analyzer window functions.

Without arguments every known window is listed. Bin widths use the
configured sample rate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if list {
				for _, t := range window.Types() {
					if _, err := fmt.Fprintln(out, t); err != nil {
						return err
					}
				}

				return nil
			}

			if size < 2 {
				return fmt.Errorf("--size must be at least 2, got %d", size)
			}

			types := window.Types()
			if len(args) > 0 {
				types = types[:0:0]

				for _, name := range args {
					t, err := window.Parse(name)
					if err != nil {
						return err
					}

					types = append(types, t)
				}
			}

			var opts []window.Option
			if periodic {
				opts = append(opts, window.WithPeriodic())
			}

			return printWindows(out, types, size, c.cfg.Audio.SampleRate, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&size, "size", 2048, "window length in samples")
	f.BoolVar(&periodic, "periodic", false, "use periodic (FFT) form instead of symmetric")
	f.BoolVar(&list, "list", false, "list available window names")

	return cmd
}

func printWindows(w io.Writer, types []window.Type, size int, sampleRate float64, opts []window.Option) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tSidelobe [dB]\tScallop [dB]\tBin [Hz]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-------------\t------------\t--------\n")

	for _, t := range types {
		coeffs := window.Generate(t, size, opts...)

		cg, err := window.CoherentGain(coeffs)
		if err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}

		enbw, err := window.EquivalentNoiseBandwidth(coeffs)
		if err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.1f\t%.2f\t%.2f\n",
			t,
			size,
			cg,
			enbw,
			window.Info(t).HighestSidelobe,
			scallopLoss(coeffs),
			sampleRate/float64(size),
		)
	}

	return tw.Flush()
}

// scallopLoss is the gain in dB of a tone halfway between two bins relative
// to one centred on a bin.
func scallopLoss(coeffs []float64) float64 {
	var re, im, sum float64

	n := float64(len(coeffs))
	for i, c := range coeffs {
		phi := math.Pi * float64(i) / n
		re += c * math.Cos(phi)
		im -= c * math.Sin(phi)
		sum += c
	}

	if sum == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(math.Hypot(re, im)/sum)
}
