package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-eqscope/dsp/core"
	"github.com/cwbudde/algo-eqscope/dsp/plot"
	"github.com/cwbudde/algo-eqscope/internal/app"
	"github.com/cwbudde/algo-eqscope/internal/termplot"
)

var tableFrequencies = []float64{20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000}

func newResponseCmd(c *cli) *cobra.Command {
	var (
		table   bool
		assigns []string
		width   int
		height  int
	)

	cmd := &cobra.Command{
		Use:   "response",
		Short: "Plot the filter chain response in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := app.Build(c.cfg, nil, c.logger)
			if err != nil {
				return err
			}
			defer p.Close()

			if err := p.Apply(assigns); err != nil {
				return err
			}

			fs := c.cfg.Audio.SampleRate
			chain := p.Chain
			chain.Rebuild(p.Params.Settings(), fs)

			out := cmd.OutOrStdout()
			if table {
				nyquist := math.Nextafter(fs/2, 0)

				return writeTable(out, tableFrequencies, func(f float64) float64 {
					return core.GainToDB(chain.MagnitudeResponse(min(f, nyquist), fs), -100)
				})
			}

			w, h := termplot.Size(int(os.Stdout.Fd()))
			if width > 0 {
				w = width
			}
			if height > 0 {
				h = height
			}

			values := chain.ResponseDB(termplot.Columns(w), fs)

			return termplot.Plot(out, values, plot.ResponseMinDB, plot.ResponseMaxDB, max(h-3, 3))
		},
	}

	f := cmd.Flags()
	f.BoolVar(&table, "table", false, "print a frequency/level table instead of a plot")
	f.StringArrayVar(&assigns, "set", nil, "set a parameter, e.g. --set peak_gain=6 (repeatable)")
	f.IntVar(&width, "cols", 0, "plot width in characters (default: terminal width)")
	f.IntVar(&height, "rows", 0, "plot height in lines (default: terminal height)")

	return cmd
}

func writeTable(w io.Writer, freqs []float64, level func(float64) float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	if _, err := fmt.Fprintf(tw, "Frequency\tLevel [dB]\t\n"); err != nil {
		return err
	}

	for _, f := range freqs {
		if _, err := fmt.Fprintf(tw, "%s\t%+.2f\t\n", plot.FrequencyLabel(f), level(f)); err != nil {
			return err
		}
	}

	return tw.Flush()
}
