// Package termplot draws response curves as text for terminals.
package termplot

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"golang.org/x/term"

	"github.com/cwbudde/algo-eqscope/dsp/plot"
)

// Fallback size used when the output is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

const labelWidth = 6

// Size returns the size of the terminal behind fd, or the default size when
// fd is not a terminal.
func Size(fd int) (width, height int) {
	if !term.IsTerminal(fd) {
		return DefaultWidth, DefaultHeight
	}

	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}

	return w, h
}

// Columns returns how many data columns fit in a terminal width after the
// level labels.
func Columns(width int) int {
	return max(width-labelWidth-1, 1)
}

// Plot writes values (one per column, in dB) as a height-row chart spanning
// [minDB, maxDB]. Rows carrying a gain grid line are labelled; the 0 dB row
// is drawn as a dashed line. A frequency axis is written below the chart.
func Plot(w io.Writer, values []float64, minDB, maxDB float64, height int) error {
	if height < 3 || len(values) == 0 || !(maxDB > minDB) {
		return fmt.Errorf("termplot: cannot plot %d values into %d rows over [%v, %v]", len(values), height, minDB, maxDB)
	}

	rows := make([][]rune, height)
	for r := range rows {
		rows[r] = []rune(strings.Repeat(" ", len(values)))
	}

	zero := rowOf(0, minDB, maxDB, height)
	if zero >= 0 && zero < height {
		for c := range rows[zero] {
			rows[zero][c] = '-'
		}
	}

	for c, v := range values {
		if math.IsNaN(v) {
			continue
		}

		r := min(max(rowOf(v, minDB, maxDB, height), 0), height-1)
		rows[r][c] = '*'
	}

	labels := map[int]string{}
	for _, g := range []float64{minDB, minDB / 2, 0, maxDB / 2, maxDB} {
		labels[rowOf(g, minDB, maxDB, height)] = plot.GainLabel(g)
	}

	bw := bufio.NewWriter(w)

	for r, row := range rows {
		if _, err := fmt.Fprintf(bw, "%*s|%s\n", labelWidth, labels[r], string(row)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(bw, "%*s+%s\n%s\n", labelWidth, "", strings.Repeat("-", len(values)), axis(len(values))); err != nil {
		return err
	}

	return bw.Flush()
}

func rowOf(db, minDB, maxDB float64, height int) int {
	return int(math.Round((maxDB - db) / (maxDB - minDB) * float64(height-1)))
}

// axis places the grid frequency labels under their columns.
func axis(columns int) string {
	line := []rune(strings.Repeat(" ", labelWidth+1+columns))

	next := 0
	for _, m := range plot.FrequencyMarks(plot.Rect{W: float64(columns)}) {
		col := labelWidth + 1 + int(math.Round(m.Pos))
		col = min(col, len(line)-len(m.Label))

		if col < next || col < 0 {
			continue
		}

		copy(line[col:], []rune(m.Label))
		next = col + len(m.Label) + 1
	}

	return strings.TrimRight(string(line), " ")
}
