package plot

import (
	"math"
	"strconv"

	"github.com/cwbudde/algo-eqscope/dsp/core"
)

// Mark is a grid line position with its label. Pos is an x coordinate for
// frequency marks and a y coordinate for gain marks.
type Mark struct {
	Value float64
	Pos   float64
	Label string
}

var (
	gridFrequencies = []float64{20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000}
	gridGains       = []float64{-24, -12, 0, 12, 24}
)

// FrequencyMarks returns the vertical grid lines of the frequency axis.
func FrequencyMarks(bounds Rect) []Mark {
	marks := make([]Mark, len(gridFrequencies))
	for i, f := range gridFrequencies {
		norm := core.MapFromLog10(f, MinFrequency, MaxFrequency)
		marks[i] = Mark{
			Value: f,
			Pos:   bounds.X + bounds.W*norm,
			Label: FrequencyLabel(f),
		}
	}

	return marks
}

// GainMarks returns the horizontal grid lines of the response axis.
func GainMarks(bounds Rect) []Mark {
	marks := make([]Mark, len(gridGains))
	for i, g := range gridGains {
		marks[i] = Mark{
			Value: g,
			Pos:   core.MapLinear(g, ResponseMinDB, ResponseMaxDB, bounds.Bottom(), bounds.Top()),
			Label: GainLabel(g),
		}
	}

	return marks
}

// AnalyzerMarks returns the gain grid lines relabelled with the analyzer
// level found at the same height, for an analyzer axis [floorDB, CeilingDB].
func AnalyzerMarks(bounds Rect, floorDB float64) []Mark {
	marks := GainMarks(bounds)
	for i := range marks {
		db := core.MapLinear(marks[i].Pos, bounds.Bottom(), bounds.Top(), floorDB, CeilingDB)
		marks[i].Value = db
		marks[i].Label = strconv.FormatFloat(math.Round(db), 'f', -1, 64)
	}

	return marks
}

// FrequencyLabel formats f as "50Hz" or "2kHz".
func FrequencyLabel(f float64) string {
	if f > 999 {
		return strconv.FormatFloat(f/1000, 'f', -1, 64) + "kHz"
	}

	return strconv.FormatFloat(f, 'f', -1, 64) + "Hz"
}

// GainLabel formats g with an explicit sign for boosts: "+12", "0", "-24".
func GainLabel(g float64) string {
	s := strconv.FormatFloat(g, 'f', -1, 64)
	if g > 0 {
		return "+" + s
	}

	return s
}
