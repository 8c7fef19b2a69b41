package plot

import (
	"math"
	"testing"
)

func TestFrequencyMarks(t *testing.T) {
	bounds := Rect{X: 10, W: 300, H: 100}
	marks := FrequencyMarks(bounds)

	if len(marks) != 10 {
		t.Fatalf("len = %d, want 10", len(marks))
	}
	if marks[0].Pos != 10 || marks[0].Label != "20Hz" {
		t.Fatalf("first mark = %+v", marks[0])
	}
	if last := marks[len(marks)-1]; math.Abs(last.Pos-310) > 1e-9 || last.Label != "20kHz" {
		t.Fatalf("last mark = %+v", last)
	}
	// 200 Hz is one decade above 20 Hz: a third of the way across.
	if math.Abs(marks[3].Pos-110) > 1e-9 {
		t.Fatalf("200 Hz at %v, want 110", marks[3].Pos)
	}
}

func TestGainMarks(t *testing.T) {
	marks := GainMarks(Rect{Y: 0, W: 10, H: 48})
	want := []struct {
		pos   float64
		label string
	}{
		{48, "-24"}, {36, "-12"}, {24, "0"}, {12, "+12"}, {0, "+24"},
	}
	for i, m := range marks {
		if m.Pos != want[i].pos || m.Label != want[i].label {
			t.Fatalf("mark %d = %+v, want %+v", i, m, want[i])
		}
	}
}

func TestAnalyzerMarks(t *testing.T) {
	marks := AnalyzerMarks(Rect{H: 54}, -48)
	if marks[0].Label != "-48" || marks[len(marks)-1].Label != "6" {
		t.Fatalf("edges = %q, %q", marks[0].Label, marks[len(marks)-1].Label)
	}
	if marks[2].Label != "-21" {
		t.Fatalf("centre = %q, want -21", marks[2].Label)
	}
}

func TestLabels(t *testing.T) {
	tests := map[float64]string{20: "20Hz", 500: "500Hz", 1000: "1kHz", 2500: "2.5kHz", 20000: "20kHz"}
	for f, want := range tests {
		if got := FrequencyLabel(f); got != want {
			t.Errorf("FrequencyLabel(%v) = %q, want %q", f, got, want)
		}
	}
	if GainLabel(6) != "+6" || GainLabel(-6) != "-6" || GainLabel(0) != "0" {
		t.Fatal("GainLabel sign formatting")
	}
}
