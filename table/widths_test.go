package table

import (
	"errors"
	"math"
	"testing"

	"github.com/tsawler/quire/model"
)

func TestSetWidths(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		widths  []float64
		want    []float64
		wantErr error
	}{
		{"already percent", 3, []float64{30, 40, 30}, []float64{30, 40, 30}, nil},
		{"relative weights", 3, []float64{1, 2, 1}, []float64{25, 50, 25}, nil},
		{"thirds", 3, []float64{1, 1, 1}, []float64{33.3333, 33.3333, 33.3333}, nil},
		{"zero column allowed", 2, []float64{0, 5}, []float64{0, 100}, nil},
		{"wrong count", 3, []float64{50, 50}, nil, ErrWidthCount},
		{"negative", 2, []float64{-1, 2}, nil, ErrInvalidWidths},
		{"zero sum", 2, []float64{0, 0}, nil, ErrInvalidWidths},
		{"not a number", 2, []float64{math.NaN(), 1}, nil, ErrInvalidWidths},
		{"infinite", 2, []float64{math.Inf(1), 1}, nil, ErrInvalidWidths},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := mustNew(t, tt.columns)
			before := tbl.Widths()

			err := tbl.SetWidths(tt.widths)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				assertWidths(t, tbl.Widths(), before)
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			assertWidths(t, tbl.Widths(), tt.want)
		})
	}
}

func TestSetIntWidths(t *testing.T) {
	tbl := mustNew(t, 4)
	if err := tbl.SetIntWidths([]int{1, 1, 1, 1}); err != nil {
		t.Fatal(err)
	}
	assertWidths(t, tbl.Widths(), []float64{25, 25, 25, 25})
}

func TestWidthsReturnsCopy(t *testing.T) {
	tbl := mustNew(t, 2)
	w := tbl.Widths()
	w[0] = 99
	if tbl.Widths()[0] == 99 {
		t.Error("Widths exposed internal state")
	}
}

func TestSetWidthPercentage(t *testing.T) {
	tests := []struct {
		name    string
		pct     float64
		wantErr bool
	}{
		{"full", 100, false},
		{"half", 50, false},
		{"zero", 0, true},
		{"negative", -10, true},
		{"over full", 100.5, true},
		{"not a number", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := mustNew(t, 1)
			tbl.SetAbsoluteWidth(300)
			err := tbl.SetWidthPercentage(tt.pct)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPercentage) {
					t.Errorf("error = %v, want ErrInvalidPercentage", err)
				}
				if tbl.WidthPercentage() != DefaultWidthPercentage {
					t.Errorf("WidthPercentage() = %f after rejection", tbl.WidthPercentage())
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if tbl.WidthPercentage() != tt.pct {
				t.Errorf("WidthPercentage() = %f, want %f", tbl.WidthPercentage(), tt.pct)
			}
			if _, ok := tbl.AbsoluteWidth(); ok {
				t.Error("setting a percentage should clear the absolute width")
			}
		})
	}
}

func TestSetAbsoluteWidth(t *testing.T) {
	tbl := mustNew(t, 1)
	tbl.SetAbsoluteWidth(250)
	if w, ok := tbl.AbsoluteWidth(); !ok || w != 250 {
		t.Errorf("AbsoluteWidth() = %f, %v, want 250, true", w, ok)
	}
	tbl.SetAbsoluteWidth(-1)
	if _, ok := tbl.AbsoluteWidth(); ok {
		t.Error("negative absolute width should unset it")
	}
}

func TestSetAlignment(t *testing.T) {
	tests := []struct {
		in   model.TextAlignment
		want model.TextAlignment
	}{
		{model.AlignLeft, model.AlignLeft},
		{model.AlignRight, model.AlignRight},
		{model.AlignCenter, model.AlignCenter},
		{model.AlignJustify, model.AlignCenter},
		{model.AlignUndefined, model.AlignCenter},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			tbl := mustNew(t, 1)
			tbl.SetAlignment(model.AlignLeft)
			tbl.SetAlignment(tt.in)
			if tbl.Alignment() != tt.want {
				t.Errorf("Alignment() = %v, want %v", tbl.Alignment(), tt.want)
			}
		})
	}

	tbl := mustNew(t, 1)
	tbl.SetAlignmentName("right")
	if tbl.Alignment() != model.AlignRight {
		t.Errorf("SetAlignmentName(right) gave %v", tbl.Alignment())
	}
}

func TestColumnBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		align    model.TextAlignment
		pct      float64
		absolute float64
		want     []float64
	}{
		{"center default", model.AlignCenter, 80, 0, []float64{20, 100, 180}},
		{"left", model.AlignLeft, 80, 0, []float64{0, 80, 160}},
		{"right", model.AlignRight, 80, 0, []float64{40, 120, 200}},
		{"full width", model.AlignCenter, 100, 0, []float64{0, 100, 200}},
		{"absolute overrides percentage", model.AlignCenter, 80, 100, []float64{50, 100, 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := mustNew(t, 2)
			tbl.SetAlignment(tt.align)
			if err := tbl.SetWidthPercentage(tt.pct); err != nil {
				t.Fatal(err)
			}
			tbl.SetAbsoluteWidth(tt.absolute)

			got := tbl.ColumnBoundaries(0, 200)
			if len(got) != len(tt.want) {
				t.Fatalf("ColumnBoundaries = %v, want %v", got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 0.0001 {
					t.Errorf("boundary %d = %f, want %f", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestColumnBoundariesUnevenWidths(t *testing.T) {
	tbl := mustNew(t, 3)
	if err := tbl.SetWidths([]float64{30, 40, 30}); err != nil {
		t.Fatal(err)
	}
	tbl.SetAlignment(model.AlignLeft)
	if err := tbl.SetWidthPercentage(100); err != nil {
		t.Fatal(err)
	}

	got := tbl.ColumnBoundaries(10, 100)
	want := []float64{10, 40, 80, 110}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 0.0001 {
			t.Errorf("boundary %d = %f, want %f", i, got[i], want[i])
		}
	}
}
