package glyph

import (
	"math"
	"reflect"
	"testing"

	"namebounce/internal/entity"
)

const eps = 1e-9

func litCells(s string) int {
	n := 0
	for _, r := range s {
		g, ok := Lookup(r)
		if !ok {
			continue
		}
		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				if g.Lit(row, col) {
					n++
				}
			}
		}
	}
	return n
}

func bounds(px []entity.Pixel) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range px {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X+p.Size)
		maxY = math.Max(maxY, p.Y+p.Size)
	}
	return
}

func TestAlphabetShapes(t *testing.T) {
	for _, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.,!?-:'\"&/()+=#" {
		g, ok := Lookup(r)
		if !ok {
			t.Errorf("missing glyph %q", r)
			continue
		}
		if g.Height() != Rows {
			t.Errorf("glyph %q has %d rows, want %d", r, g.Height(), Rows)
		}
		if g.Width() == 0 || litCells(string(r)) == 0 {
			t.Errorf("glyph %q is empty", r)
		}
	}
	if _, ok := Lookup(' '); ok {
		t.Error("space must not have a glyph")
	}
	if _, ok := Lookup('a'); ok {
		t.Error("lowercase runes are not part of the alphabet")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"HELLO", true},
		{"hello world", true},
		{"A+B=C!", true},
		{"HELLO~", false},
		{"CAFÉ", false},
		{"   ", true},
	}
	for _, tt := range tests {
		if got := Validate(tt.text); got != tt.want {
			t.Errorf("Validate(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestPrepare(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"", ""},
		{"hello", "HELLO"},
		{"  padded  ", "  PADDED  "},
		{"a~b", "A B"},
		{"tab\there", "TAB HERE"},
	}
	for _, tt := range tests {
		if got := Prepare(tt.text); got != tt.want {
			t.Errorf("Prepare(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestRasterizeFillsEightyPercent(t *testing.T) {
	l := Rasterize("AB", "CD", 1000, 1000, 8, 4)

	// "AB" is 5+1+5 cells wide at 8 units per cell.
	wantFit := 800.0 / 88.0
	if math.Abs(l.Fit-wantFit) > eps {
		t.Fatalf("Fit = %v, want %v", l.Fit, wantFit)
	}
	if math.Abs(l.Line1Width-800) > eps {
		t.Errorf("Line1Width = %v, want 800", l.Line1Width)
	}
	if math.Abs(l.Line2Width-400) > eps {
		t.Errorf("Line2Width = %v, want 400", l.Line2Width)
	}
	if got, want := len(l.Pixels), litCells("ABCD"); got != want {
		t.Errorf("got %d pixels, want %d", got, want)
	}

	line1 := l.Pixels[:litCells("AB")]
	minX, minY, maxX, _ := bounds(line1)
	if math.Abs(minX-100) > eps || math.Abs(maxX-900) > eps {
		t.Errorf("line 1 spans [%v, %v], want [100, 900]", minX, maxX)
	}
	if math.Abs(minY-l.Top) > eps {
		t.Errorf("line 1 top = %v, want %v", minY, l.Top)
	}

	line2 := l.Pixels[litCells("AB"):]
	minX, minY, maxX, _ = bounds(line2)
	if math.Abs((maxX-minX)-l.Line2Width) > eps {
		t.Errorf("line 2 bbox width = %v, want %v", maxX-minX, l.Line2Width)
	}
	if math.Abs(minY-(l.Top+l.Line1Height+l.Gap)) > eps {
		t.Errorf("line 2 top = %v", minY)
	}
}

func TestRasterizeVerticalCentering(t *testing.T) {
	l := Rasterize("AB", "CD", 1000, 600, 8, 4)
	total := 5*l.LargeSize + 5*l.LargeSize + 5*l.SmallSize
	if math.Abs(l.Height()-total) > eps {
		t.Errorf("Height = %v, want %v", l.Height(), total)
	}
	if math.Abs(l.Top-(600-total)/2) > eps {
		t.Errorf("Top = %v, want %v", l.Top, (600-total)/2)
	}
	if math.Abs(l.LargeSize-2*l.SmallSize) > eps {
		t.Errorf("sizes lost their ratio: %v vs %v", l.LargeSize, l.SmallSize)
	}
}

func TestRasterizeWiderSecondLine(t *testing.T) {
	l := Rasterize("HI", "PROJECTS CONSULTANCY LIMITED", 1200, 800, 8, 4)
	if math.Abs(l.Line2Width-960) > eps {
		t.Errorf("Line2Width = %v, want 960", l.Line2Width)
	}
	if l.Line1Width >= l.Line2Width {
		t.Errorf("line 1 (%v) should be narrower than line 2 (%v)", l.Line1Width, l.Line2Width)
	}

	line2 := l.Pixels[litCells("HI"):]
	minX, _, maxX, _ := bounds(line2)
	if math.Abs(minX-120) > eps || math.Abs(maxX-1080) > eps {
		t.Errorf("line 2 spans [%v, %v], want [120, 1080]", minX, maxX)
	}
}

func TestRasterizeSkipsUnknownRunes(t *testing.T) {
	want := Rasterize("AB", "CD", 800, 600, 8, 4)
	got := Rasterize("A~B", "CéD", 800, 600, 8, 4)
	if !reflect.DeepEqual(got, want) {
		t.Error("unknown runes changed the layout")
	}
}

func TestRasterizeIgnoresEdgeSpacesOnSecondLine(t *testing.T) {
	want := Rasterize("AB", "CD", 1000, 1000, 8, 4)
	for _, line2 := range []string{"CD ", " CD", "  CD  ", Prepare("CD™"), "~ CD ~"} {
		t.Run(line2, func(t *testing.T) {
			got := Rasterize("AB", line2, 1000, 1000, 8, 4)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Line2Width = %v, want %v", got.Line2Width, want.Line2Width)
			}
		})
	}
}

func TestRasterizeSecondLineCentered(t *testing.T) {
	l := Rasterize("AB", Prepare("ACME INC™"), 1000, 1000, 8, 4)
	minX, _, maxX, _ := bounds(l.Pixels[litCells("AB"):])
	if math.Abs(maxX-minX-l.Line2Width) > eps {
		t.Errorf("line 2 spans %v, measured %v", maxX-minX, l.Line2Width)
	}
	if math.Abs(minX-(1000-maxX)) > eps {
		t.Errorf("line 2 spans [%v, %v], not centered", minX, maxX)
	}
	if math.Abs(l.Line2Width-800) > eps {
		t.Errorf("Line2Width = %v, want 800", l.Line2Width)
	}
}

func TestRasterizeSpaceHasNoWidthOnFirstLine(t *testing.T) {
	want := Rasterize("AB", "", 800, 600, 8, 4)
	got := Rasterize("A B", "", 800, 600, 8, 4)
	if !reflect.DeepEqual(got, want) {
		t.Error("space on the first line should be a zero-width advance")
	}
}

func TestRasterizeDegenerate(t *testing.T) {
	tests := []struct {
		name          string
		line1, line2  string
		width, height float64
	}{
		{"both empty", "", "", 1000, 1000},
		{"only unknown", "~~", "  ", 1000, 1000},
		{"zero canvas", "AB", "CD", 0, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Rasterize(tt.line1, tt.line2, tt.width, tt.height, 8, 4)
			if len(l.Pixels) != 0 {
				t.Errorf("got %d pixels, want none", len(l.Pixels))
			}
			if l.Fit != 0 || math.IsNaN(l.Top) || math.IsInf(l.Top, 0) {
				t.Errorf("non-finite or non-zero layout: %+v", l)
			}
		})
	}
}

func TestRasterizeEmptySecondLine(t *testing.T) {
	l := Rasterize("AB", "", 1000, 1000, 8, 4)
	if len(l.Pixels) != litCells("AB") {
		t.Errorf("got %d pixels, want %d", len(l.Pixels), litCells("AB"))
	}
	if l.Line2Width != 0 {
		t.Errorf("Line2Width = %v, want 0", l.Line2Width)
	}
}

func TestRasterizeIdempotent(t *testing.T) {
	a := Rasterize("CHAITANYA", "PROJECTS CONSULTANCY LIMITED", 1366, 768, 8*0.768, 4*0.768)
	b := Rasterize("CHAITANYA", "PROJECTS CONSULTANCY LIMITED", 1366, 768, 8*0.768, 4*0.768)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("rasterizing the same input twice gave different layouts")
	}
	for _, p := range a.Pixels {
		if p.Hit {
			t.Fatal("fresh pixels must not be hit")
		}
	}
}
