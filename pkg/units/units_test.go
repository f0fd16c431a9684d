package units

import (
	"math"
	"testing"

	"github.com/matzehuels/tikznet/pkg/errors"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		from, to string
		in, want float64
	}{
		{"mm", "cm", 10, 1},
		{"cm", "mm", 1, 10},
		{"cm", "cm", 2.5, 2.5},
		{"pt", "pt", 3, 3},
		{"px", "pt", 96, 72},
		{"pt", "cm", 72, 2.54},
		{"px", "cm", 96, 2.54},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			c, err := New(tt.from, tt.to)
			if err != nil {
				t.Fatalf("New(%q, %q) error: %v", tt.from, tt.to, err)
			}
			if got := c.Convert(tt.in); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Convert(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	values := []float64{0, 1, 0.35, 12.7, -3, 1e6}
	for _, a := range All {
		for _, b := range All {
			ab := MustNew(string(a), string(b))
			ba := MustNew(string(b), string(a))
			for _, v := range values {
				if got := ba.Convert(ab.Convert(v)); math.Abs(got-v) > 1e-9*math.Max(1, math.Abs(v)) {
					t.Errorf("%s then %s on %v = %v", ab, ba, v, got)
				}
			}
		}
	}
}

func TestUnknownUnit(t *testing.T) {
	for _, pair := range [][2]string{{"mm", "m"}, {"in", "cm"}, {"", "pt"}} {
		_, err := New(pair[0], pair[1])
		if !errors.Is(err, errors.ErrCodeConfig) {
			t.Errorf("New(%q, %q) error = %v, want CONFIG", pair[0], pair[1], err)
		}
	}
}

func TestParseSetting(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    Setting
		wantErr bool
	}{
		{"nil", nil, Setting{Centimeter, Point}, false},
		{"single", "mm", Setting{Millimeter, Millimeter}, false},
		{"array pair", [2]string{"px", "pt"}, Setting{Pixel, Point}, false},
		{"slice pair", []string{"cm", "mm"}, Setting{Centimeter, Millimeter}, false},
		{"any pair", []any{"mm", "px"}, Setting{Millimeter, Pixel}, false},
		{"unknown", "m", Setting{}, true},
		{"too long", []string{"cm", "pt", "mm"}, Setting{}, true},
		{"number", 3, Setting{}, true},
		{"mixed", []any{"cm", 2}, Setting{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSetting(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSetting(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSetting(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestSettingConverters(t *testing.T) {
	s := Setting{Size: Millimeter, Width: Pixel}
	if got := s.ToCM().Convert(25); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("ToCM().Convert(25) = %v, want 2.5", got)
	}
	if got := s.ToPT().Convert(4); math.Abs(got-3) > 1e-12 {
		t.Errorf("ToPT().Convert(4) = %v, want 3", got)
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		in     any
		want   float64
		wantOK bool
	}{
		{3, 3, true},
		{int64(-2), -2, true},
		{uint8(7), 7, true},
		{float32(0.5), 0.5, true},
		{1.25, 1.25, true},
		{true, 0, false},
		{"1", 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := Float(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Float(%#v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPair(t *testing.T) {
	tests := []struct {
		in     any
		a, b   float64
		wantOK bool
	}{
		{[2]float64{8, 4}, 8, 4, true},
		{[]any{8, 4.5}, 8, 4.5, true},
		{[]int{1, 2}, 1, 2, true},
		{[]float64{1}, 0, 0, false},
		{[]any{"a", 1}, 0, 0, false},
		{6.0, 0, 0, false},
	}
	for _, tt := range tests {
		a, b, ok := Pair(tt.in)
		if ok != tt.wantOK || (ok && (a != tt.a || b != tt.b)) {
			t.Errorf("Pair(%#v) = %v, %v, %v; want %v, %v, %v", tt.in, a, b, ok, tt.a, tt.b, tt.wantOK)
		}
	}
}
