package bikecharts

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestMap(t *testing.T) {
	data := []struct {
		Value  float64
		DomMin float64
		DomMax float64
		RgMin  float64
		RgMax  float64
		Want   float64
	}{
		{Value: 5, DomMin: 0, DomMax: 10, RgMin: 0, RgMax: 100, Want: 50},
		{Value: 0, DomMin: 0, DomMax: 10, RgMin: 20, RgMax: 40, Want: 20},
		{Value: 10, DomMin: 0, DomMax: 10, RgMin: 20, RgMax: 40, Want: 40},
		{Value: 15, DomMin: 0, DomMax: 10, RgMin: 0, RgMax: 100, Want: 150},
		{Value: -5, DomMin: 0, DomMax: 10, RgMin: 0, RgMax: 100, Want: -50},
		{Value: 2.5, DomMin: 0, DomMax: 10, RgMin: 100, RgMax: 0, Want: 75},
		{Value: 10, DomMin: 0, DomMax: 20, RgMin: 0, RgMax: 360, Want: 180},
		{Value: 42, DomMin: 7, DomMax: 7, RgMin: 3, RgMax: 9, Want: 3},
		{Value: 0, DomMin: 0, DomMax: 0, RgMin: 0, RgMax: 360, Want: 0},
	}
	for _, d := range data {
		got := Map(d.Value, d.DomMin, d.DomMax, d.RgMin, d.RgMax)
		if math.Abs(got-d.Want) > tolerance {
			t.Errorf("map(%f, [%f, %f], [%f, %f]): want %f, got %f", d.Value, d.DomMin, d.DomMax, d.RgMin, d.RgMax, d.Want, got)
		}
	}
}

func TestMapMonotonic(t *testing.T) {
	var prev float64
	for i := 0; i <= 100; i++ {
		v := Map(float64(i)*0.37-5, -5, 32, -10, 250)
		if i > 0 && v < prev {
			t.Fatalf("map is not monotonic at step %d: %f < %f", i, v, prev)
		}
		prev = v
	}
}

func TestMapDegenerate(t *testing.T) {
	for _, v := range []float64{-1e6, -1, 0, 0.5, 12, 1e9} {
		if got := Map(v, 4, 4, -3, 17); got != -3 {
			t.Errorf("degenerate domain: %f mapped to %f, want range minimum", v, got)
		}
	}
}

func TestRangeValues(t *testing.T) {
	var (
		rg   = NewRange(50, 750)
		got  = rg.Values(7)
		want = []float64{50, 150, 250, 350, 450, 550, 650, 750}
	)
	if len(got) != len(want) {
		t.Fatalf("values: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tolerance {
			t.Errorf("value %d: want %f, got %f", i, want[i], got[i])
		}
	}
	if got := rg.Values(0); len(got) != 2 {
		t.Errorf("values without steps: want bounds only, got %v", got)
	}
}

func TestScalerTicks(t *testing.T) {
	var (
		s    = NumberScaler(NumberDomain(1935, 2005), NewRange(50, 750))
		want = []float64{1935, 1945, 1955, 1965, 1975, 1985, 1995, 2005}
	)
	for i, pos := range s.Values(7) {
		if got := s.Invert(pos); math.Abs(got-want[i]) > tolerance {
			t.Errorf("tick %d: want %f, got %f", i, want[i], got)
		}
	}
}

func TestDomainContains(t *testing.T) {
	dom := NumberDomain(0, 4500)
	for _, v := range []float64{0, 1, 4500} {
		if !dom.Contains(v) {
			t.Errorf("%f should be in domain", v)
		}
	}
	for _, v := range []float64{-0.1, 4500.1} {
		if dom.Contains(v) {
			t.Errorf("%f should not be in domain", v)
		}
	}
	if !NumberDomain(10, 0).Contains(5) {
		t.Errorf("reversed domain should contain 5")
	}
}

func TestScalerInvert(t *testing.T) {
	s := NumberScaler(NumberDomain(0, 4500), NewRange(410, 40))
	for _, v := range []float64{0, 600, 2250, 4500} {
		if got := s.Invert(s.Scale(v)); math.Abs(got-v) > 1e-6 {
			t.Errorf("invert(scale(%f)): got %f", v, got)
		}
	}
	if got := NumberScaler(NumberDomain(3, 3), NewRange(0, 100)).Invert(42); got != 3 {
		t.Errorf("invert on degenerate domain: want 3, got %f", got)
	}
}
