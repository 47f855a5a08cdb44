package bikecharts

import (
	"math"
	"testing"
)

func TestSegmentsScenario(t *testing.T) {
	var (
		st   = Station{ID: "72", BikesAvailable: 0, DocksAvailable: 5, BikesDisabled: 5, DocksDisabled: 0}
		segs = st.Segments(20)
	)
	if sweep := Sweep(st.Total(), 20); sweep != 180 {
		t.Fatalf("sweep: want 180, got %f", sweep)
	}
	if len(segs) != 4 {
		t.Fatalf("segments: want 4, got %d", len(segs))
	}
	list := Drawable(segs)
	if len(list) != 2 {
		t.Fatalf("drawable segments: want 2, got %d (%v)", len(list), list)
	}
	want := []Segment{
		{Kind: KindDocks, Start: 0, End: 90},
		{Kind: KindBikesDisabled, Start: 90, End: 180},
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("segment %d: want %+v, got %+v", i, want[i], list[i])
		}
	}
}

func TestSegmentsContiguous(t *testing.T) {
	data := []struct {
		Station
		Max int
	}{
		{Station: Station{BikesAvailable: 3, DocksAvailable: 7, BikesDisabled: 1, DocksDisabled: 2}, Max: 13},
		{Station: Station{BikesAvailable: 3, DocksAvailable: 0, BikesDisabled: 1, DocksDisabled: 2}, Max: 13},
		{Station: Station{BikesAvailable: 11, DocksAvailable: 23, BikesDisabled: 0, DocksDisabled: 1}, Max: 61},
		{Station: Station{BikesAvailable: 1}, Max: 3},
	}
	for _, d := range data {
		var (
			segs  = d.Segments(d.Max)
			sweep = Sweep(d.Total(), d.Max)
		)
		for i, s := range segs {
			if s.Start < 0 || s.End < s.Start || s.End > fullcircle {
				t.Errorf("%+v: invalid segment %+v", d.Station, s)
			}
			if s.Kind != Kinds()[i] {
				t.Errorf("%+v: segment %d has kind %s", d.Station, i, s.Kind)
			}
			if i > 0 && segs[i-1].End != s.Start {
				t.Errorf("%+v: gap between segments %d and %d", d.Station, i-1, i)
			}
		}
		last := segs[len(segs)-1]
		if math.Abs(last.End-sweep) > tolerance {
			t.Errorf("%+v: last segment ends at %f, want %f", d.Station, last.End, sweep)
		}
	}
}

func TestSegmentsEmptyStation(t *testing.T) {
	segs := Station{ID: "empty"}.Segments(40)
	for _, s := range segs {
		if s.Start != 0 || s.End != 0 {
			t.Errorf("empty station: segment %+v should collapse at 0", s)
		}
	}
	if list := Drawable(segs); len(list) != 0 {
		t.Errorf("empty station: want nothing to draw, got %v", list)
	}
}

func TestSegmentsFullStation(t *testing.T) {
	var (
		st   = Station{BikesAvailable: 10, DocksAvailable: 20, BikesDisabled: 3, DocksDisabled: 7}
		segs = st.Segments(st.Total())
	)
	if sweep := Sweep(st.Total(), st.Total()); sweep != fullcircle {
		t.Errorf("biggest station: want full circle, got %f", sweep)
	}
	if end := segs[len(segs)-1].End; math.Abs(end-fullcircle) > tolerance {
		t.Errorf("biggest station: ring ends at %f", end)
	}
}

func TestMaxCapacity(t *testing.T) {
	set := []Station{
		{BikesAvailable: 4, DocksAvailable: 4},
		{BikesAvailable: 10, DocksDisabled: 9},
		{DocksAvailable: 3},
	}
	if got := MaxCapacity(set); got != 19 {
		t.Errorf("max capacity: want 19, got %d", got)
	}
	if got := MaxCapacity(nil); got != 0 {
		t.Errorf("max capacity of empty set: want 0, got %d", got)
	}
}
