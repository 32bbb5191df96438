package atlaspack

import "testing"

func TestRegionIsEmpty(t *testing.T) {
	cases := []struct {
		name string
		r    Region
		want bool
	}{
		{"zero value", Region{}, true},
		{"zero width", Region{X: 1, Y: 1, Width: 0, Height: 5}, true},
		{"zero height", Region{X: 1, Y: 1, Width: 5, Height: 0}, true},
		{"non-empty", Region{X: 0, Y: 0, Width: 10, Height: 20}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.IsEmpty(); got != tc.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRegionArea(t *testing.T) {
	r := Region{Width: 1 << 20, Height: 1 << 20}
	want := uint64(1<<20) * uint64(1<<20)
	if got := r.Area(); got != want {
		t.Errorf("Area() = %d, want %d", got, want)
	}
}

func TestSentinelRegions(t *testing.T) {
	if !InvalidRegion.IsEmpty() {
		t.Error("InvalidRegion should be empty")
	}
	if AllocatedRegion.IsEmpty() {
		t.Error("AllocatedRegion should not be empty")
	}
	if InvalidRegion == AllocatedRegion {
		t.Error("sentinels must be distinct")
	}
}

func TestRegionEquality(t *testing.T) {
	a := Region{X: 1, Y: 2, Width: 3, Height: 4}
	b := Region{X: 1, Y: 2, Width: 3, Height: 4}
	c := Region{X: 1, Y: 2, Width: 3, Height: 5}
	if a != b {
		t.Error("identical regions should be equal")
	}
	if a == c {
		t.Error("regions differing in one field should not be equal")
	}
}
