package geom

import "testing"

func TestQuadrantOf(t *testing.T) {
	cases := []struct {
		name string
		d    Point
		want Quadrant
	}{
		{"due north", Point{0, 5}, QuadNorth},
		{"due south", Point{0, -5}, QuadSouth},
		{"due east", Point{5, 0}, QuadEast},
		{"due west", Point{-5, 0}, QuadWest},
		{"north leaning east", Point{2, 5}, QuadNorth},
		{"east leaning north", Point{5, 2}, QuadEast},
		{"south leaning west", Point{-2, -5}, QuadSouth},
		{"west leaning south", Point{-5, -2}, QuadWest},
		{"zero", Point{0, 0}, QuadNone},
		{"diagonal ne", Point{3, 3}, QuadNone},
		{"diagonal nw", Point{-3, 3}, QuadNone},
		{"diagonal se", Point{3, -3}, QuadNone},
		{"diagonal sw", Point{-3, -3}, QuadNone},
	}

	for _, tc := range cases {
		if got := QuadrantOf(tc.d); got != tc.want {
			t.Errorf("%s: QuadrantOf(%v) = %v, want %v", tc.name, tc.d, got, tc.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Center: Point{10, 10}, Size: Size{4, 2}}

	if !r.Contains(Point{10, 10}) {
		t.Error("center should be inside")
	}
	if !r.Contains(Point{8, 9}) {
		t.Error("min corner should be inside (closed on min edges)")
	}
	if r.Contains(Point{12, 10}) {
		t.Error("max x edge should be outside (open on max edges)")
	}
	if r.Contains(Point{10, 11}) {
		t.Error("max y edge should be outside (open on max edges)")
	}
	if r.Contains(Point{7, 10}) {
		t.Error("point left of rect should be outside")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{Center: Point{0, 0}, Size: Size{2, 2}}
	b := Rect{Center: Point{10, 4}, Size: Size{2, 2}}

	u := a.Union(b)
	if got, want := u.Min(), (Point{-1, -1}); got != want {
		t.Errorf("Union min = %v, want %v", got, want)
	}
	if got, want := u.Max(), (Point{11, 5}); got != want {
		t.Errorf("Union max = %v, want %v", got, want)
	}
}

func TestPointLenOrdering(t *testing.T) {
	near := Point{3, 0}
	far := Point{3, 4}
	if near.LenSq() >= far.LenSq() {
		t.Errorf("LenSq should order by distance: %v vs %v", near.LenSq(), far.LenSq())
	}
	if far.Len() != 5 {
		t.Errorf("Len(3,4) = %v, want 5", far.Len())
	}
}
