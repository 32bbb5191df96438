package text

import "testing"

func TestRectDimensions(t *testing.T) {
	r := Rect{MinX: 1, MinY: 2, MaxX: 11, MaxY: 18}

	if got := r.Width(); got != 10 {
		t.Errorf("Width() = %v, want 10", got)
	}
	if got := r.Height(); got != 16 {
		t.Errorf("Height() = %v, want 16", got)
	}
	if r.Empty() {
		t.Error("Empty() = true, want false")
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero value", Rect{}, true},
		{"zero width", Rect{MinX: 5, MaxX: 5, MinY: 0, MaxY: 5}, true},
		{"zero height", Rect{MinX: 0, MaxX: 5, MinY: 5, MaxY: 5}, true},
		{"inverted", Rect{MinX: 5, MaxX: 0, MinY: 0, MaxY: 5}, true},
		{"normal", Rect{MinX: 0, MaxX: 5, MinY: 0, MaxY: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGlyphTypeString(t *testing.T) {
	tests := []struct {
		gt   GlyphType
		want string
	}{
		{GlyphTypeOutline, "Outline"},
		{GlyphTypeBitmap, "Bitmap"},
		{GlyphTypeCOLR, "COLR"},
		{GlyphTypeSVG, "SVG"},
		{GlyphType(99), "Unknown"},
	}

	for _, tt := range tests {
		got := tt.gt.String()
		if got != tt.want {
			t.Errorf("GlyphType(%d).String() = %q, want %q", tt.gt, got, tt.want)
		}
	}
}
