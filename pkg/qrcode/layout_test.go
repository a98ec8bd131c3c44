package qr

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultLayout = Layout{Modules: 29, ModuleSize: 10, QuietZone: 4}

func TestLayoutImageSize(t *testing.T) {
	assert.Equal(t, 370, defaultLayout.ImageSize())
	assert.Equal(t, image.Rect(0, 0, 370, 370), defaultLayout.Bounds())

	l := Layout{Modules: 21, ModuleSize: 4, QuietZone: 0}
	assert.Equal(t, 84, l.ImageSize())
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr bool
	}{
		{name: "default", layout: defaultLayout},
		{name: "no quiet zone", layout: Layout{Modules: 21, ModuleSize: 1}},
		{name: "too few modules", layout: Layout{Modules: 7, ModuleSize: 10}, wantErr: true},
		{name: "zero module size", layout: Layout{Modules: 21}, wantErr: true},
		{name: "negative quiet zone", layout: Layout{Modules: 21, ModuleSize: 10, QuietZone: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// With the default geometry the eye regions must match the rectangles
// the GraphOwls artwork was designed against.
func TestLayoutEyeRects(t *testing.T) {
	assert.Equal(t, []image.Rectangle{
		image.Rect(40, 40, 110, 110),
		image.Rect(260, 40, 330, 110),
		image.Rect(40, 260, 110, 330),
	}, defaultLayout.EyeRects())

	assert.Equal(t, []image.Rectangle{
		image.Rect(60, 60, 90, 90),
		image.Rect(280, 60, 310, 90),
		image.Rect(60, 280, 90, 310),
	}, defaultLayout.PupilRects())
}

func TestLayoutEyeRectsScale(t *testing.T) {
	l := Layout{Modules: 33, ModuleSize: 6, QuietZone: 2}

	eyes := l.EyeRects()
	require.Len(t, eyes, 3)
	for _, r := range eyes {
		assert.Equal(t, 42, r.Dx())
		assert.Equal(t, 42, r.Dy())
	}
	assert.Equal(t, image.Pt(12, 12), eyes[0].Min)
	assert.Equal(t, l.ImageSize()-12, eyes[1].Max.X)
	assert.Equal(t, l.ImageSize()-12, eyes[2].Max.Y)

	for i, p := range l.PupilRects() {
		assert.Equal(t, 18, p.Dx())
		assert.True(t, p.In(eyes[i]))
	}
}

func TestLayoutIsEye(t *testing.T) {
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{6, 6, true},
		{7, 7, false},
		{0, 22, true},
		{6, 28, true},
		{0, 21, false},
		{22, 0, true},
		{28, 6, true},
		{28, 28, false},
		{14, 14, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, defaultLayout.IsEye(tt.row, tt.col), "row %d col %d", tt.row, tt.col)
	}
}

func countOpaque(m *image.Alpha) int {
	n := 0
	for _, a := range m.Pix {
		if a == 0xff {
			n++
		}
	}
	return n
}

func TestInnerEyeMask(t *testing.T) {
	mask := defaultLayout.InnerEyeMask()
	require.Equal(t, defaultLayout.Bounds(), mask.Bounds())

	opaque := []image.Point{{75, 75}, {60, 60}, {89, 89}, {295, 75}, {75, 295}}
	for _, p := range opaque {
		assert.EqualValues(t, 0xff, mask.AlphaAt(p.X, p.Y).A, "point %v", p)
	}
	clear := []image.Point{{59, 75}, {90, 90}, {45, 45}, {185, 185}, {295, 295}}
	for _, p := range clear {
		assert.EqualValues(t, 0, mask.AlphaAt(p.X, p.Y).A, "point %v", p)
	}

	assert.Equal(t, 3*30*30, countOpaque(mask))
}

func TestOuterEyeMask(t *testing.T) {
	mask := defaultLayout.OuterEyeMask()
	require.Equal(t, defaultLayout.Bounds(), mask.Bounds())

	opaque := []image.Point{{40, 40}, {45, 75}, {109, 109}, {265, 45}, {325, 105}, {45, 325}}
	for _, p := range opaque {
		assert.EqualValues(t, 0xff, mask.AlphaAt(p.X, p.Y).A, "point %v", p)
	}
	clear := []image.Point{{39, 40}, {75, 75}, {110, 110}, {295, 75}, {75, 295}, {185, 185}}
	for _, p := range clear {
		assert.EqualValues(t, 0, mask.AlphaAt(p.X, p.Y).A, "point %v", p)
	}

	assert.Equal(t, 3*(70*70-30*30), countOpaque(mask))
}
