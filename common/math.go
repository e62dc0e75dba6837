package common

import "math"

const (
	TPS = 60
	// DT is the fixed simulation step in seconds.
	DT = 1.0 / TPS

	PixelsPerUnit = 32.0
	ScreenWidth   = 1280
	ScreenHeight  = 720

	// Gravity is the default vertical gravity in units/s², y-up.
	Gravity = -9.81
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// View maps y-up world units onto a y-down screen. CamX and CamY are the
// world position of the screen's bottom-left corner.
type View struct {
	ScreenW float64
	ScreenH float64
	CamX    float64
	CamY    float64
}

func NewView() *View {
	return &View{ScreenW: ScreenWidth, ScreenH: ScreenHeight}
}

// WorldToScreen converts a world point to screen pixels.
func (v *View) WorldToScreen(x, y float64) (float64, float64) {
	return (x - v.CamX) * PixelsPerUnit, v.ScreenH - (y-v.CamY)*PixelsPerUnit
}

// RectToScreen converts a world rectangle with bottom-left (x, y) into the
// screen rectangle with top-left (sx, sy).
func (v *View) RectToScreen(x, y, w, h float64) (sx, sy, sw, sh float64) {
	sx, sy = v.WorldToScreen(x, y+h)
	return sx, sy, w * PixelsPerUnit, h * PixelsPerUnit
}

// Follow eases the camera toward centering on (x, y), clamped so the view
// stays inside a worldW x worldH level.
func (v *View) Follow(x, y, worldW, worldH, smooth float64) {
	halfW := v.ScreenW / PixelsPerUnit / 2
	halfH := v.ScreenH / PixelsPerUnit / 2
	tx := Clamp(x-halfW, 0, math.Max(0, worldW-2*halfW))
	ty := Clamp(y-halfH, 0, math.Max(0, worldH-2*halfH))
	v.CamX = Lerp(v.CamX, tx, smooth)
	v.CamY = Lerp(v.CamY, ty, smooth)
}
