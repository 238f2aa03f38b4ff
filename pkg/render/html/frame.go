package html

import (
	"math"
	"strconv"

	"github.com/matzehuels/graphdraw/pkg/render"
)

const (
	marginPlain     = 12.0
	marginAxisLeft  = 44.0
	marginAxisBelow = 32.0
)

// frame maps data coordinates onto the pixel canvas.
type frame struct {
	width, height  float64 // data units
	left, top      float64 // pixels
	innerW, innerH float64 // pixels
}

func newFrame(s render.Scene) frame {
	left, right, top, bottom := marginPlain, marginPlain, marginPlain, marginPlain
	if s.ShowAxis {
		left, bottom = marginAxisLeft, marginAxisBelow
	}
	return frame{
		width:  s.Width,
		height: s.Height,
		left:   left,
		top:    top,
		innerW: max(float64(s.CanvasWidth)-left-right, 1),
		innerH: max(float64(s.CanvasHeight)-top-bottom, 1),
	}
}

// point converts data coordinates to canvas pixels, y axis up.
func (f frame) point(x, y float64) (float64, float64) {
	px := f.left + x/f.width*f.innerW
	py := f.top + f.innerH - y/f.height*f.innerH
	return px, py
}

// Ticks returns evenly spaced tick values covering [lo, hi] using a
// 1-2-5 step progression and roughly five intervals.
func Ticks(lo, hi float64) []float64 {
	if hi <= lo {
		return []float64{lo}
	}
	step := niceStep((hi - lo) / 5)
	first := math.Ceil(lo/step) * step

	var ticks []float64
	for i := 0; ; i++ {
		t := first + float64(i)*step
		if t > hi+step*1e-9 {
			break
		}
		ticks = append(ticks, roundTo(t, step))
	}
	return ticks
}

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	switch frac := raw / base; {
	case frac <= 1:
		return base
	case frac <= 2:
		return 2 * base
	case frac <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// roundTo strips floating point noise below the step's precision.
func roundTo(v, step float64) float64 {
	digits := max(0, -int(math.Floor(math.Log10(step))))
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

// FormatTick formats a tick value without trailing zeros.
func FormatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
