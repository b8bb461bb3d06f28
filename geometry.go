package arcdial

import "math"

// All geometry is computed in float64 "points" and projected onto terminal
// cells only at render time. A cell is 4 points wide and 8 points tall,
// which keeps the usual ~1:2 terminal cell aspect while letting the widget
// speak the same units as its configuration (a 200pt-tall dial is 25 rows).
const (
	PointsPerColumn = 4.0
	PointsPerRow    = 8.0
)

// Horizontal tick strip metrics, in points. Each tick occupies a fixed slot
// with the mark itself left-aligned in it.
const (
	TickSlotWidth = 8.0
	TickMarkWidth = 3.0
)

// Layout is the computed arc geometry for a container size.
// It is recomputed on every resize and scroll event; nothing here is cached
// across frames.
type Layout struct {
	Width, Height  float64 // container size in points
	EffectiveWidth float64 // width minus stroke line width
	Radius         float64
	CenterX        float64 // arc center; the arc bulges up from here
	CenterY        float64
}

// ComputeLayout derives the arc geometry from a container size and stroke
// width. The diameter is the larger of effective width and height, capped at
// the effective width so the arc never overflows horizontally.
func ComputeLayout(width, height, strokeWidth float64) Layout {
	eff := width - strokeWidth
	if eff < 0 {
		eff = 0
	}
	d := math.Max(eff, height)
	if d > eff {
		d = eff
	}
	return Layout{
		Width:          width,
		Height:         height,
		EffectiveWidth: eff,
		Radius:         d / 2,
		CenterX:        width / 2,
		CenterY:        height,
	}
}

// Progress normalizes a tick's horizontal center offset from the container
// mid-x into [-1, 1]. Offsets beyond half the container width clamp.
func Progress(midXOffset, width float64) float64 {
	half := width / 2
	if half <= 0 {
		return 0
	}
	p := midXOffset / half
	if p < -1 {
		return -1
	}
	if p > 1 {
		return 1
	}
	return p
}

// RotationDeg converts normalized progress into the tick's rotation angle in
// degrees, applied around the tick's bottom anchor. Monotonic, with
// RotationDeg(-1) = -180, RotationDeg(0) = 0, RotationDeg(1) = 180.
func RotationDeg(progress float64) float64 {
	return progress * 180
}

// RotationRad is RotationDeg in radians.
func RotationRad(progress float64) float64 {
	return progress * math.Pi
}

// TickLength returns a tick mark's visual length in points. Large ticks
// render longer than small ones.
func TickLength(strokeWidth float64, large bool) float64 {
	if large {
		l := strokeWidth - 10
		if l < 0 {
			l = 0
		}
		return l
	}
	return strokeWidth / 2
}

// TickTransform describes where one tick sits and how it is rotated for the
// current scroll offset.
type TickTransform struct {
	MidX     float64 // horizontal center in container coordinates
	Progress float64 // normalized [-1, 1]
	AngleDeg float64 // rotation around the bottom anchor
}

// TickAt computes the transform for the tick at index i given the current
// scroll offset in points. Offset is the distance scrolled: the tick whose
// slot center coincides with the container mid-x is the active one.
func (l Layout) TickAt(i int, offset float64) TickTransform {
	midX := l.CenterX + float64(i)*TickSlotWidth - offset + TickMarkWidth/2
	p := Progress(midX-l.CenterX, l.Width)
	return TickTransform{
		MidX:     midX,
		Progress: p,
		AngleDeg: RotationDeg(p),
	}
}

// ArcPoint returns the point on the arc at the given sweep angle in degrees.
// The path runs from 180 at the left end to 0 at the right, so the open side
// faces down and the arc bulges upward.
func (l Layout) ArcPoint(deg float64) (x, y float64) {
	rad := deg * math.Pi / 180
	return l.CenterX + l.Radius*math.Cos(rad), l.CenterY - l.Radius*math.Sin(rad)
}

// AnchorAngle maps normalized progress onto the arc sweep angle for a tick's
// bottom anchor: progress -1 anchors at the left end (180), 0 at the apex
// (90), 1 at the right end (0).
func AnchorAngle(progress float64) float64 {
	return 90 - progress*90
}

// OffsetForIndex returns the scroll offset that centers tick i under the
// selection indicator.
func OffsetForIndex(i int) float64 {
	return float64(i)*TickSlotWidth + TickMarkWidth/2
}

// IndexForOffset returns the tick index whose slot center is nearest the
// current scroll offset.
func IndexForOffset(offset float64) int {
	i := int(math.Round((offset - TickMarkWidth/2) / TickSlotWidth))
	if i < 0 {
		return 0
	}
	return i
}
