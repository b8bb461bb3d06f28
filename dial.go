// Package arcdial provides a semi-circular dial picker for selecting an
// integer from a bounded range by scrolling. Tick marks fan out along the
// arc as the strip scrolls underneath a fixed center indicator; the tick
// under the indicator is the selected value, held in a two-way bound
// Value[int] the caller owns.
package arcdial

import (
	"math"
	"strconv"
)

// ArcPicker is the dial widget. It renders into a Buffer like any other
// component; scroll input arrives through ScrollBy/ScrollTo and gesture-end
// through ScrollIdle, however the host chooses to deliver them.
type ArcPicker struct {
	Base

	ticks  Ticks
	cfg    Config
	value  *Value[int]
	binder *Binder
	label  func(int) string

	offset float64 // scroll offset in points
	seeded bool

	// Functions yielded to the next scheduling turn, run by Step.
	turnQueue []func()
}

// New creates a picker selecting from the inclusive range [lo, hi], bound to
// the caller's value. The configuration defaults can be replaced wholesale
// with Config before first display.
func New(lo, hi int, value *Value[int]) *ArcPicker {
	p := &ArcPicker{
		value: value,
		cfg:   DefaultConfig(),
		label: strconv.Itoa,
	}
	p.style = DefaultStyle()
	p.rebuild(NewRange(lo, hi))
	return p
}

// rebuild derives ticks and binder from the range and current config.
func (p *ArcPicker) rebuild(r Range) {
	if p.binder != nil {
		p.binder.Dispose()
	}
	p.ticks = NewTicks(r, p.cfg.LargeTickFrequency)
	p.binder = NewBinder(r, p.value, p.yield, p.recenter)
	p.seeded = false
}

// Config replaces the widget configuration. Call before first display.
func (p *ArcPicker) Config(cfg Config) *ArcPicker {
	p.cfg = cfg
	p.rebuild(p.ticks.Range())
	return p
}

// Label sets the callback producing the text shown for the selected value.
func (p *ArcPicker) Label(fn func(int) string) *ArcPicker {
	p.label = fn
	return p
}

// Value returns the bound value handle.
func (p *ArcPicker) Value() *Value[int] {
	return p.value
}

// Selected returns the currently selected value.
func (p *ArcPicker) Selected() int {
	return p.ticks.Range().Clamp(p.value.Get())
}

// Binder exposes the scroll binder, mainly so hosts can inspect its state.
func (p *ArcPicker) Binder() *Binder {
	return p.binder
}

// yield queues fn for the next scheduling turn.
func (p *ArcPicker) yield(fn func()) {
	p.turnQueue = append(p.turnQueue, fn)
}

// Step runs everything yielded to the current scheduling turn. Hosts call it
// once per update cycle; without it a pending settle reseed never lands.
func (p *ArcPicker) Step() {
	if len(p.turnQueue) == 0 {
		return
	}
	queue := p.turnQueue
	p.turnQueue = nil
	for _, fn := range queue {
		fn()
	}
}

// recenter snaps the scroll offset onto the tick holding v.
func (p *ArcPicker) recenter(v int) {
	p.offset = OffsetForIndex(p.ticks.Index(v))
}

// maxOffset returns the scroll offset of the last tick.
func (p *ArcPicker) maxOffset() float64 {
	return OffsetForIndex(p.ticks.Len() - 1)
}

// ScrollBy moves the scroll position by delta points (positive scrolls
// toward higher values) and reports the tick now under the indicator.
func (p *ArcPicker) ScrollBy(delta float64) {
	p.ensureSeeded()
	p.offset += delta
	if lo := OffsetForIndex(0); p.offset < lo {
		p.offset = lo
	}
	if hi := p.maxOffset(); p.offset > hi {
		p.offset = hi
	}
	p.binder.SetActive(p.ticks.Value(IndexForOffset(p.offset)))
}

// ScrollTo jumps the scroll position straight onto a value.
func (p *ArcPicker) ScrollTo(v int) {
	p.ensureSeeded()
	p.recenter(v)
	p.binder.SetActive(p.ticks.Range().Clamp(v))
}

// ScrollIdle reports that the scroll gesture came to rest. The binder clears
// and reseeds the active position on the next Step, snapping the offset
// exactly onto the settled tick.
func (p *ArcPicker) ScrollIdle() {
	p.ensureSeeded()
	p.binder.Settle()
}

// ensureSeeded runs the first-display seeding if it hasn't happened yet.
func (p *ArcPicker) ensureSeeded() {
	if p.seeded {
		return
	}
	p.seeded = true
	p.binder.Seed()
}

// SetConstraints implements Component. The picker fills the available width
// and takes as many rows as the configured height needs, capped by the
// constraint.
func (p *ArcPicker) SetConstraints(width, height int) {
	p.Base.SetConstraints(width, height)
	p.minW = int(TickSlotWidth/PointsPerColumn) * 4
	p.minH = 4
	p.width = width
	rows := int(math.Ceil(p.cfg.Height / PointsPerRow))
	if rows > height {
		rows = height
	}
	if rows < p.minH {
		rows = p.minH
	}
	p.height = rows
	p.ensureSeeded()
}

// layout computes the arc geometry for the current cell size.
func (p *ArcPicker) layout() Layout {
	w := float64(p.width) * PointsPerColumn
	h := float64(p.height) * PointsPerRow
	return ComputeLayout(w, h, p.cfg.StrokeWidth)
}

// HitTest reports whether a scroll event at the given widget-relative cell
// position should be accepted. With CompleteInteraction the whole surface
// accepts input; otherwise only the arc band does.
func (p *ArcPicker) HitTest(x, y int) bool {
	if p.cfg.CompleteInteraction {
		return x >= 0 && x < p.width && y >= 0 && y < p.height
	}
	l := p.layout()
	px := (float64(x) + 0.5) * PointsPerColumn
	py := (float64(y) + 0.5) * PointsPerRow
	dist := math.Hypot(px-l.CenterX, py-l.CenterY)
	return py <= l.CenterY && math.Abs(dist-l.Radius) <= p.cfg.StrokeWidth/2
}

// Render implements Component.
func (p *ArcPicker) Render(buf *Buffer, x, y int) {
	p.ensureSeeded()
	l := p.layout()
	if l.Radius <= 0 {
		return
	}

	p.renderStroke(buf, x, y, l)
	p.renderTicks(buf, x, y, l)
	p.renderIndicator(buf, x, y, l)
	p.renderLabel(buf, x, y)
}

// renderStroke shades every cell whose center falls inside the arc band.
func (p *ArcPicker) renderStroke(buf *Buffer, x, y int, l Layout) {
	style := p.cfg.strokeStyle()
	half := p.cfg.StrokeWidth / 2
	for cy := 0; cy < p.height; cy++ {
		for cx := 0; cx < p.width; cx++ {
			px := (float64(cx) + 0.5) * PointsPerColumn
			py := (float64(cy) + 0.5) * PointsPerRow
			dist := math.Hypot(px-l.CenterX, py-l.CenterY)
			if math.Abs(dist-l.Radius) <= half {
				buf.Set(x+cx, y+cy, NewCell('░', style))
			}
		}
	}
}

// renderTicks draws each visible tick mark along the arc, rotated per its
// scroll progress.
func (p *ArcPicker) renderTicks(buf *Buffer, x, y int, l Layout) {
	activeIdx := -1
	if v, ok := p.binder.Active(); ok {
		activeIdx = p.ticks.Index(v)
	}

	for i := 0; i < p.ticks.Len(); i++ {
		tr := l.TickAt(i, p.offset)
		// Ticks scrolled past either end pile up at progress ±1; drop them
		// once their slot has left the container entirely.
		if math.Abs(tr.MidX-l.CenterX) > l.CenterX+TickSlotWidth {
			continue
		}

		length := TickLength(p.cfg.StrokeWidth, p.ticks.IsLarge(i))
		style := Style{FG: p.cfg.InactiveTint}
		if i == activeIdx {
			style = Style{FG: p.cfg.ActiveTint}.Bold()
		}

		p.plotTick(buf, x, y, l, tr, length, style)
	}
}

// plotTick rasterizes one mark: anchored on the arc, pointing at the
// center, sampled every few points and mapped onto cells.
func (p *ArcPicker) plotTick(buf *Buffer, x, y int, l Layout, tr TickTransform, length float64, style Style) {
	ax, ay := l.ArcPoint(AnchorAngle(tr.Progress))
	// Unit vector from anchor toward the arc center.
	dx := (l.CenterX - ax) / l.Radius
	dy := (l.CenterY - ay) / l.Radius
	r := tickRune(dx, dy)

	const step = 3.0
	for d := 0.0; d <= length; d += step {
		px := ax + dx*d
		py := ay + dy*d
		cx := int(px / PointsPerColumn)
		cy := int(py / PointsPerRow)
		if cx < 0 || cx >= p.width || cy < 0 || cy >= p.height {
			continue
		}
		buf.Set(x+cx, y+cy, NewCell(r, style))
	}
}

// tickRune picks the glyph whose slope best matches a direction given in
// point space, correcting for the cell aspect ratio.
func tickRune(dx, dy float64) rune {
	sx := dx / PointsPerColumn
	sy := dy / PointsPerRow
	ang := math.Atan2(sy, sx) * 180 / math.Pi
	if ang < 0 {
		ang += 180
	}
	switch {
	case ang < 22.5 || ang >= 157.5:
		return '─'
	case ang < 67.5:
		return '╲'
	case ang < 112.5:
		return '│'
	default:
		return '╱'
	}
}

// renderIndicator marks the selection point just above the arc apex.
func (p *ArcPicker) renderIndicator(buf *Buffer, x, y int, l Layout) {
	ax, ay := l.ArcPoint(90)
	cx := int(ax / PointsPerColumn)
	cy := int(ay/PointsPerRow) - 1
	if cy < 0 {
		cy = 0
	}
	buf.Set(x+cx, y+cy, NewCell('▼', Style{FG: p.cfg.ActiveTint}))
}

// renderLabel centers the label text for the selected value on the bottom
// row, inside the arc's open side.
func (p *ArcPicker) renderLabel(buf *Buffer, x, y int) {
	if p.label == nil {
		return
	}
	text := p.label(p.Selected())
	cx := p.width/2 - len(text)/2
	buf.WriteString(x+cx, y+p.height-1, text, Style{FG: p.cfg.ActiveTint}.Bold())
}
