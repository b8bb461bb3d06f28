package arcdial

// LineCap controls how the ends of the arc stroke are drawn.
type LineCap uint8

const (
	CapRound LineCap = iota
	CapButt
	CapSquare
)

// LineJoin controls how stroke segments meet.
type LineJoin uint8

const (
	JoinRound LineJoin = iota
	JoinMiter
	JoinBevel
)

// Config is the passive bag of visual and behavioral options for an
// ArcPicker. It is fixed for the widget's lifetime; construct one with
// DefaultConfig and adjust fields before handing it over.
//
// Cell rasterization approximates caps and joins; the fields are kept so a
// pixel-capable render target can honor them exactly.
type Config struct {
	ActiveTint   Color // active tick and label
	InactiveTint Color // all other ticks
	StrokeColor  Color // arc band behind the ticks

	LargeTickFrequency int // every n-th tick renders large; values < 1 behave as 1

	StrokeWidth float64 // arc stroke width in points
	LineCap     LineCap
	LineJoin    LineJoin

	Height float64 // overall widget height in points

	// CompleteInteraction accepts scroll input across the whole widget
	// surface. When false the host should only forward events whose
	// position passes HitTest (the arc band itself).
	CompleteInteraction bool
}

// DefaultConfig returns the standard configuration: theme accent for the
// active tick, gray inactive ticks, a dim arc stroke, large tick every 10,
// a 50pt round-capped stroke and a 200pt-tall widget.
func DefaultConfig() Config {
	return Config{
		ActiveTint:          CurrentTheme.Accent.FG,
		InactiveTint:        BrightBlack,
		StrokeColor:         Black,
		LargeTickFrequency:  10,
		StrokeWidth:         50,
		LineCap:             CapRound,
		LineJoin:            JoinRound,
		Height:              200,
		CompleteInteraction: true,
	}
}

// strokeStyle is the render style for the arc band. Low-opacity fills have
// no terminal equivalent, so the stroke renders dim.
func (c Config) strokeStyle() Style {
	return Style{FG: c.StrokeColor}.Dim()
}
