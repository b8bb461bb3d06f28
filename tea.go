package arcdial

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultIdleDelay is how long after the last wheel event a scroll gesture
// is considered at rest.
const DefaultIdleDelay = 150 * time.Millisecond

// settleMsg fires when wheel input has been quiet for the idle delay.
// seq identifies the gesture; stale timers from earlier wheel events are
// ignored.
type settleMsg struct {
	seq int
}

// stepMsg runs the picker's pending scheduling turn. Emitting it as a
// command defers the settle reseed to the next update cycle, which is
// exactly the one-turn yield the binder wants.
type stepMsg struct{}

// Model adapts an ArcPicker to the Bubble Tea runtime: window sizes become
// layout constraints, mouse wheel events become scroll input, and a
// debounce tick reports scroll-idle.
type Model struct {
	picker    *ArcPicker
	idleDelay time.Duration
	seq       int // current wheel gesture sequence
}

// NewModel wraps a picker for use inside a Bubble Tea program. Run the
// program with tea.WithMouseCellMotion so wheel events arrive.
func NewModel(p *ArcPicker) Model {
	return Model{picker: p, idleDelay: DefaultIdleDelay}
}

// IdleDelay overrides the scroll-idle debounce.
func (m Model) IdleDelay(d time.Duration) Model {
	m.idleDelay = d
	return m
}

// Picker returns the wrapped widget.
func (m Model) Picker() *ArcPicker {
	return m.picker
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	// Anything queued for this turn runs before the new message is applied.
	m.picker.Step()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.picker.SetConstraints(msg.Width, msg.Height)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		var delta float64
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			delta = -TickSlotWidth
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			delta = TickSlotWidth
		default:
			return m, nil
		}
		if !m.picker.HitTest(msg.X, msg.Y) {
			return m, nil
		}
		m.picker.ScrollBy(delta)
		m.seq++
		return m, m.idleTimer(m.seq)

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.picker.ScrollBy(-TickSlotWidth)
			m.seq++
			return m, m.idleTimer(m.seq)
		case "right", "l":
			m.picker.ScrollBy(TickSlotWidth)
			m.seq++
			return m, m.idleTimer(m.seq)
		case "home":
			m.picker.ScrollTo(m.picker.ticks.Range().Lo)
		case "end":
			m.picker.ScrollTo(m.picker.ticks.Range().Hi)
		}

	case settleMsg:
		if msg.seq != m.seq {
			break // a newer wheel event restarted the gesture
		}
		m.picker.ScrollIdle()
		return m, func() tea.Msg { return stepMsg{} }

	case stepMsg:
		m.picker.Step()
	}

	return m, nil
}

// idleTimer schedules the settle check for the current gesture.
func (m Model) idleTimer(seq int) tea.Cmd {
	return tea.Tick(m.idleDelay, func(time.Time) tea.Msg {
		return settleMsg{seq: seq}
	})
}

// View implements tea.Model, rendering the picker through lipgloss.
func (m Model) View() string {
	w, h := m.picker.Size()
	if w == 0 || h == 0 {
		return ""
	}
	buf := NewBuffer(w, h)
	m.picker.Render(buf, 0, 0)
	return renderANSI(buf)
}

// renderANSI converts a cell buffer into styled terminal text, merging runs
// of equally-styled cells into single lipgloss renders.
func renderANSI(buf *Buffer) string {
	var out strings.Builder
	w, h := buf.Size()
	for y := 0; y < h; y++ {
		runStart := 0
		var run strings.Builder
		var runStyle Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(lipglossStyle(runStyle).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < w; x++ {
			c := buf.Get(x, y)
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			if x > runStart && !c.Style.Equal(runStyle) {
				flush()
				runStart = x
			}
			if run.Len() == 0 {
				runStyle = c.Style
				runStart = x
			}
			run.WriteRune(r)
		}
		flush()
		if y < h-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// lipglossStyle translates a cell style into a lipgloss style.
func lipglossStyle(s Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if fg := lipglossColor(s.FG); fg != nil {
		st = st.Foreground(fg)
	}
	if bg := lipglossColor(s.BG); bg != nil {
		st = st.Background(bg)
	}
	if s.Attr.Has(AttrBold) {
		st = st.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		st = st.Faint(true)
	}
	if s.Attr.Has(AttrItalic) {
		st = st.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		st = st.Underline(true)
	}
	if s.Attr.Has(AttrInverse) {
		st = st.Reverse(true)
	}
	return st
}

// lipglossColor translates a Color. Default colors return nil so the style
// leaves them untouched.
func lipglossColor(c Color) lipgloss.TerminalColor {
	switch c.Mode {
	case Color16, Color256:
		return lipgloss.Color(strconv.Itoa(int(c.Index)))
	case ColorRGB:
		const hex = "0123456789abcdef"
		return lipgloss.Color(string([]byte{
			'#',
			hex[c.R>>4], hex[c.R&0xF],
			hex[c.G>>4], hex[c.G&0xF],
			hex[c.B>>4], hex[c.B&0xF],
		}))
	default:
		return nil
	}
}
