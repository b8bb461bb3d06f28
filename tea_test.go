package arcdial

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) (Model, *Value[int]) {
	t.Helper()
	v := NewValue(70)
	m := NewModel(New(5, 150, v))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	return m, v
}

func TestModelWindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	w, h := m.Picker().Size()
	if w != 60 {
		t.Errorf("expected width 60, got %d", w)
	}
	if h != 25 { // 200pt at 8pt per row
		t.Errorf("expected height 25, got %d", h)
	}
	if m.Picker().Binder().State() != StateBound {
		t.Errorf("expected Bound after size, got %v", m.Picker().Binder().State())
	}
}

func TestModelWheelScroll(t *testing.T) {
	m, v := newTestModel(t)

	wheel := tea.MouseMsg{
		X:      30,
		Y:      13,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelDown,
	}
	m, cmd := m.Update(wheel)
	if v.Get() != 71 {
		t.Errorf("expected 71 after wheel down, got %d", v.Get())
	}
	if cmd == nil {
		t.Error("expected idle timer command after wheel")
	}

	wheel.Button = tea.MouseButtonWheelUp
	m, _ = m.Update(wheel)
	m, _ = m.Update(wheel)
	if v.Get() != 69 {
		t.Errorf("expected 69 after two wheel ups, got %d", v.Get())
	}
}

func TestModelKeyScroll(t *testing.T) {
	m, v := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if v.Get() != 71 {
		t.Errorf("expected 71, got %d", v.Get())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if v.Get() != 70 {
		t.Errorf("expected 70, got %d", v.Get())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if v.Get() != 150 {
		t.Errorf("expected 150 after end, got %d", v.Get())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if v.Get() != 5 {
		t.Errorf("expected 5 after home, got %d", v.Get())
	}
}

func TestModelSettleFlow(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	// The idle timer for this gesture fires.
	m, cmd := m.Update(settleMsg{seq: 1})
	if m.Picker().Binder().State() != StateSettling {
		t.Errorf("expected Settling, got %v", m.Picker().Binder().State())
	}
	if cmd == nil {
		t.Fatal("expected step command after settle")
	}

	m, _ = m.Update(cmd())
	if m.Picker().Binder().State() != StateBound {
		t.Errorf("expected Bound after step, got %v", m.Picker().Binder().State())
	}
	if got, _ := m.Picker().Binder().Active(); got != 71 {
		t.Errorf("expected settle on 71, got %d", got)
	}
}

func TestModelStaleSettleIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	// Timer from the first keypress is stale; the gesture is still live.
	m, _ = m.Update(settleMsg{seq: 1})
	if m.Picker().Binder().State() != StateBound {
		t.Errorf("expected stale settle ignored, got %v", m.Picker().Binder().State())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	if out == "" {
		t.Fatal("expected rendered output")
	}
	if !strings.Contains(out, "70") {
		t.Error("expected selected value in view")
	}
	if got := strings.Count(out, "\n"); got != 24 {
		t.Errorf("expected 25 rows, got %d newlines", got)
	}
}

func TestRenderANSIMergesRuns(t *testing.T) {
	buf := NewBuffer(4, 1)
	buf.WriteString(0, 0, "ab", Style{FG: Red})
	buf.WriteString(2, 0, "cd", Style{FG: Blue})
	out := renderANSI(buf)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("expected both runs in output, got %q", out)
	}
}
