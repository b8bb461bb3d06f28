package arcdial

import "testing"

func TestBuffer(t *testing.T) {
	t.Run("NewBuffer", func(t *testing.T) {
		buf := NewBuffer(80, 24)
		if buf.Width() != 80 || buf.Height() != 24 {
			t.Errorf("expected 80x24, got %dx%d", buf.Width(), buf.Height())
		}

		// All cells should be empty
		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				c := buf.Get(x, y)
				if c.Rune != ' ' {
					t.Errorf("expected space at (%d,%d), got %q", x, y, c.Rune)
				}
			}
		}
	})

	t.Run("InBounds", func(t *testing.T) {
		buf := NewBuffer(10, 10)

		tests := []struct {
			x, y   int
			expect bool
		}{
			{0, 0, true},
			{9, 9, true},
			{-1, 0, false},
			{0, -1, false},
			{10, 0, false},
			{0, 10, false},
		}

		for _, tt := range tests {
			got := buf.InBounds(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		cell := NewCell('X', DefaultStyle().Foreground(Red))

		buf.Set(5, 5, cell)
		if got := buf.Get(5, 5); got != cell {
			t.Errorf("got %+v, want %+v", got, cell)
		}

		// Out of bounds should return empty cell
		if oob := buf.Get(-1, -1); oob.Rune != ' ' {
			t.Error("expected empty cell for out of bounds")
		}

		// Out of bounds set is a no-op
		buf.Set(99, 99, cell)
	})

	t.Run("WriteString", func(t *testing.T) {
		buf := NewBuffer(10, 2)
		n := buf.WriteString(7, 0, "hello", DefaultStyle())
		if n != 3 {
			t.Errorf("expected 3 cells written before clipping, got %d", n)
		}
		if got := buf.GetLine(0); got != "       hel" {
			t.Errorf("expected clipped write, got %q", got)
		}
	})

	t.Run("Resize", func(t *testing.T) {
		buf := NewBuffer(4, 2)
		buf.WriteString(0, 0, "abcd", DefaultStyle())

		buf.Resize(6, 3)
		if buf.Width() != 6 || buf.Height() != 3 {
			t.Errorf("expected 6x3, got %dx%d", buf.Width(), buf.Height())
		}
		if got := buf.GetLine(0); got != "abcd" {
			t.Errorf("expected content preserved, got %q", got)
		}

		buf.Resize(2, 1)
		if got := buf.GetLine(0); got != "ab" {
			t.Errorf("expected content truncated, got %q", got)
		}
	})

	t.Run("String", func(t *testing.T) {
		buf := NewBuffer(3, 2)
		buf.WriteString(0, 0, "ab", DefaultStyle())
		buf.WriteString(0, 1, "c", DefaultStyle())
		if got := buf.String(); got != "ab \nc  " {
			t.Errorf("unexpected dump %q", got)
		}
	})
}
