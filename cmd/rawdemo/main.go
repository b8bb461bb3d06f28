package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"arcdial"
)

const idleDelay = 300 * time.Millisecond

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("rawdemo needs a terminal")
	}

	screen, err := arcdial.NewScreen(nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.EnterRawMode(); err != nil {
		log.Fatal(err)
	}
	defer screen.ExitRawMode()

	volume := arcdial.NewValue(30)

	cfg := arcdial.DefaultConfig()
	cfg.LargeTickFrequency = 5

	picker := arcdial.New(0, 100, volume).
		Config(cfg).
		Label(func(v int) string { return fmt.Sprintf("%d%%", v) })

	size := screen.Size()
	picker.SetConstraints(size.Width, size.Height)

	// Raw stdin bytes; h/l scroll, q quits.
	input := make(chan byte, 16)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil || n == 0 {
				close(input)
				return
			}
			input <- buf[0]
		}
	}()

	idle := time.NewTimer(idleDelay)
	idle.Stop()

	for {
		picker.Step()
		screen.Clear()
		picker.Render(screen.Buffer(), 0, 0)
		screen.Flush()

		select {
		case b, ok := <-input:
			if !ok {
				return
			}
			switch b {
			case 'q', 3: // q or ctrl+c
				return
			case 'h':
				picker.ScrollBy(-arcdial.TickSlotWidth)
				idle.Reset(idleDelay)
			case 'l':
				picker.ScrollBy(arcdial.TickSlotWidth)
				idle.Reset(idleDelay)
			}
		case <-idle.C:
			picker.ScrollIdle()
		case sz := <-screen.ResizeChan():
			picker.SetConstraints(sz.Width, sz.Height)
		}
	}
}
