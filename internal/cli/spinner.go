package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerTickInterval = 120 * time.Millisecond

var spinnerFrames = []rune{'|', '/', '-', '\\'}

// startSpinner animates a frame and label on w until the returned stop
// function runs. Callers gate it on w being a terminal; the stop function is
// safe to call more than once.
func startSpinner(w io.Writer, label string) func() {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()

		ticker := time.NewTicker(spinnerTickInterval)
		defer ticker.Stop()

		frame := 0
		for {
			fmt.Fprintf(w, "\r%c %s", spinnerFrames[frame%len(spinnerFrames)], label)
			frame++
			select {
			case <-done:
				fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", len(label)+4))
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}
