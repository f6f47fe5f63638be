// Package spinner renders an animated progress line while a long batch
// of games plays out.
package spinner

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Start displays an animated progress line for a batch of the given
// size on w. Call the returned function to stop the animation and
// clear the line.
func Start(w io.Writer, games int) (stop func()) {
	printer := message.NewPrinter(language.English)
	began := time.Now()

	done := make(chan struct{})
	cleared := make(chan struct{})
	var stopOnce sync.Once
	go func() {
		i := 0
		width := 0
		for {
			select {
			case <-done:
				fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", width)) //nolint:errcheck
				close(cleared)
				return
			case <-time.After(80 * time.Millisecond):
				line := printer.Sprintf("%s playing %d games (%.1fs)",
					frames[i%len(frames)], games, time.Since(began).Seconds())
				// Byte length over-counts the braille frame, which only
				// over-clears. Never under-clear a shrinking line.
				if len(line) > width {
					width = len(line)
				}
				fmt.Fprintf(w, "\r%s", line) //nolint:errcheck
				i++
			}
		}
	}()
	return func() {
		stopOnce.Do(func() {
			close(done)
		})
		<-cleared
	}
}
