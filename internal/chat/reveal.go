package chat

import (
	"context"
	"time"
)

// Reveal emits strictly growing rune prefixes of text, the last one being text itself,
// spread evenly over total. The channel is closed after the full text or as soon as ctx is
// done. An empty text closes the channel without emitting.
func Reveal(ctx context.Context, text string, total time.Duration) <-chan string {
	out := make(chan string)
	runes := []rune(text)

	go func() {
		defer close(out)
		if len(runes) == 0 {
			return
		}

		step := total / time.Duration(len(runes))
		var tick <-chan time.Time
		if step > 0 {
			ticker := time.NewTicker(step)
			defer ticker.Stop()
			tick = ticker.C
		}

		for i := 1; i <= len(runes); i++ {
			if tick != nil {
				select {
				case <-tick:
				case <-ctx.Done():
					return
				}
			}
			select {
			case out <- string(runes[:i]):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
