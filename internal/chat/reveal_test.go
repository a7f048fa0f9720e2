package chat_test

import (
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kamau.dev/portfolio/internal/chat"
)

func collect(ch <-chan string) []string {
	var out []string
	for p := range ch {
		out = append(out, p)
	}
	return out
}

var _ = Describe("Reveal", func() {
	It("emits strictly growing prefixes ending in the full text", func() {
		prefixes := collect(chat.Reveal(context.Background(), "Hello", 0))

		Expect(prefixes).To(Equal([]string{"H", "He", "Hel", "Hell", "Hello"}))
	})

	It("counts runes, not bytes", func() {
		prefixes := collect(chat.Reveal(context.Background(), "hi 💪", 0))

		Expect(prefixes).To(HaveLen(4))
		Expect(prefixes[3]).To(Equal("hi 💪"))
	})

	It("spreads the reveal over the total duration", func() {
		text := strings.Repeat("x", 30)
		start := time.Now()

		prefixes := collect(chat.Reveal(context.Background(), text, 300*time.Millisecond))

		elapsed := time.Since(start)
		Expect(prefixes).To(HaveLen(30))
		Expect(prefixes[29]).To(Equal(text))
		Expect(elapsed).To(BeNumerically(">=", 280*time.Millisecond))
		Expect(elapsed).To(BeNumerically("<", time.Second))
	})

	It("stops early when cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		ch := chat.Reveal(ctx, strings.Repeat("x", 100), time.Second)

		Expect(<-ch).To(Equal("x"))
		cancel()

		rest := collect(ch)
		Expect(len(rest)).To(BeNumerically("<", 99))
	})

	It("closes immediately for empty text", func() {
		Expect(collect(chat.Reveal(context.Background(), "", time.Second))).To(BeEmpty())
	})
})
