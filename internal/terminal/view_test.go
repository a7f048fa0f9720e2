package terminal_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kamau.dev/portfolio/internal/catalog"
	"kamau.dev/portfolio/internal/chat"
	"kamau.dev/portfolio/internal/model"
	"kamau.dev/portfolio/internal/terminal"
)

type stubRelay struct {
	reply string
}

func (s stubRelay) Ask(context.Context, []model.Message) (string, error) {
	return s.reply, nil
}

var _ = Describe("View", func() {
	var (
		out  *bytes.Buffer
		view *terminal.View
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		view = terminal.NewView(out)
	})

	It("prints a revealed reply once, followed by its panel", func() {
		ctrl := chat.NewController(stubRelay{reply: "Here is my work"}, view, chat.Options{})

		Expect(ctrl.Submit(context.Background(), "show me your projects")).To(Succeed())

		text := out.String()
		Expect(text).To(ContainSubstring("show me your projects"))
		Expect(text).To(ContainSubstring("Here is my work\n"))
		Expect(bytes.Count(out.Bytes(), []byte("Here is my work"))).To(Equal(1))
		Expect(text).To(ContainSubstring("thinking..."))
		Expect(text).To(ContainSubstring(catalog.Projects()[0].Title))
	})

	It("ends a cancelled reveal on its own line", func() {
		e := chat.Entry{Message: model.Message{Role: model.RoleAssistant, Content: "Here is my work"}}

		view.MessageAppended(e)
		view.RevealProgress(e, "Here")
		view.RevealAborted(e)
		out.WriteString("Goodbye!")

		Expect(out.String()).To(HaveSuffix("Here\nGoodbye!"))
		Expect(out.String()).NotTo(ContainSubstring("is my work"))
	})

	It("renders the contact card", func() {
		card := terminal.RenderContact(catalog.ContactMethods())

		Expect(card).To(ContainSubstring("kamaunewton78@gmail.com"))
		Expect(card).To(ContainSubstring("Usually responds within 24 hours"))
	})

	It("numbers suggestions from one", func() {
		Expect(terminal.RenderSuggestions([]string{"a", "b"})).To(ContainSubstring("2. b"))
	})

	DescribeTable("picks an orb glyph",
		func(a chat.Activity, glyph string) {
			Expect(terminal.Orb(a)).To(Equal(glyph))
		},
		Entry("idle", chat.Activity{}, "○"),
		Entry("typing", chat.Activity{Active: true}, "●"),
		Entry("awaiting", chat.Activity{Active: true, Listening: true}, "◎"),
		Entry("revealing", chat.Activity{Listening: true, Pulsing: true}, "◉"),
	)
})
