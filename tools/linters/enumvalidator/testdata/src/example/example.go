package example

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ErrorKind string

const (
	KindUpstream ErrorKind = "upstream"
)

type Panel string

const (
	PanelNone     Panel = "none"
	PanelProjects Panel = "projects"
)

type Message struct {
	Role    Role
	Content string
}

type Error struct {
	Kind ErrorKind
}

type Reply struct {
	Text  string
	Panel Panel
}

func bad() {
	m := &Message{}
	m.Role = "system" // want "enum field Role assigned string literal"

	e := &Error{}
	e.Kind = "timeout" // want "enum field Kind assigned string literal"

	_ = Reply{Text: "hi", Panel: "contact"} // want "enum field Panel assigned string literal"
	_ = &Message{Role: "user", Content: "hi"} // want "enum field Role assigned string literal"
}

func good() {
	m := &Message{}
	m.Role = RoleAssistant // OK: using constant
	m.Content = "hello"    // OK: not an enum

	e := &Error{Kind: KindUpstream}
	_ = e

	_ = Reply{Text: "hi", Panel: PanelProjects}
}

func alsoGood() {
	// OK: Variable, not literal
	panel := PanelNone
	r := Reply{Panel: panel}
	_ = r
}
