package chat

import (
	"strings"

	"kamau.dev/portfolio/internal/persona"
)

// Panel is the auxiliary view shown beneath an assistant message once its reveal completes.
type Panel string

const (
	PanelNone     Panel = "none"
	PanelProjects Panel = "projects"
	PanelContact  Panel = "contact"
)

// Reply is a classified assistant answer. Text never contains a marker.
type Reply struct {
	Text  string
	Panel Panel
}

// Classify decides which panel follows an assistant answer from the user's latest input and
// the raw relay result. Project intent wins over contact intent only when the user did not
// also ask for contact details; a ProjectMarker in the answer always selects the projects
// panel.
func Classify(userInput, raw string) Reply {
	input := strings.ToLower(userInput)
	asksContact := containsAny(input, persona.ContactKeywords)
	asksProjects := containsAny(input, persona.ProjectKeywords) && !asksContact

	reply := Reply{Text: stripMarkers(raw), Panel: PanelNone}
	switch {
	case strings.Contains(raw, persona.ProjectMarker) || asksProjects:
		reply.Panel = PanelProjects
	case asksContact:
		reply.Panel = PanelContact
	}
	return reply
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func stripMarkers(s string) string {
	s = strings.ReplaceAll(s, persona.ProjectMarker, "")
	s = strings.ReplaceAll(s, persona.ContactMarker, "")
	return strings.TrimSpace(s)
}
