// Package catalog is the static portfolio content rendered next to assistant replies.
package catalog

// Project is one entry of the project showcase.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Tech         []string `json:"tech"`
	Achievements []string `json:"achievements"`
	Category     string   `json:"category"`
	Year         string   `json:"year"`
	Users        string   `json:"users,omitempty"`
	Impact       string   `json:"impact,omitempty"`
}

// ContactMethod is one row of the contact card.
type ContactMethod struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Value string `json:"value"`
	URL   string `json:"url"`
	Note  string `json:"note"`
}

var projects = []Project{
	{
		ID:          "wizglobal",
		Title:       "Wizglobal Wealth Management System",
		Description: "A secure, high-performing wealth management platform built with Laravel and JavaScript, handling fund administration, compliance, reporting, and end-of-day processes for leading insurers in East Africa.",
		Tech:        []string{"Laravel", "JavaScript", "Livewire", "MySQL", "PDF Generation"},
		Achievements: []string{
			"Used by top insurance companies in East Africa",
			"Integrated fund dealing, compliance, and audit workflows",
			"Automated reporting and NAV calculations",
		},
		Category: "enterprise",
		Year:     "2021-Date",
		Users:    "Hundreds of fund managers and insurance analysts",
		Impact:   "Improved efficiency and accuracy in fund management.",
	},
	{
		ID:          "medali",
		Title:       "Medali Digital / Wikimedia Projects",
		Description: "Full-stack engineering for international fintech and enterprise clients, delivering scalable and maintainable systems.",
		Tech:        []string{"Laravel", "Vue.js", "Tailwind", "PostgreSQL"},
		Achievements: []string{
			"Delivered enterprise-grade systems under strict timelines",
			"Contributed to high-impact open source tools",
		},
		Category: "fullstack",
		Year:     "2021-2023",
		Users:    "Thousands of users across multiple platforms",
		Impact:   "Enhanced digital presence for global clients.",
	},
	{
		ID:          "moovn",
		Title:       "Moovn Technologies",
		Description: "Backend system for a ride-hailing and crowd-funding application used across East Africa. Built using Laravel with secure payment and tax modules.",
		Tech:        []string{"Laravel", "MySQL", "REST API"},
		Achievements: []string{
			"Used in Tanzania, Kenya, and Uganda",
			"Integrated secure crowdfunding features",
			"Built scalable tax-compliant backend services",
		},
		Category: "PHP",
		Year:     "2021",
		Users:    "Thousands of commuters and funders",
		Impact:   "Increased access to local transport and funding tools",
	},
	{
		ID:          "drums",
		Title:       "Drums For Africa",
		Description: "A real-time SMS platform managing over 100K users using Firebase and Node.js backend infrastructure.",
		Tech:        []string{"Node.js", "Firebase", "MongoDB", "Express"},
		Achievements: []string{
			"Handled over 100K user records efficiently",
			"Enabled real-time message delivery and tracking",
		},
		Category: "Web",
		Year:     "2019-2020",
		Users:    "100K+ SMS subscribers",
		Impact:   "SMS management tool for clients in Kenya.",
	},
}

var contactMethods = []ContactMethod{
	{Kind: "email", Label: "Email", Value: "kamaunewton78@gmail.com", URL: "mailto:kamaunewton78@gmail.com", Note: "Best for project inquiries"},
	{Kind: "linkedin", Label: "LinkedIn", Value: "linkedin.com/in/newtonkamau", URL: "https://linkedin.com/in/newtonkamau", Note: "Professional networking"},
	{Kind: "whatsapp", Label: "WhatsApp", Value: "+254 718 425 075", URL: "https://wa.me/254718425075", Note: "Quick chat & calls"},
	{Kind: "website", Label: "Portfolio", Value: "newtonkamau.github.io", URL: "https://newtonkamau.github.io/", Note: "More about my work"},
}

// Projects returns a copy of the project list in display order.
func Projects() []Project {
	out := make([]Project, len(projects))
	copy(out, projects)
	return out
}

// ContactMethods returns a copy of the contact methods in display order.
func ContactMethods() []ContactMethod {
	out := make([]ContactMethod, len(contactMethods))
	copy(out, contactMethods)
	return out
}
