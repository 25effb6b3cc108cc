package models

// Section is one anchor of the single-page layout.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Step is one stage of the "how it works" section.
type Step struct {
	Number      string `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TeamMember is shown in the about section.
type TeamMember struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Experience  string `json:"experience"`
	Specialty   string `json:"specialty"`
	Description string `json:"description"`
}

// Value is one of the core values listed in the about section.
type Value struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ContactInfo is a block of the contact section.
type ContactInfo struct {
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

// CarePlan is a wig maintenance subscription tier.
type CarePlan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

// FloatingAction is an entry of the floating quick-action control.
type FloatingAction struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Target string `json:"target,omitempty"`
}

// Category is a filter chip of a catalog section.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Stat is a headline figure shown in the hero and about sections.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Link is a labelled in-page or external link.
type Link struct {
	Name string `json:"name"`
	Href string `json:"href"`
}
