package entity

// Lead is one prospect collected for an outreach campaign, produced by a CSV
// upload or by the search workflow. Order of a collected sequence is preserved
// for display only.
type Lead struct {
	Company    string `json:"company"`
	Name       string `json:"name"`
	ProfileURL string `json:"profile_url"`
	Headline   string `json:"headline,omitempty"`
	Location   string `json:"location,omitempty"`
}

func (l Lead) Valid() bool {
	return l.ProfileURL != "" && (l.Name != "" || l.Company != "")
}
