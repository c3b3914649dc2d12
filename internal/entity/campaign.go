package entity

// CampaignPayload is the transient aggregate posted to the user-configured
// campaign webhook. It exists only for the duration of one dispatch; field
// names are part of the webhook contract.
type CampaignPayload struct {
	UserID            string `json:"userId"`
	LinkedInAccountID string `json:"linkedinAccountId"`
	Leads             []Lead `json:"leads"`
	MessageTemplate   string `json:"messageTemplate"`
	DelaySeconds      int    `json:"delaySeconds"`
	CampaignName      string `json:"campaignName"`
}

// SearchPayload is posted to the lead-search webhook.
type SearchPayload struct {
	Region   string   `json:"region"`
	Industry string   `json:"industry"`
	Keywords []string `json:"keywords"`
	Campaign string   `json:"campaign"`
}
