package domain

import "time"

// Generic wording used when a subscription has no campaign or the campaign
// has no configuration.
const (
	DefaultHeaderText = "Manage your email subscription"
	DefaultFooterText = "You can change this preference at any time."
	DefaultYesText    = "YES"
	DefaultNoText     = "NO"
)

// CampaignConfig carries the display wording of a campaign. Rows are created
// administratively and are read-only for request handling.
type CampaignConfig struct {
	ID         int64
	CampaignID string
	HeaderText string
	FooterText string
	YesText    string // label of the "stay subscribed" choice
	NoText     string // label of the "unsubscribe" choice
	CreatedAt  time.Time
}

// GenericCampaignConfig returns the wording shown when no campaign
// configuration applies.
func GenericCampaignConfig() CampaignConfig {
	return CampaignConfig{
		HeaderText: DefaultHeaderText,
		FooterText: DefaultFooterText,
		YesText:    DefaultYesText,
		NoText:     DefaultNoText,
	}
}
