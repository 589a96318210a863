package model

// Credentials holds the OAuth client credentials and org coordinates for one
// TrainerCentral organization. Built once at startup, immutable afterwards.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	OrgID        string
	Domain       string
	AccountsURL  string
}

// BaseURL is the root of every TrainerCentral resource path,
// e.g. https://myorg.trainercentral.com/api/v4/60012345678
func (c Credentials) BaseURL() string {
	return c.Domain + "/api/v4/" + c.OrgID
}

// TokenURL is the Zoho accounts endpoint for the refresh-token grant.
func (c Credentials) TokenURL() string {
	return c.AccountsURL + "/oauth/v2/token"
}
