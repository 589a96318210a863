package model

import "time"

type TokenExchangeResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
	APIDomain   string `json:"api_domain"`
	Error       string `json:"error"`
}

// AccessToken is the cached result of one refresh exchange. The zero value
// means no token is held.
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}
