package config

import (
	"net/http"
	"time"
)

// NewHTTPClient is the one outbound client shared by the token exchange and
// the upstream forwarder.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
	}
}
