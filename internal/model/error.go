package model

import "fmt"

type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthenticationError is returned when the refresh-token exchange with the
// identity provider fails. It never carries the credentials themselves.
type AuthenticationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// UpstreamError is returned when the forwarded TrainerCentral call could not
// be completed at the transport level. Non-2xx upstream answers are not an
// UpstreamError, they are relayed to the caller verbatim.
type UpstreamError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
