package usecase

import "github.com/bytedance/sonic"

// TrainerCentral create responses wrap the resource, but the id key has
// moved between API revisions. Try the wrapped keys first, then top level.

type sessionEnvelope struct {
	Session struct {
		Id        string `json:"id"`
		SessionId string `json:"sessionId"`
	} `json:"session"`
	SessionId string `json:"sessionId"`
}

func sessionIdFrom(body []byte) string {
	var envelope sessionEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Session.Id != "" {
		return envelope.Session.Id
	}
	if envelope.Session.SessionId != "" {
		return envelope.Session.SessionId
	}
	return envelope.SessionId
}

type formEnvelope struct {
	Form struct {
		FormIdValue string `json:"formIdValue"`
	} `json:"form"`
	FormIdValue string `json:"formIdValue"`
}

func formIdFrom(body []byte) string {
	var envelope formEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Form.FormIdValue != "" {
		return envelope.Form.FormIdValue
	}
	return envelope.FormIdValue
}
