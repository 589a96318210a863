package config

import (
	"strings"

	"github.com/ferdian3456/tcbridge/internal/model"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const defaultAccountsURL = "https://accounts.zoho.in"

// LoadCredentials builds the immutable credential set from configuration.
// Every upstream call depends on these, so a missing key is fatal.
func LoadCredentials(config *koanf.Koanf, log *zap.Logger) model.Credentials {
	credentials := model.Credentials{
		ClientID:     config.String("CLIENT_ID"),
		ClientSecret: config.String("CLIENT_SECRET"),
		RefreshToken: config.String("REFRESH_TOKEN"),
		OrgID:        config.String("ORG_ID"),
		Domain:       strings.TrimSuffix(config.String("DOMAIN"), "/"),
		AccountsURL:  strings.TrimSuffix(config.String("ACCOUNTS_URL"), "/"),
	}

	if credentials.AccountsURL == "" {
		credentials.AccountsURL = defaultAccountsURL
	}

	var missing []string
	if credentials.ClientID == "" {
		missing = append(missing, "CLIENT_ID")
	}
	if credentials.ClientSecret == "" {
		missing = append(missing, "CLIENT_SECRET")
	}
	if credentials.RefreshToken == "" {
		missing = append(missing, "REFRESH_TOKEN")
	}
	if credentials.OrgID == "" {
		missing = append(missing, "ORG_ID")
	}
	if credentials.Domain == "" {
		missing = append(missing, "DOMAIN")
	}

	if len(missing) > 0 {
		log.Fatal("missing required trainercentral configuration", zap.Strings("keys", missing))
	}

	return credentials
}
