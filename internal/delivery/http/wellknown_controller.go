package http

import (
	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

var trainerCentralScopes = []string{
	"TrainerCentral.sessionapi.ALL",
	"TrainerCentral.sectionapi.ALL",
	"TrainerCentral.courseapi.ALL",
	"TrainerCentral.userapi.ALL",
	"TrainerCentral.talkapi.ALL",
	"TrainerCentral.portalapi.READ",
}

// WellKnownController serves the static OAuth discovery documents so agents
// pointed at the façade can find the Zoho authorization server themselves.
type WellKnownController struct {
	Log         *zap.Logger
	Config      *koanf.Koanf
	Credentials model.Credentials
	resourceURL string
}

func NewWellKnownController(zap *zap.Logger, koanf *koanf.Koanf, credentials model.Credentials) *WellKnownController {
	resourceURL := koanf.String("RESOURCE_URL")
	if resourceURL == "" {
		resourceURL = credentials.Domain
	}

	return &WellKnownController{
		Log:         zap,
		Config:      koanf,
		Credentials: credentials,
		resourceURL: resourceURL,
	}
}

func (controller WellKnownController) GetProtectedResourceMetadata(ctx *fiber.Ctx) error {
	return util.SendSuccessResponseWithData(ctx, fiber.Map{
		"resource": controller.resourceURL,
		"authorization_servers": []string{
			controller.Credentials.AccountsURL + "/oauth/v2/auth",
		},
		"scopes_supported":       trainerCentralScopes,
		"resource_documentation": controller.resourceURL + "/docs",
	})
}

func (controller WellKnownController) GetAuthorizationServerMetadata(ctx *fiber.Ctx) error {
	accountsURL := controller.Credentials.AccountsURL

	return util.SendSuccessResponseWithData(ctx, fiber.Map{
		"issuer":                           controller.resourceURL,
		"authorization_endpoint":           accountsURL + "/oauth/v2/auth",
		"token_endpoint":                   accountsURL + "/oauth/v2/token",
		"registration_endpoint":            accountsURL + "/oauth/v2/register",
		"code_challenge_methods_supported": []string{"S256"},
		"scopes_supported":                 trainerCentralScopes,
	})
}
