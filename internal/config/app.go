package config

import (
	"net/http"

	httpdelivery "github.com/ferdian3456/tcbridge/internal/delivery/http"
	"github.com/ferdian3456/tcbridge/internal/delivery/http/route"
	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/repository"
	"github.com/ferdian3456/tcbridge/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Router      *fiber.App
	HTTPClient  *http.Client
	Log         *zap.Logger
	Config      *koanf.Koanf
	Credentials model.Credentials
}

func Server(config *ServerConfig) {
	tokenRepository := repository.NewTokenRepository(config.Log, config.HTTPClient, config.Credentials)
	tokenUsecase := usecase.NewTokenUsecase(tokenRepository, config.Log)

	trainerCentralRepository := repository.NewTrainerCentralRepository(config.Log, config.HTTPClient, config.Credentials)

	courseUsecase := usecase.NewCourseUsecase(trainerCentralRepository, tokenUsecase, config.Log, config.Config)
	courseController := httpdelivery.NewCourseController(courseUsecase, config.Log, config.Config)

	chapterUsecase := usecase.NewChapterUsecase(trainerCentralRepository, tokenUsecase, config.Log, config.Config)
	chapterController := httpdelivery.NewChapterController(chapterUsecase, config.Log, config.Config)

	lessonUsecase := usecase.NewLessonUsecase(trainerCentralRepository, tokenUsecase, config.Log, config.Config)
	lessonController := httpdelivery.NewLessonController(lessonUsecase, config.Log, config.Config)

	testUsecase := usecase.NewTestUsecase(trainerCentralRepository, tokenUsecase, config.Log, config.Config)
	testController := httpdelivery.NewTestController(testUsecase, config.Log, config.Config)

	assignmentUsecase := usecase.NewAssignmentUsecase(trainerCentralRepository, tokenUsecase, config.Log, config.Config)
	assignmentController := httpdelivery.NewAssignmentController(assignmentUsecase, config.Log, config.Config)

	workshopUsecase := usecase.NewWorkshopUsecase(trainerCentralRepository, tokenUsecase, config.Log, config.Config)
	workshopController := httpdelivery.NewWorkshopController(workshopUsecase, config.Log, config.Config)

	wellKnownController := httpdelivery.NewWellKnownController(config.Log, config.Config, config.Credentials)

	routeConfig := route.RouteConfig{
		App:                  config.Router,
		CourseController:     courseController,
		ChapterController:    chapterController,
		LessonController:     lessonController,
		TestController:       testController,
		AssignmentController: assignmentController,
		WorkshopController:   workshopController,
		WellKnownController:  wellKnownController,
	}

	routeConfig.SetupRoute()
}
