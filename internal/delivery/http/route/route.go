package route

import (
	"github.com/ferdian3456/tcbridge/internal/delivery/http"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                  *fiber.App
	CourseController     *http.CourseController
	ChapterController    *http.ChapterController
	LessonController     *http.LessonController
	TestController       *http.TestController
	AssignmentController *http.AssignmentController
	WorkshopController   *http.WorkshopController
	WellKnownController  *http.WellKnownController
}

func (c *RouteConfig) SetupRoute() {
	c.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	courseGroup := c.App.Group("/courses")
	courseGroup.Post("/", c.CourseController.CreateCourse)
	courseGroup.Get("/", c.CourseController.ListCourses)
	courseGroup.Get("/:courseId", c.CourseController.GetCourse)
	courseGroup.Put("/:courseId", c.CourseController.UpdateCourse)
	courseGroup.Delete("/:courseId", c.CourseController.DeleteCourse)

	chapterGroup := c.App.Group("/chapters")
	chapterGroup.Post("/", c.ChapterController.CreateChapter)
	chapterGroup.Put("/:courseId/sections/:sectionId", c.ChapterController.UpdateChapter)
	chapterGroup.Delete("/:courseId/sections/:sectionId", c.ChapterController.DeleteChapter)

	lessonGroup := c.App.Group("/lessons")
	lessonGroup.Post("/create", c.LessonController.CreateLesson)
	lessonGroup.Put("/:sessionId", c.LessonController.UpdateLesson)
	lessonGroup.Delete("/:sessionId", c.LessonController.DeleteLesson)

	testGroup := c.App.Group("/tests")
	testGroup.Post("/create_full", c.TestController.CreateFullTest)
	testGroup.Post("/create_form", c.TestController.CreateTestForm)
	testGroup.Post("/add_questions", c.TestController.AddQuestions)
	testGroup.Get("/course/:courseId/sessions", c.TestController.GetCourseSessions)

	assignmentGroup := c.App.Group("/assignments")
	assignmentGroup.Post("/create", c.AssignmentController.CreateAssignment)
	assignmentGroup.Delete("/:sessionId", c.AssignmentController.DeleteAssignment)

	courseLiveGroup := c.App.Group("/course")
	courseLiveGroup.Post("/invite_learner", c.WorkshopController.InviteLearner)
	courseLiveGroup.Delete("/live_sessions/:sessionId", c.WorkshopController.DeleteCourseLiveSession)
	courseLiveGroup.Post("/:courseId/live_sessions", c.WorkshopController.CreateCourseLiveSession)
	courseLiveGroup.Get("/:courseId/live_sessions", c.WorkshopController.ListCourseLiveSessions)

	workshopGroup := c.App.Group("/global_workshops")
	workshopGroup.Post("/create", c.WorkshopController.CreateGlobalWorkshop)
	workshopGroup.Get("/", c.WorkshopController.ListGlobalWorkshops)
	workshopGroup.Post("/occurrence", c.WorkshopController.CreateOccurrence)
	workshopGroup.Put("/occurrence/:talkId", c.WorkshopController.UpdateOccurrence)
	workshopGroup.Post("/:sessionId/invite", c.WorkshopController.InviteWorkshopUser)
	workshopGroup.Put("/:sessionId", c.WorkshopController.UpdateGlobalWorkshop)

	wellKnownGroup := c.App.Group("/.well-known")
	wellKnownGroup.Get("/oauth-protected-resource", c.WellKnownController.GetProtectedResourceMetadata)
	wellKnownGroup.Get("/oauth-authorization-server", c.WellKnownController.GetAuthorizationServerMetadata)
	wellKnownGroup.Get("/openid-configuration", c.WellKnownController.GetAuthorizationServerMetadata)
}
