package usecase

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/ferdian3456/tcbridge/internal/constant"
	"github.com/ferdian3456/tcbridge/internal/model"
	"github.com/ferdian3456/tcbridge/internal/repository"
	"github.com/ferdian3456/tcbridge/internal/util"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// Live workshop sessions in TrainerCentral.
const (
	deliveryModeLive           = 1
	deliveryModeGlobalWorkshop = 3
)

// WorkshopUsecase covers both course-scoped live sessions and the global
// workshops that learners register for without course enrollment.
type WorkshopUsecase struct {
	TrainerCentralRepository *repository.TrainerCentralRepository
	TokenUsecase             *TokenUsecase
	Log                      *zap.Logger
	Config                   *koanf.Koanf
}

func NewWorkshopUsecase(trainerCentralRepository *repository.TrainerCentralRepository, tokenUsecase *TokenUsecase, zap *zap.Logger, koanf *koanf.Koanf) *WorkshopUsecase {
	return &WorkshopUsecase{
		TrainerCentralRepository: trainerCentralRepository,
		TokenUsecase:             tokenUsecase,
		Log:                      zap,
		Config:                   koanf,
	}
}

func (usecase *WorkshopUsecase) CreateCourseLiveSession(ctx context.Context, courseId string, payload model.CourseLiveCreateRequest) (*model.UpstreamResult, error) {
	startMs, endMs, err := scheduleWindow(payload.StartTime, payload.EndTime)
	if err != nil {
		return nil, err
	}

	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(map[string]any{
		"session": map[string]any{
			"name":             payload.Name,
			"description":      payload.DescriptionHTML,
			"courseId":         courseId,
			"deliveryMode":     deliveryModeLive,
			"scheduledTime":    startMs,
			"scheduledEndTime": endMs,
		},
	})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPost, "course/"+courseId+"/sessions.json", nil, body)
}

func (usecase *WorkshopUsecase) ListCourseLiveSessions(ctx context.Context, courseId string, query url.Values) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodGet, "course/"+courseId+"/sessions.json", query, nil)
}

func (usecase *WorkshopUsecase) DeleteLiveSession(ctx context.Context, sessionId string) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodDelete, "sessions/"+sessionId+".json", nil, nil)
}

// InviteLearner targets either a course or one of its live sessions,
// whichever id the caller supplied.
func (usecase *WorkshopUsecase) InviteLearner(ctx context.Context, payload model.InviteLearnerRequest) (*model.UpstreamResult, error) {
	if payload.CourseID == "" && payload.SessionID == "" {
		return nil, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Either course_id or session_id is required",
			Param:   "course_id",
		}
	}

	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	learner := map[string]any{
		"email":     payload.Email,
		"firstName": payload.FirstName,
		"lastName":  payload.LastName,
	}
	if payload.IsAccessGranted != nil {
		learner["isAccessGranted"] = *payload.IsAccessGranted
	} else {
		learner["isAccessGranted"] = true
	}
	if payload.ExpiryTime != nil {
		learner["expiryTime"] = *payload.ExpiryTime
	}
	if payload.ExpiryDuration != "" {
		learner["expiryDuration"] = payload.ExpiryDuration
	}

	body, err := sonic.Marshal(map[string]any{"learner": learner})
	if err != nil {
		return nil, err
	}

	resourcePath := "courses/" + payload.CourseID + "/learners.json"
	if payload.CourseID == "" {
		resourcePath = "sessions/" + payload.SessionID + "/learners.json"
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPost, resourcePath, nil, body)
}

func (usecase *WorkshopUsecase) CreateGlobalWorkshop(ctx context.Context, payload model.GlobalWorkshopCreateRequest) (*model.UpstreamResult, error) {
	startMs, endMs, err := scheduleWindow(payload.StartTime, payload.EndTime)
	if err != nil {
		return nil, err
	}

	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(map[string]any{
		"session": map[string]any{
			"name":             payload.Name,
			"description":      payload.DescriptionHTML,
			"deliveryMode":     deliveryModeGlobalWorkshop,
			"scheduledTime":    startMs,
			"scheduledEndTime": endMs,
		},
	})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPost, "sessions.json", nil, body)
}

func (usecase *WorkshopUsecase) UpdateWorkshop(ctx context.Context, sessionId string, updates map[string]any) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(map[string]any{"session": updates})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPut, "sessions/"+sessionId+".json", nil, body)
}

func (usecase *WorkshopUsecase) ListGlobalWorkshops(ctx context.Context, query url.Values) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodGet, "sessions.json", query, nil)
}

// CreateOccurrence schedules one more run (a "talk") of a recurring workshop.
func (usecase *WorkshopUsecase) CreateOccurrence(ctx context.Context, payload model.OccurrenceCreateRequest) (*model.UpstreamResult, error) {
	if payload.SessionID == "" {
		return nil, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "sessionId is required to not be empty",
			Param:   "sessionId",
		}
	}

	startMs, endMs, err := scheduleWindow(payload.ScheduledTime, payload.ScheduledEndTime)
	if err != nil {
		return nil, err
	}

	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	talk := map[string]any{
		"scheduledTime":    startMs,
		"scheduledEndTime": endMs,
	}
	if payload.DurationTime != nil {
		talk["durationTime"] = *payload.DurationTime
	}
	if payload.Recurrence != nil {
		talk["recurrence"] = payload.Recurrence
	}

	body, err := sonic.Marshal(map[string]any{"talk": talk})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPost, "sessions/"+payload.SessionID+"/talks.json", nil, body)
}

func (usecase *WorkshopUsecase) UpdateOccurrence(ctx context.Context, talkId string, updates map[string]any) (*model.UpstreamResult, error) {
	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(map[string]any{"talk": updates})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPut, "talks/"+talkId+".json", nil, body)
}

func (usecase *WorkshopUsecase) InviteWorkshopUser(ctx context.Context, sessionId string, email string, role int, source int) (*model.UpstreamResult, error) {
	if email == "" {
		return nil, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "email is required to not be empty",
			Param:   "email",
		}
	}

	token, err := usecase.TokenUsecase.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(map[string]any{
		"user": map[string]any{
			"email":  email,
			"role":   role,
			"source": source,
		},
	})
	if err != nil {
		return nil, err
	}

	return usecase.TrainerCentralRepository.Forward(ctx, token, http.MethodPost, "sessions/"+sessionId+"/users.json", nil, body)
}

// scheduleWindow converts a start/end pair of wrapper-format dates, failing
// with a ValidationError naming the offending field.
func scheduleWindow(startTime string, endTime string) (int64, int64, error) {
	startMs, err := util.DateToEpochMillis(startTime)
	if err != nil {
		return 0, 0, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "start_time must use the format DD-MM-YYYY HH:MMAM/PM",
			Param:   "start_time",
		}
	}
	endMs, err := util.DateToEpochMillis(endTime)
	if err != nil {
		return 0, 0, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "end_time must use the format DD-MM-YYYY HH:MMAM/PM",
			Param:   "end_time",
		}
	}
	if endMs < startMs {
		return 0, 0, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "end_time must not be before start_time",
			Param:   "end_time",
		}
	}
	return startMs, endMs, nil
}
