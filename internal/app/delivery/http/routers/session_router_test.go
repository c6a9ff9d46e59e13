package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codexrfa-service/internal/app/config"
	"codexrfa-service/internal/app/delivery/http/controllers"
	"codexrfa-service/internal/app/delivery/http/middlewares"
	"codexrfa-service/internal/pkg/dto/requests"
	"codexrfa-service/internal/pkg/dto/responses"
	"codexrfa-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionUsecase struct {
	mock.Mock
}

func (m *MockSessionUsecase) StartSession(ctx context.Context, request *requests.StartSession) (*responses.SessionStarted, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SessionStarted), args.Error(1)
}

func (m *MockSessionUsecase) AdvanceSession(ctx context.Context, sessionID string, request *requests.AdvanceSession) (*responses.SessionStep, error) {
	args := m.Called(ctx, sessionID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SessionStep), args.Error(1)
}

func TestSessionRouter(t *testing.T) {
	logger := zap.NewNop()

	jwtSecret := "test-session-jwt-secret"
	internalConfig := &config.InternalConfig{
		Session: config.Session{
			JWTSecret:  jwtSecret,
			TTLMinutes: 30,
		},
	}

	mockSessionUsecase := new(MockSessionUsecase)
	sessionController := controllers.NewSessionController(logger, mockSessionUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	router.Route("/d/{doctor_slug}/sessions", func(r chi.Router) {
		attachSessionStartRoutes(r, middlewareInstance, sessionController)
	})
	router.Route("/sessions", func(r chi.Router) {
		attachSessionRoutes(r, middlewareInstance, sessionController)
	})

	t.Run("start picks up the doctor slug from the path", func(t *testing.T) {
		mockSessionUsecase.On("StartSession", mock.Anything, mock.MatchedBy(func(request *requests.StartSession) bool {
			return request.DoctorSlug == "dr-asha-rao-sunrise-clinic"
		})).Return(&responses.SessionStarted{SessionToken: "token", FormID: "fever_rfa"}, nil).Once()

		body, _ := json.Marshal(requests.StartSession{
			FormID:           "fever_rfa",
			Language:         "en",
			DateOfBirth:      "2019-03-01",
			GuardianInitials: "jd",
		})
		req := httptest.NewRequest("POST", "/d/dr-asha-rao-sunrise-clinic/sessions", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockSessionUsecase.AssertExpectations(t)
	})

	t.Run("advance without a token is unauthorized", func(t *testing.T) {
		body, _ := json.Marshal(requests.AdvanceSession{QuestionID: "q1", Value: "7"})
		req := httptest.NewRequest("POST", "/sessions/answers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("advance with a garbage token is unauthorized", func(t *testing.T) {
		body, _ := json.Marshal(requests.AdvanceSession{QuestionID: "q1", Value: "7"})
		req := httptest.NewRequest("POST", "/sessions/answers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("advance with a valid token reaches the usecase", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-123", jwtSecret, 30)
		assert.NoError(t, err)

		mockSessionUsecase.On("AdvanceSession", mock.Anything, "session-123", mock.AnythingOfType("*requests.AdvanceSession")).
			Return(&responses.SessionStep{Question: &responses.QuestionView{ID: "q2"}}, nil).Once()

		body, _ := json.Marshal(requests.AdvanceSession{QuestionID: "q1", Value: "7"})
		req := httptest.NewRequest("POST", "/sessions/answers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockSessionUsecase.AssertExpectations(t)
	})
}
