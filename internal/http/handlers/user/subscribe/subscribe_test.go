package subscribe

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
	"github.com/magabrotheeeer/member-hub/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Subscribe(ctx context.Context, followerID, targetID string) (models.User, error) {
	args := m.Called(ctx, followerID, targetID)
	return args.Get(0).(models.User), args.Error(1)
}

func TestSubscribeHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		targetID       string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешная подписка",
			targetID: "u2",
			body:     `{"userId":"u1"}`,
			setupMock: func(m *MockService) {
				m.On("Subscribe", mock.Anything, "u1", "u2").Return(models.User{
					ID: "u1", FirstName: "A", LastName: "B", Email: "a@b", SubscribedToUserIDs: []string{"u2"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"id":"u1","firstName":"A","lastName":"B","email":"a@b","subscribedToUserIds":["u2"]}}`,
		},
		{
			name:     "подписка на себя",
			targetID: "u1",
			body:     `{"userId":"u1"}`,
			setupMock: func(m *MockService) {
				m.On("Subscribe", mock.Anything, "u1", "u1").
					Return(models.User{}, apperr.BadRequest("the user can't be subscribed to itself"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"the user can't be subscribed to itself"}`,
		},
		{
			name:     "пользователь не найден",
			targetID: "ghost",
			body:     `{"userId":"u1"}`,
			setupMock: func(m *MockService) {
				m.On("Subscribe", mock.Anything, "u1", "ghost").
					Return(models.User{}, apperr.NotFound("the user with id ghost not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"the user with id ghost not found"}`,
		},
		{
			name:           "нет userId",
			targetID:       "u2",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field UserID is a required field"}`,
		},
		{
			name:           "некорректный JSON",
			targetID:       "u2",
			body:           `{`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/users/"+tt.targetID+"/subscribeTo", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.targetID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
