package read

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
	"github.com/magabrotheeeer/member-hub/internal/models"
)

// MockService реализует интерфейс read.Service для типов участников.
type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, id string) (models.MemberType, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.MemberType), args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение",
			id:   "basic",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "basic").
					Return(models.MemberType{ID: "basic", Discount: 0, MonthPostsLimit: 20}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"id":"basic","discount":0,"monthPostsLimit":20}}`,
		},
		{
			name: "запись не найдена",
			id:   "platinum",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "platinum").
					Return(models.MemberType{}, apperr.NotFound("the member type with id platinum not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"the member type with id platinum not found"}`,
		},
		{
			name: "ошибка сервиса",
			id:   "basic",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "basic").Return(models.MemberType{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not read member type"}`,
		},
		{
			name:           "пустой id",
			id:             "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode id from url"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New[models.MemberType](logger, mockService, "member type")

			req := httptest.NewRequest(http.MethodGet, "/member-types/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
