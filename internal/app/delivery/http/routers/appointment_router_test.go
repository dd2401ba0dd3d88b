package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sparrc-service/internal/app/delivery/http/middlewares"
	"sparrc-service/internal/app/services/appointments"
	"sparrc-service/internal/pkg/dto/requests"
	"sparrc-service/internal/pkg/dto/responses"
	"sparrc-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CreateAppointment), args.Error(1)
}

func newAppointmentTestRouter(mockAppointmentUsecase *MockAppointmentUsecase) *chi.Mux {
	logger := zap.NewNop()

	appointmentController := appointments.NewAppointmentController(logger, mockAppointmentUsecase, 10*time.Second)

	middlewareInstance := &middlewares.Middlewares{
		Log: logger,
	}

	router := chi.NewRouter()
	attachAppointmentRoutes(router, middlewareInstance, appointmentController)
	return router
}

func TestAppointmentRouter_CreateAppointment(t *testing.T) {

	t.Run("Valid Booking", func(t *testing.T) {
		mockAppointmentUsecase := new(MockAppointmentUsecase)
		router := newAppointmentTestRouter(mockAppointmentUsecase)

		mockAppointmentUsecase.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*requests.CreateAppointment")).
			Return(&responses.CreateAppointment{
				Message:       "appointment booked successfully",
				AppointmentID: 42,
			}, nil)

		requestBody := requests.CreateAppointment{
			PatientID: 1,
			DoctorID:  1,
			Reason:    "Follow-up",
			Date:      "2025-09-16T11:00:00Z",
			Branch:    "Chennai",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "should return 201 Created for valid booking")

		var body responses.CreateAppointment
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, int64(42), body.AppointmentID)
		mockAppointmentUsecase.AssertExpectations(t)
	})

	t.Run("Incomplete Booking", func(t *testing.T) {
		mockAppointmentUsecase := new(MockAppointmentUsecase)
		router := newAppointmentTestRouter(mockAppointmentUsecase)

		mockAppointmentUsecase.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*requests.CreateAppointment")).
			Return(nil, exceptions.ErrAppointmentRequiredFields(errors.New("reason is required")))

		requestBody := requests.CreateAppointment{PatientID: 1, DoctorID: 1}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for incomplete booking")
		mockAppointmentUsecase.AssertExpectations(t)
	})

	t.Run("Invalid JSON Body", func(t *testing.T) {
		mockAppointmentUsecase := new(MockAppointmentUsecase)
		router := newAppointmentTestRouter(mockAppointmentUsecase)

		req := httptest.NewRequest("POST", "/", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for invalid JSON")
		mockAppointmentUsecase.AssertNotCalled(t, "CreateAppointment")
	})
}
