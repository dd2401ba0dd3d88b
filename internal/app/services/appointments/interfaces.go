package appointments

import (
	"context"
	"sparrc-service/internal/app/models"
	"sparrc-service/internal/pkg/dto/requests"
	"sparrc-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error)
}

type AppointmentRepository interface {
	InsertAppointment(ctx context.Context, appointment *models.Appointment) (int64, error)
}
