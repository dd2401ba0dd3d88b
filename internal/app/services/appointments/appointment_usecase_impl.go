package appointments

import (
	"context"
	"sparrc-service/internal/app/models"
	"sparrc-service/internal/pkg/constvars"
	"sparrc-service/internal/pkg/dto/requests"
	"sparrc-service/internal/pkg/dto/responses"
	"sparrc-service/internal/pkg/exceptions"
	"sparrc-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	Log                   *zap.Logger
}

func NewAppointmentUsecase(appointmentRepository AppointmentRepository, logger *zap.Logger) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	scheduledAt, err := utils.ParseFlexibleTime(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	consultationType := request.ConsultationType
	if consultationType == "" {
		consultationType = constvars.ConsultationTypeInPerson
	}

	// Status is server-assigned; clients never set it directly.
	appointment := &models.Appointment{
		PatientID:        request.PatientID,
		DoctorID:         request.DoctorID,
		Reason:           request.Reason,
		ScheduledAt:      scheduledAt,
		ConsultationType: consultationType,
		Branch:           request.Branch,
		Status:           constvars.AppointmentStatusWaitingForConfirmation,
	}

	appointmentID, err := uc.AppointmentRepository.InsertAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.Int64(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &responses.CreateAppointment{
		Message:       constvars.AppointmentCreatedSuccess,
		AppointmentID: appointmentID,
	}, nil
}
