package patients

import (
	"context"
	"sparrc-service/internal/pkg/constvars"
	"sparrc-service/internal/pkg/dto/requests"
	"sparrc-service/internal/pkg/dto/responses"
	"sparrc-service/internal/pkg/exceptions"
	"sparrc-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository PatientRepository, logger *zap.Logger) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
	}
}

func (uc *patientUsecase) FetchPatient(ctx context.Context, patientID int64) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	appointments, err := uc.PatientRepository.ListAppointmentsByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.PatientRepository.ListChatMessagesByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	response := patient.ConvertIntoResponse()
	for _, appointment := range appointments {
		response.Appointments = append(response.Appointments, appointment.ConvertIntoResponse())
	}
	for _, message := range messages {
		response.Conversations = append(response.Conversations, message.ConvertIntoResponse())
	}

	uc.Log.Info("patientUsecase.FetchPatient succeeded",
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return &response, nil
}

func (uc *patientUsecase) UpdateProfile(ctx context.Context, patientID int64, request *requests.UpdateProfile) (*responses.UpdateProfile, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	updated, err := uc.PatientRepository.UpdatePatientProfile(ctx, patientID, request)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	uc.Log.Info("patientUsecase.UpdateProfile succeeded",
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return &responses.UpdateProfile{Message: constvars.PatientProfileUpdateSuccess}, nil
}
