package patients

import (
	"context"
	"sparrc-service/internal/app/models"
	"sparrc-service/internal/pkg/dto/requests"
	"sparrc-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	FetchPatient(ctx context.Context, patientID int64) (*responses.Patient, error)
	UpdateProfile(ctx context.Context, patientID int64, request *requests.UpdateProfile) (*responses.UpdateProfile, error)
}

type PatientRepository interface {
	FindPatientByID(ctx context.Context, patientID int64) (*models.PatientInfo, error)
	UpdatePatientProfile(ctx context.Context, patientID int64, request *requests.UpdateProfile) (bool, error)
	ListAppointmentsByPatientID(ctx context.Context, patientID int64) ([]models.Appointment, error)
	ListChatMessagesByPatientID(ctx context.Context, patientID int64) ([]models.ChatMessage, error)
}
