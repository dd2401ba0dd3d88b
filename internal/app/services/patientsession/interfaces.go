package patientsession

import (
	"context"
	"sparrc-service/internal/pkg/dto/requests"
)

// PatientAPIClient is the store's only collaborator: the remote patient
// API reduced to the three operations the session needs.
type PatientAPIClient interface {
	FetchPatient(ctx context.Context, patientID int64) (*PatientRecord, error)
	UpdateProfile(ctx context.Context, patientID int64, request *requests.UpdateProfile) error
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (int64, error)
}
