package models

import (
	"sparrc-service/internal/pkg/constvars"
	"sparrc-service/internal/pkg/dto/responses"
	"time"
)

type Appointment struct {
	ID               int64
	PatientID        int64
	DoctorID         int64
	Reason           string
	ScheduledAt      time.Time
	ConsultationType string
	Branch           string
	Status           string
}

func (a Appointment) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		ID:               a.ID,
		Reason:           a.Reason,
		Date:             a.ScheduledAt.UTC().Format(constvars.SQLDatetimeLayout),
		ConsultationType: a.ConsultationType,
		Branch:           a.Branch,
		Status:           a.Status,
	}
}
