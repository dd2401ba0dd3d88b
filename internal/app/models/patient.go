package models

import (
	"sparrc-service/internal/pkg/dto/responses"
)

// PatientInfo is one row of sparrc_patient_info joined with the assigned
// doctor's row from sparrc_doctor_info.
type PatientInfo struct {
	ID             int64
	PatientName    string
	Email          string
	MobileNumber   string
	Gender         string
	Occupation     string
	Address        string
	DoctorID       int64
	DoctorName     string
	Specialization string
}

func (p PatientInfo) ConvertIntoResponse() responses.Patient {
	return responses.Patient{
		ID:             p.ID,
		PatientName:    p.PatientName,
		Email:          p.Email,
		MobileNumber:   p.MobileNumber,
		Gender:         p.Gender,
		Occupation:     p.Occupation,
		Address:        p.Address,
		DoctorID:       p.DoctorID,
		DoctorName:     p.DoctorName,
		Specialization: p.Specialization,
		Appointments:   []responses.Appointment{},
		Conversations:  []responses.ChatMessage{},
	}
}
