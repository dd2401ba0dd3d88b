package requests

// CreateAppointment is the body of POST /api/appointments. Date is an
// ISO-8601 timestamp; the server persists it in SQL datetime format and
// assigns the status itself.
type CreateAppointment struct {
	PatientID        int64  `json:"patientId" validate:"required,gt=0"`
	DoctorID         int64  `json:"doctorId" validate:"required,gt=0"`
	Reason           string `json:"reason" validate:"required"`
	Date             string `json:"date" validate:"required"`
	ConsultationType string `json:"consultationType" validate:"omitempty,oneof=in-person online"`
	Branch           string `json:"branch" validate:"required"`
}
