package responses

type Appointment struct {
	ID               int64  `json:"id"`
	Reason           string `json:"reason"`
	Date             string `json:"date"`
	ConsultationType string `json:"consultation_type,omitempty"`
	Branch           string `json:"branch,omitempty"`
	Status           string `json:"status"`
}

type CreateAppointment struct {
	Message       string `json:"message"`
	AppointmentID int64  `json:"appointmentId"`
}
