package responses

// Patient is the wire shape of GET /api/patient/{id}: the joined
// patient+doctor row plus appointments and the chatbot conversation log.
// Appointments and Conversations are always present, even when empty.
type Patient struct {
	ID             int64         `json:"id"`
	PatientName    string        `json:"patient_name"`
	Email          string        `json:"email,omitempty"`
	MobileNumber   string        `json:"mobile_number"`
	Gender         string        `json:"gender,omitempty"`
	Occupation     string        `json:"occupation,omitempty"`
	Address        string        `json:"address,omitempty"`
	DoctorID       int64         `json:"doctor_id,omitempty"`
	DoctorName     string        `json:"doctor_name,omitempty"`
	Specialization string        `json:"specialization,omitempty"`
	Appointments   []Appointment `json:"appointments"`
	Conversations  []ChatMessage `json:"chatbot_conversations"`
}

type ChatMessage struct {
	ID      int64  `json:"id"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

type UpdateProfile struct {
	Message string `json:"message"`
}
