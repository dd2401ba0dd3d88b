package requests

// UpdateProfile is the body of PUT /api/patient/{id}. Address is loaded
// through GET but not editable through this endpoint.
type UpdateProfile struct {
	PatientName  string `json:"patient_name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	MobileNumber string `json:"mobile_number" validate:"required,mobile_number"`
	Gender       string `json:"gender"`
	Occupation   string `json:"occupation"`
}
