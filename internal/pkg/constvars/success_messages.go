package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient-related messages
	PatientFetchSuccess         = "patient data fetched successfully"
	PatientProfileUpdateSuccess = "patient profile updated successfully"

	// Appointment messages
	AppointmentCreatedSuccess = "appointment booked successfully"
)
