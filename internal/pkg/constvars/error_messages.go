package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"numeric":       "must be a number",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"mobile_number": "must be a valid mobile number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
}

// Client-facing messages
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please check your input"
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application, please contact our admin"
	ErrClientServerLongRespond             = "Server takes too long to respond, please check your connection and try again"
	ErrClientCannotReachServer             = "We cannot reach the server, please check your connection"
	ErrClientPatientNotFound               = "We cannot find the requested patient"
	ErrClientProfileIncomplete             = "Patient name and mobile number cannot be empty"
	ErrClientAppointmentIncomplete         = "Appointment reason and branch cannot be empty"
	ErrClientSessionNotLoaded              = "No patient is loaded in this session yet"
	ErrClientSessionDisposed               = "This session has been closed"
)

// Developer-facing messages
const (
	ErrDevValidationFailed         = "Validation failed on request payload"
	ErrDevURLParamIDValidation     = "URL parameter %s is not a valid identifier"
	ErrDevCannotParseJSON          = "Cannot parse JSON payload"
	ErrDevCannotMarshalJSON        = "Cannot marshal payload to JSON"
	ErrDevCannotParseDate          = "Cannot parse date value"
	ErrDevCreateHTTPRequest        = "Cannot build the outgoing HTTP request"
	ErrDevSendHTTPRequest          = "Cannot send the outgoing HTTP request"
	ErrDevDecodeResponse           = "Cannot decode %s response body"
	ErrDevDeadlineExceeded         = "Request deadline exceeded"
	ErrDevPatientNotFound          = "Patient does not exist in the database"
	ErrDevMySQLQuery               = "MySQL query failed"
	ErrDevMySQLExec                = "MySQL statement execution failed"
	ErrDevRemoteServerError        = "Remote patient API responded with a server error"
	ErrDevSessionNotLoaded         = "Session store has no loaded patient record"
	ErrDevSessionDisposed          = "Session store has been disposed"
	ErrDevProfileRequiredFields    = "Profile patch is missing name or mobile number"
	ErrDevAppointmentRequiredField = "Appointment request is missing reason or branch"
)
