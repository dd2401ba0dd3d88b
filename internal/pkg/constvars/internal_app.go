package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	ResourcePatients     = "patients"
	ResourceAppointments = "appointments"
)

// Appointment status vocabulary is an open set; these are the values the
// server assigns and the client compares against case-insensitively.
const (
	AppointmentStatusWaitingForConfirmation = "waiting for confirmation"
	AppointmentStatusConfirmed              = "confirmed"
	AppointmentStatusPending                = "pending"
)

const (
	ConsultationTypeInPerson = "in-person"
	ConsultationTypeOnline   = "online"
)

const (
	MessageSenderBot  = "bot"
	MessageSenderUser = "user"
)

// SQLDatetimeLayout is the format appointment timestamps are persisted in;
// clients send ISO-8601 and the server converts on write.
const (
	SQLDatetimeLayout = "2006-01-02 15:04:05"
	SQLDateLayout     = "2006-01-02"
)
