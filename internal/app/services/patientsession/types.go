package patientsession

import (
	"sparrc-service/internal/pkg/constvars"
	"sparrc-service/internal/pkg/exceptions"
	"strings"
	"time"
)

// State is the lifecycle of the session store. Refreshing is not a State:
// a refresh keeps the store in StateReady with IsRefreshing raised, so a
// failed refresh can never discard the record already on screen.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

type Sender string

const (
	SenderBot  Sender = Sender(constvars.MessageSenderBot)
	SenderUser Sender = Sender(constvars.MessageSenderUser)
)

// Message is one line of the coaching conversation. Bot messages arrive
// with the patient load; user messages are appended locally only.
type Message struct {
	ID     int64
	Sender Sender
	Text   string
}

type Appointment struct {
	ID               int64
	Reason           string
	ScheduledAt      time.Time
	ConsultationType string
	Branch           string
	Status           string
}

// StatusIs compares case-insensitively; the status vocabulary is an open
// set assigned by the server.
func (a Appointment) StatusIs(status string) bool {
	return strings.EqualFold(strings.TrimSpace(a.Status), status)
}

func (a Appointment) IsConfirmed() bool {
	return a.StatusIs(constvars.AppointmentStatusConfirmed)
}

func (a Appointment) IsWaitingForConfirmation() bool {
	return a.StatusIs(constvars.AppointmentStatusWaitingForConfirmation) ||
		a.StatusIs(constvars.AppointmentStatusPending)
}

type Profile struct {
	Name         string
	Email        string
	MobileNumber string
	Gender       string
	Occupation   string
	Address      string
}

// PatientRecord is the authoritative snapshot of one patient. The store is
// its sole writer; consumers only ever see deep copies.
type PatientRecord struct {
	ID             int64
	Profile        Profile
	DoctorID       int64
	DoctorName     string
	Specialization string
	Appointments   []Appointment
	Conversation   []Message
}

func (r *PatientRecord) Clone() *PatientRecord {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Appointments = make([]Appointment, len(r.Appointments))
	copy(clone.Appointments, r.Appointments)
	clone.Conversation = make([]Message, len(r.Conversation))
	copy(clone.Conversation, r.Conversation)
	return &clone
}

// ProfilePatch carries the editable profile fields. Name and mobile number
// must be non-empty before any save reaches the network.
type ProfilePatch struct {
	Name         string `validate:"required"`
	Email        string `validate:"omitempty,email"`
	MobileNumber string `validate:"required"`
	Gender       string
	Occupation   string
}

type BookingRequest struct {
	Reason           string    `validate:"required"`
	ScheduledAt      time.Time `validate:"required"`
	ConsultationType string    `validate:"omitempty,oneof=in-person online"`
	Branch           string    `validate:"required"`
}

// Snapshot is an immutable view handed to subscribers. Busy flags are
// scoped per operation so independent operations surface independently.
type Snapshot struct {
	State                State
	Record               *PatientRecord
	LastError            *exceptions.CustomError
	IsLoadingInitial     bool
	IsRefreshing         bool
	IsSavingProfile      bool
	IsBookingAppointment bool
}

// PartitionAppointments splits by scheduled time relative to now; ordering
// within each half follows the input order.
func PartitionAppointments(appointments []Appointment, now time.Time) (upcoming, past []Appointment) {
	upcoming = []Appointment{}
	past = []Appointment{}
	for _, appointment := range appointments {
		if appointment.ScheduledAt.Before(now) {
			past = append(past, appointment)
		} else {
			upcoming = append(upcoming, appointment)
		}
	}
	return upcoming, past
}
