package patientsession

import (
	"context"
	"errors"
	"sparrc-service/internal/pkg/constvars"
	"sparrc-service/internal/pkg/dto/requests"
	"sparrc-service/internal/pkg/exceptions"
	"sparrc-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Store owns the in-memory patient record for one session and mediates
// every read and write against the remote patient API. Writes are
// pessimistic: local state changes only after the server confirms.
//
// Responses to Load/Refresh are applied in issuance order, never completion
// order: each fetch carries a sequence number and is applied only when no
// newer fetch has been issued since. Mutations are serialized per store.
type Store struct {
	client  PatientAPIClient
	log     *zap.Logger
	timeout time.Duration

	rootCtx context.Context
	abort   context.CancelFunc

	// mutationMu queues SaveProfile/BookAppointment so two writes can never
	// interleave against the same record.
	mutationMu sync.Mutex

	mu             sync.Mutex
	disposed       bool
	state          State
	patientID      int64
	record         *PatientRecord
	lastErr        *exceptions.CustomError
	loadSeq        uint64
	loadingInitial bool
	refreshing     bool
	savingProfile  bool
	booking        bool
	listeners      map[int]func(Snapshot)
	nextListenerID int
}

func NewStore(client PatientAPIClient, logger *zap.Logger, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rootCtx, abort := context.WithCancel(context.Background())
	return &Store{
		client:    client,
		log:       logger,
		timeout:   timeout,
		rootCtx:   rootCtx,
		abort:     abort,
		state:     StateIdle,
		listeners: make(map[int]func(Snapshot)),
	}
}

// Dispose cancels in-flight work and drops all listeners. No listener is
// notified once Dispose returns.
func (s *Store) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	s.listeners = nil
	s.mu.Unlock()
	s.abort()
}

// Subscribe registers a listener and synchronously delivers the current
// snapshot so the subscriber does not have to wait for the next change.
// The returned function unregisters it.
func (s *Store) Subscribe(listener func(Snapshot)) func() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return func() {}
	}
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	listener(snapshot)

	return func() {
		s.mu.Lock()
		if s.listeners != nil {
			delete(s.listeners, id)
		}
		s.mu.Unlock()
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Load fetches the patient record. Safe to call repeatedly: overlapping
// loads never race, because only the most recently issued fetch may apply
// its response; stale responses are discarded silently.
func (s *Store) Load(ctx context.Context, patientID int64) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return exceptions.ErrSessionDisposed()
	}
	s.loadSeq++
	seq := s.loadSeq
	initial := s.record == nil
	if initial {
		s.state = StateLoading
		s.loadingInitial = true
	} else {
		s.refreshing = true
	}
	s.patientID = patientID
	s.mu.Unlock()
	s.notify()

	s.log.Info("patientsession.Store.Load issued",
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.Uint64(constvars.LoggingSequenceKey, seq),
	)

	record, fetchErr := s.fetch(ctx, patientID)

	s.mu.Lock()
	if s.disposed {
		s.loadingInitial = false
		s.refreshing = false
		s.mu.Unlock()
		return exceptions.ErrSessionDisposed()
	}
	if seq != s.loadSeq {
		// A newer load has been issued since; this response is stale.
		s.mu.Unlock()
		s.log.Debug("patientsession.Store.Load discarded stale response",
			zap.Uint64(constvars.LoggingSequenceKey, seq),
		)
		return nil
	}
	s.loadingInitial = false
	s.refreshing = false

	if fetchErr != nil {
		s.lastErr = fetchErr
		if s.record == nil {
			s.state = StateFailed
		}
		s.mu.Unlock()
		s.notify()
		return fetchErr
	}

	s.record = record
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()
	s.notify()
	return nil
}

// Refresh re-fetches the current patient, keeping the displayed record
// until the new one resolves. A failed refresh retains the stale record.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return exceptions.ErrSessionDisposed()
	}
	if s.record == nil {
		s.mu.Unlock()
		return exceptions.ErrSessionNotLoaded()
	}
	patientID := s.patientID
	s.mu.Unlock()

	return s.Load(ctx, patientID)
}

// SaveProfile validates the patch locally, then sends the full merged
// profile. The store's profile is replaced only after the server confirms;
// on any failure it is left untouched.
func (s *Store) SaveProfile(ctx context.Context, patch ProfilePatch) error {
	if err := utils.ValidateStruct(patch); err != nil {
		return exceptions.ErrProfileRequiredFields(err)
	}

	s.mutationMu.Lock()
	defer s.mutationMu.Unlock()

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return exceptions.ErrSessionDisposed()
	}
	if s.record == nil {
		s.mu.Unlock()
		return exceptions.ErrSessionNotLoaded()
	}
	patientID := s.record.ID
	merged := s.record.Profile
	merged.Name = patch.Name
	merged.Email = patch.Email
	merged.MobileNumber = patch.MobileNumber
	merged.Gender = patch.Gender
	merged.Occupation = patch.Occupation
	s.savingProfile = true
	s.mu.Unlock()
	s.notify()

	request := &requests.UpdateProfile{
		PatientName:  merged.Name,
		Email:        merged.Email,
		MobileNumber: merged.MobileNumber,
		Gender:       merged.Gender,
		Occupation:   merged.Occupation,
	}

	cctx, cancel, release := s.bindContext(ctx)
	defer cancel()
	defer release()
	err := s.client.UpdateProfile(cctx, patientID, request)

	s.mu.Lock()
	s.savingProfile = false
	if s.disposed {
		s.mu.Unlock()
		return exceptions.ErrSessionDisposed()
	}

	if err != nil {
		customErr := classifyError(cctx, err)
		s.lastErr = customErr
		s.mu.Unlock()
		s.notify()
		return customErr
	}

	if s.record != nil {
		s.record.Profile = merged
	}
	s.lastErr = nil
	s.mu.Unlock()
	s.notify()

	s.log.Info("patientsession.Store.SaveProfile applied",
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

// BookAppointment submits the booking and, on success, triggers a full
// refresh so the server-assigned id and status are authoritative. The new
// appointment is never appended speculatively.
func (s *Store) BookAppointment(ctx context.Context, booking BookingRequest) error {
	if err := utils.ValidateStruct(booking); err != nil {
		return exceptions.ErrAppointmentRequiredFields(err)
	}

	s.mutationMu.Lock()
	defer s.mutationMu.Unlock()

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return exceptions.ErrSessionDisposed()
	}
	if s.record == nil {
		s.mu.Unlock()
		return exceptions.ErrSessionNotLoaded()
	}
	patientID := s.record.ID
	doctorID := s.record.DoctorID
	s.booking = true
	s.mu.Unlock()
	s.notify()

	consultationType := booking.ConsultationType
	if consultationType == "" {
		consultationType = constvars.ConsultationTypeInPerson
	}
	request := &requests.CreateAppointment{
		PatientID:        patientID,
		DoctorID:         doctorID,
		Reason:           booking.Reason,
		Date:             booking.ScheduledAt.UTC().Format(time.RFC3339),
		ConsultationType: consultationType,
		Branch:           booking.Branch,
	}

	cctx, cancel, release := s.bindContext(ctx)
	defer cancel()
	defer release()
	appointmentID, err := s.client.CreateAppointment(cctx, request)

	s.mu.Lock()
	s.booking = false
	if s.disposed {
		s.mu.Unlock()
		return exceptions.ErrSessionDisposed()
	}

	if err != nil {
		customErr := classifyError(cctx, err)
		s.lastErr = customErr
		s.mu.Unlock()
		s.notify()
		return customErr
	}
	s.lastErr = nil
	s.mu.Unlock()
	s.notify()

	s.log.Info("patientsession.Store.BookAppointment confirmed",
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	return s.Refresh(ctx)
}

// AppendUserMessage adds a user-typed chat line to the local conversation.
// There is no chat persistence endpoint; a later refresh replaces the
// conversation with the server copy.
func (s *Store) AppendUserMessage(text string) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return exceptions.ErrSessionDisposed()
	}
	if s.record == nil {
		s.mu.Unlock()
		return exceptions.ErrSessionNotLoaded()
	}

	var maxID int64
	for _, message := range s.record.Conversation {
		if message.ID > maxID {
			maxID = message.ID
		}
	}
	s.record.Conversation = append(s.record.Conversation, Message{
		ID:     maxID + 1,
		Sender: SenderUser,
		Text:   text,
	})
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *Store) fetch(ctx context.Context, patientID int64) (*PatientRecord, *exceptions.CustomError) {
	cctx, cancel, release := s.bindContext(ctx)
	defer cancel()
	defer release()

	record, err := s.client.FetchPatient(cctx, patientID)
	if err != nil {
		return nil, classifyError(cctx, err)
	}
	if record.Appointments == nil {
		record.Appointments = []Appointment{}
	}
	if record.Conversation == nil {
		record.Conversation = []Message{}
	}
	return record, nil
}

// bindContext derives the per-request context: bounded by the store
// timeout, cancelled by Dispose, and bridged to the caller's context. The
// request handle is released on every exit path via the returned funcs.
func (s *Store) bindContext(ctx context.Context) (context.Context, context.CancelFunc, func() bool) {
	cctx, cancel := context.WithTimeout(s.rootCtx, s.timeout)
	release := context.AfterFunc(ctx, cancel)
	return cctx, cancel, release
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		State:                s.state,
		Record:               s.record.Clone(),
		LastError:            s.lastErr,
		IsLoadingInitial:     s.loadingInitial,
		IsRefreshing:         s.refreshing,
		IsSavingProfile:      s.savingProfile,
		IsBookingAppointment: s.booking,
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	snapshot := s.snapshotLocked()
	callbacks := make([]func(Snapshot), 0, len(s.listeners))
	for _, listener := range s.listeners {
		callbacks = append(callbacks, listener)
	}
	s.mu.Unlock()

	for _, callback := range callbacks {
		callback(snapshot)
	}
}

func classifyError(ctx context.Context, err error) *exceptions.CustomError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return exceptions.ErrDeadlineExceeded(err)
	}
	return exceptions.AsCustomError(err)
}
