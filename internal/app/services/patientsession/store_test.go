package patientsession

import (
	"context"
	"errors"
	"sparrc-service/internal/pkg/dto/requests"
	"sparrc-service/internal/pkg/exceptions"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAPIClient struct {
	fetchFn  func(ctx context.Context, patientID int64) (*PatientRecord, error)
	updateFn func(ctx context.Context, patientID int64, request *requests.UpdateProfile) error
	createFn func(ctx context.Context, request *requests.CreateAppointment) (int64, error)

	fetchCalls  atomic.Int32
	updateCalls atomic.Int32
	createCalls atomic.Int32
}

func (f *fakeAPIClient) FetchPatient(ctx context.Context, patientID int64) (*PatientRecord, error) {
	f.fetchCalls.Add(1)
	return f.fetchFn(ctx, patientID)
}

func (f *fakeAPIClient) UpdateProfile(ctx context.Context, patientID int64, request *requests.UpdateProfile) error {
	f.updateCalls.Add(1)
	return f.updateFn(ctx, patientID, request)
}

func (f *fakeAPIClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (int64, error) {
	f.createCalls.Add(1)
	return f.createFn(ctx, request)
}

func testRecord(name string) *PatientRecord {
	return &PatientRecord{
		ID: 1,
		Profile: Profile{
			Name:         name,
			MobileNumber: "9000000000",
			Address:      "Chennai",
		},
		DoctorID:     1,
		Appointments: []Appointment{},
		Conversation: []Message{},
	}
}

func TestLoad_InitialSuccess(t *testing.T) {
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			return testRecord("Asha"), nil
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()

	err := store.Load(context.Background(), 1)
	require.NoError(t, err)

	snapshot := store.Snapshot()
	assert.Equal(t, StateReady, snapshot.State)
	assert.Equal(t, "Asha", snapshot.Record.Profile.Name)
	assert.False(t, snapshot.IsLoadingInitial)
	assert.Nil(t, snapshot.LastError)
}

func TestLoad_InitialFailure(t *testing.T) {
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			return nil, exceptions.ErrSendHTTPRequest(errors.New("connection refused"))
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()

	err := store.Load(context.Background(), 1)
	require.Error(t, err)

	snapshot := store.Snapshot()
	assert.Equal(t, StateFailed, snapshot.State)
	assert.Nil(t, snapshot.Record)
	require.NotNil(t, snapshot.LastError)
	assert.Equal(t, exceptions.KindNetwork, snapshot.LastError.Kind)
}

// Two loads race; the one issued second resolves first. The final state
// must reflect the second call regardless of completion order, and exactly
// one response may be applied.
func TestLoad_SequencedStaleness(t *testing.T) {
	gate := make(chan struct{})
	var calls atomic.Int32
	client := &fakeAPIClient{}
	client.fetchFn = func(ctx context.Context, patientID int64) (*PatientRecord, error) {
		if calls.Add(1) == 1 {
			<-gate
			return testRecord("Slow First"), nil
		}
		return testRecord("Fast Second"), nil
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()

	var applied []string
	store.Subscribe(func(snapshot Snapshot) {
		if snapshot.Record != nil {
			applied = append(applied, snapshot.Record.Profile.Name)
		}
	})

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- store.Load(context.Background(), 1)
	}()
	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, time.Millisecond)

	err := store.Load(context.Background(), 1)
	require.NoError(t, err)

	close(gate)
	assert.NoError(t, <-firstDone)

	snapshot := store.Snapshot()
	assert.Equal(t, StateReady, snapshot.State)
	assert.Equal(t, "Fast Second", snapshot.Record.Profile.Name)

	// The stale response was discarded without touching the store.
	require.Len(t, applied, 1)
	assert.Equal(t, "Fast Second", applied[0])
	assert.Equal(t, int32(2), client.fetchCalls.Load())
}

func TestRefresh_KeepsStaleRecordOnFailure(t *testing.T) {
	failing := false
	client := &fakeAPIClient{}
	client.fetchFn = func(ctx context.Context, patientID int64) (*PatientRecord, error) {
		if failing {
			return nil, exceptions.ErrRemoteServer(errors.New("boom"))
		}
		return testRecord("Asha"), nil
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()

	require.NoError(t, store.Load(context.Background(), 1))

	failing = true
	err := store.Refresh(context.Background())
	require.Error(t, err)

	snapshot := store.Snapshot()
	assert.Equal(t, StateReady, snapshot.State)
	require.NotNil(t, snapshot.Record)
	assert.Equal(t, "Asha", snapshot.Record.Profile.Name)
	require.NotNil(t, snapshot.LastError)
	assert.Equal(t, exceptions.KindServer, snapshot.LastError.Kind)
	assert.False(t, snapshot.IsRefreshing)
}

func TestRefresh_BeforeLoadFails(t *testing.T) {
	client := &fakeAPIClient{}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()

	err := store.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(0), client.fetchCalls.Load())
}

func TestSaveProfile_ValidationShortCircuit(t *testing.T) {
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			return testRecord("Asha"), nil
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()
	require.NoError(t, store.Load(context.Background(), 1))

	err := store.SaveProfile(context.Background(), ProfilePatch{Name: "", MobileNumber: "123"})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, exceptions.KindValidation, customErr.Kind)
	assert.Equal(t, int32(0), client.updateCalls.Load())
}

func TestSaveProfile_PessimisticOnFailure(t *testing.T) {
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			return testRecord("Asha"), nil
		},
		updateFn: func(ctx context.Context, patientID int64, request *requests.UpdateProfile) error {
			return exceptions.ErrRemoteServer(errors.New("boom"))
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()
	require.NoError(t, store.Load(context.Background(), 1))

	before := store.Snapshot().Record.Profile

	err := store.SaveProfile(context.Background(), ProfilePatch{Name: "Changed", MobileNumber: "9111111111"})
	require.Error(t, err)

	snapshot := store.Snapshot()
	assert.Equal(t, before, snapshot.Record.Profile)
	assert.False(t, snapshot.IsSavingProfile)
	require.NotNil(t, snapshot.LastError)
	assert.Equal(t, exceptions.KindServer, snapshot.LastError.Kind)
}

func TestSaveProfile_AppliesMergedProfileOnSuccess(t *testing.T) {
	var sent *requests.UpdateProfile
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			return testRecord("Asha"), nil
		},
		updateFn: func(ctx context.Context, patientID int64, request *requests.UpdateProfile) error {
			sent = request
			return nil
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()
	require.NoError(t, store.Load(context.Background(), 1))

	err := store.SaveProfile(context.Background(), ProfilePatch{
		Name:         "Asha R",
		Email:        "asha@example.com",
		MobileNumber: "9111111111",
		Occupation:   "Teacher",
	})
	require.NoError(t, err)

	snapshot := store.Snapshot()
	assert.Equal(t, "Asha R", snapshot.Record.Profile.Name)
	assert.Equal(t, "9111111111", snapshot.Record.Profile.MobileNumber)
	// Address is not editable through the profile endpoint and survives.
	assert.Equal(t, "Chennai", snapshot.Record.Profile.Address)

	require.NotNil(t, sent)
	assert.Equal(t, "Asha R", sent.PatientName)
}

func TestSaveProfile_SerializesMutations(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			return testRecord("Asha"), nil
		},
		updateFn: func(ctx context.Context, patientID int64, request *requests.UpdateProfile) error {
			now := inFlight.Add(1)
			if now > maxInFlight.Load() {
				maxInFlight.Store(now)
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return nil
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()
	require.NoError(t, store.Load(context.Background(), 1))

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			done <- store.SaveProfile(context.Background(), ProfilePatch{Name: "Asha", MobileNumber: "9000000000"})
		}()
	}
	require.NoError(t, <-done)
	require.NoError(t, <-done)

	assert.Equal(t, int32(1), maxInFlight.Load())
	assert.Equal(t, int32(2), client.updateCalls.Load())
}

func TestBookAppointment_ValidationShortCircuit(t *testing.T) {
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			return testRecord("Asha"), nil
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()
	require.NoError(t, store.Load(context.Background(), 1))

	err := store.BookAppointment(context.Background(), BookingRequest{
		Reason:      "Follow-up",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, exceptions.KindValidation, customErr.Kind)
	assert.Equal(t, int32(0), client.createCalls.Load())
}

// Booking must not append the appointment speculatively: the list after a
// successful booking is whatever the server reports on the follow-up
// refresh, even when other appointments landed in between.
func TestBookAppointment_TriggersFullRefresh(t *testing.T) {
	booked := false
	serverAppointments := []Appointment{
		{ID: 1, Reason: "Initial Assessment", ScheduledAt: time.Now(), Status: "confirmed"},
	}
	client := &fakeAPIClient{}
	client.fetchFn = func(ctx context.Context, patientID int64) (*PatientRecord, error) {
		record := testRecord("Asha")
		record.Appointments = append([]Appointment{}, serverAppointments...)
		if booked {
			record.Appointments = append(record.Appointments,
				Appointment{ID: 7, Reason: "Other Channel", Status: "confirmed"},
				Appointment{ID: 8, Reason: "Follow-up", Status: "waiting for confirmation"},
			)
		}
		return record, nil
	}
	client.createFn = func(ctx context.Context, request *requests.CreateAppointment) (int64, error) {
		booked = true
		return 8, nil
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()
	require.NoError(t, store.Load(context.Background(), 1))
	require.Len(t, store.Snapshot().Record.Appointments, 1)

	err := store.BookAppointment(context.Background(), BookingRequest{
		Reason:      "Follow-up",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Branch:      "Chennai",
	})
	require.NoError(t, err)

	snapshot := store.Snapshot()
	assert.Len(t, snapshot.Record.Appointments, 3)
	assert.Equal(t, int32(1), client.createCalls.Load())
	assert.Equal(t, int32(2), client.fetchCalls.Load())
	assert.False(t, snapshot.IsBookingAppointment)
}

func TestLoad_TimeoutClassified(t *testing.T) {
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	store := NewStore(client, zap.NewNop(), 20*time.Millisecond)
	defer store.Dispose()

	err := store.Load(context.Background(), 1)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, exceptions.KindTimeout, customErr.Kind)
	assert.Equal(t, StateFailed, store.Snapshot().State)
}

func TestAppendUserMessage_LocalOnly(t *testing.T) {
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			record := testRecord("Asha")
			record.Conversation = []Message{{ID: 1, Sender: SenderBot, Text: "Hi"}}
			return record, nil
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()
	require.NoError(t, store.Load(context.Background(), 1))

	require.NoError(t, store.AppendUserMessage("Feeling better today"))

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Record.Conversation, 2)
	assert.Equal(t, SenderUser, snapshot.Record.Conversation[1].Sender)
	assert.Equal(t, int64(2), snapshot.Record.Conversation[1].ID)
	assert.Equal(t, int32(1), client.fetchCalls.Load())

	// User messages are not persisted; a refresh restores the server copy.
	require.NoError(t, store.Refresh(context.Background()))
	assert.Len(t, store.Snapshot().Record.Conversation, 1)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			return testRecord("Asha"), nil
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()

	var first, second atomic.Int32
	unsubscribe := store.Subscribe(func(Snapshot) { first.Add(1) })
	store.Subscribe(func(Snapshot) { second.Add(1) })

	require.NoError(t, store.Load(context.Background(), 1))
	firstBefore := first.Load()
	require.Greater(t, firstBefore, int32(0))

	unsubscribe()
	require.NoError(t, store.Refresh(context.Background()))

	assert.Equal(t, firstBefore, first.Load())
	assert.Greater(t, second.Load(), firstBefore)
}

func TestDispose_StopsNotificationsAndOperations(t *testing.T) {
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			return testRecord("Asha"), nil
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)

	var notifications atomic.Int32
	store.Subscribe(func(Snapshot) { notifications.Add(1) })
	require.NoError(t, store.Load(context.Background(), 1))
	before := notifications.Load()

	store.Dispose()

	require.Error(t, store.Load(context.Background(), 1))
	require.Error(t, store.Refresh(context.Background()))
	require.Error(t, store.AppendUserMessage("hello"))
	assert.Equal(t, before, notifications.Load())
}

// Disposing while a mutation is awaiting its response must lower that
// mutation's busy flag, so a snapshot taken from the disposed store never
// reports phantom in-flight work.
func TestDispose_ClearsBusyFlagsMidMutation(t *testing.T) {
	saveStarted := make(chan struct{})
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			return testRecord("Asha"), nil
		},
		updateFn: func(ctx context.Context, patientID int64, request *requests.UpdateProfile) error {
			close(saveStarted)
			<-ctx.Done()
			return ctx.Err()
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	require.NoError(t, store.Load(context.Background(), 1))

	saveDone := make(chan error, 1)
	go func() {
		saveDone <- store.SaveProfile(context.Background(), ProfilePatch{Name: "Asha", MobileNumber: "9000000000"})
	}()
	<-saveStarted

	store.Dispose()
	require.Error(t, <-saveDone)

	snapshot := store.Snapshot()
	assert.False(t, snapshot.IsSavingProfile)
	assert.False(t, snapshot.IsBookingAppointment)
}

func TestDispose_ClearsBookingFlagMidMutation(t *testing.T) {
	bookingStarted := make(chan struct{})
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			return testRecord("Asha"), nil
		},
		createFn: func(ctx context.Context, request *requests.CreateAppointment) (int64, error) {
			close(bookingStarted)
			<-ctx.Done()
			return 0, ctx.Err()
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	require.NoError(t, store.Load(context.Background(), 1))

	bookingDone := make(chan error, 1)
	go func() {
		bookingDone <- store.BookAppointment(context.Background(), BookingRequest{
			Reason:      "Follow-up",
			ScheduledAt: time.Now().Add(24 * time.Hour),
			Branch:      "Chennai",
		})
	}()
	<-bookingStarted

	store.Dispose()
	require.Error(t, <-bookingDone)

	assert.False(t, store.Snapshot().IsBookingAppointment)
}

func TestSnapshot_RecordIsACopy(t *testing.T) {
	client := &fakeAPIClient{
		fetchFn: func(ctx context.Context, patientID int64) (*PatientRecord, error) {
			record := testRecord("Asha")
			record.Appointments = []Appointment{{ID: 1, Reason: "Initial"}}
			return record, nil
		},
	}
	store := NewStore(client, zap.NewNop(), time.Second)
	defer store.Dispose()
	require.NoError(t, store.Load(context.Background(), 1))

	snapshot := store.Snapshot()
	snapshot.Record.Profile.Name = "Mutated"
	snapshot.Record.Appointments[0].Reason = "Mutated"

	fresh := store.Snapshot()
	assert.Equal(t, "Asha", fresh.Record.Profile.Name)
	assert.Equal(t, "Initial", fresh.Record.Appointments[0].Reason)
}
