package patientsession

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sparrc-service/internal/pkg/constvars"
	"sparrc-service/internal/pkg/dto/requests"
	"sparrc-service/internal/pkg/dto/responses"
	"sparrc-service/internal/pkg/exceptions"
	"sparrc-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientAPIClient struct {
	BaseUrl    string
	Log        *zap.Logger
	HTTPClient *http.Client
}

// NewPatientAPIClient builds an HTTP client for the remote patient API.
// Not a singleton: every session store may point at its own base URL.
func NewPatientAPIClient(baseUrl string, logger *zap.Logger, timeout time.Duration) PatientAPIClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &patientAPIClient{
		BaseUrl: baseUrl,
		Log:     logger,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *patientAPIClient) FetchPatient(ctx context.Context, patientID int64) (*PatientRecord, error) {
	endpoint := fmt.Sprintf("%s/patient/%d", c.BaseUrl, patientID)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("patientAPIClient.FetchPatient error creating HTTP request",
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("patientAPIClient.FetchPatient error sending HTTP request",
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, c.mapTransportError(err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, constvars.StatusOK); err != nil {
		return nil, err
	}

	patient := new(responses.Patient)
	err = json.NewDecoder(resp.Body).Decode(&patient)
	if err != nil {
		c.Log.Error("patientAPIClient.FetchPatient error decoding response",
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatients)
	}

	record, err := buildPatientRecord(patient)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientAPIClient.FetchPatient succeeded",
		zap.Int64(constvars.LoggingPatientIDKey, record.ID),
	)
	return record, nil
}

func (c *patientAPIClient) UpdateProfile(ctx context.Context, patientID int64, request *requests.UpdateProfile) error {
	endpoint := fmt.Sprintf("%s/patient/%d", c.BaseUrl, patientID)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientAPIClient.UpdateProfile error creating HTTP request",
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("patientAPIClient.UpdateProfile error sending HTTP request",
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return c.mapTransportError(err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, constvars.StatusOK); err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)

	c.Log.Info("patientAPIClient.UpdateProfile succeeded",
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

func (c *patientAPIClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (int64, error) {
	endpoint := fmt.Sprintf("%s/appointments", c.BaseUrl)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return 0, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientAPIClient.CreateAppointment error creating HTTP request",
			zap.Int64(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
		return 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("patientAPIClient.CreateAppointment error sending HTTP request",
			zap.Int64(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
		return 0, c.mapTransportError(err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, constvars.StatusCreated); err != nil {
		return 0, err
	}

	created := new(responses.CreateAppointment)
	err = json.NewDecoder(resp.Body).Decode(&created)
	if err != nil {
		c.Log.Error("patientAPIClient.CreateAppointment error decoding response",
			zap.Int64(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
		return 0, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointments)
	}

	c.Log.Info("patientAPIClient.CreateAppointment succeeded",
		zap.Int64(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Int64(constvars.LoggingAppointmentIDKey, created.AppointmentID),
	)
	return created.AppointmentID, nil
}

func (c *patientAPIClient) mapTransportError(err error) *exceptions.CustomError {
	var urlErr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &urlErr) && urlErr.Timeout()) {
		return exceptions.ErrDeadlineExceeded(err)
	}
	return exceptions.ErrSendHTTPRequest(err)
}

func (c *patientAPIClient) checkStatus(resp *http.Response, wantStatus int) *exceptions.CustomError {
	if resp.StatusCode == wantStatus {
		return nil
	}

	bodyBytes, _ := io.ReadAll(resp.Body)
	remoteErr := fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(bodyBytes))

	switch {
	case resp.StatusCode == constvars.StatusNotFound:
		return exceptions.ErrPatientNotFound(remoteErr)
	case resp.StatusCode == constvars.StatusBadRequest:
		return exceptions.ErrRemoteBadRequest(remoteErr)
	case resp.StatusCode >= constvars.StatusInternalServerError:
		return exceptions.ErrRemoteServer(remoteErr)
	default:
		return exceptions.ErrSendHTTPRequest(remoteErr)
	}
}

// buildPatientRecord maps the wire shape onto the session's record type.
// Appointments and Conversation stay non-nil even when the payload carried
// nothing.
func buildPatientRecord(patient *responses.Patient) (*PatientRecord, error) {
	record := &PatientRecord{
		ID: patient.ID,
		Profile: Profile{
			Name:         patient.PatientName,
			Email:        patient.Email,
			MobileNumber: patient.MobileNumber,
			Gender:       patient.Gender,
			Occupation:   patient.Occupation,
			Address:      patient.Address,
		},
		DoctorID:       patient.DoctorID,
		DoctorName:     patient.DoctorName,
		Specialization: patient.Specialization,
		Appointments:   []Appointment{},
		Conversation:   []Message{},
	}

	for _, appointment := range patient.Appointments {
		scheduledAt, err := utils.ParseFlexibleTime(appointment.Date)
		if err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointments)
		}
		record.Appointments = append(record.Appointments, Appointment{
			ID:               appointment.ID,
			Reason:           appointment.Reason,
			ScheduledAt:      scheduledAt,
			ConsultationType: appointment.ConsultationType,
			Branch:           appointment.Branch,
			Status:           appointment.Status,
		})
	}

	for _, message := range patient.Conversations {
		record.Conversation = append(record.Conversation, Message{
			ID:     message.ID,
			Sender: Sender(message.Sender),
			Text:   message.Message,
		})
	}

	return record, nil
}
