package patients

import (
	"context"
	"database/sql"
	"errors"
	"sparrc-service/internal/app/models"
	"sparrc-service/internal/pkg/constvars"
	"sparrc-service/internal/pkg/dto/requests"
	"sparrc-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientMySQLRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewPatientMySQLRepository(db *sql.DB, logger *zap.Logger) PatientRepository {
	return &patientMySQLRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *patientMySQLRepository) FindPatientByID(ctx context.Context, patientID int64) (*models.PatientInfo, error) {
	query := `
		SELECT
			p.id, p.patient_name, p.email, p.mobile_number, p.gender, p.occupation, p.address,
			IFNULL(p.doctor_id, 0), IFNULL(d.doctor_name, ''), IFNULL(d.specialization, '')
		FROM sparrc_patient_info p
		LEFT JOIN sparrc_doctor_info d ON p.doctor_id = d.doctor_id
		WHERE p.id = ?`

	patient := new(models.PatientInfo)
	err := r.DB.QueryRowContext(ctx, query, patientID).Scan(
		&patient.ID,
		&patient.PatientName,
		&patient.Email,
		&patient.MobileNumber,
		&patient.Gender,
		&patient.Occupation,
		&patient.Address,
		&patient.DoctorID,
		&patient.DoctorName,
		&patient.Specialization,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.Log.Error("patientMySQLRepository.FindPatientByID query failed",
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMySQLQuery(err)
	}
	return patient, nil
}

func (r *patientMySQLRepository) UpdatePatientProfile(ctx context.Context, patientID int64, request *requests.UpdateProfile) (bool, error) {
	query := `
		UPDATE sparrc_patient_info
		SET patient_name = ?, email = ?, mobile_number = ?, gender = ?, occupation = ?
		WHERE id = ?`

	result, err := r.DB.ExecContext(ctx, query,
		request.PatientName,
		request.Email,
		request.MobileNumber,
		request.Gender,
		request.Occupation,
		patientID,
	)
	if err != nil {
		r.Log.Error("patientMySQLRepository.UpdatePatientProfile exec failed",
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return false, exceptions.ErrMySQLExec(err)
	}

	// RowsAffected is zero both when the patient is missing and when the
	// update is a no-op, so check existence explicitly on zero.
	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrMySQLExec(err)
	}
	if affected > 0 {
		return true, nil
	}

	var exists bool
	err = r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM sparrc_patient_info WHERE id = ?)`, patientID).Scan(&exists)
	if err != nil {
		return false, exceptions.ErrMySQLQuery(err)
	}
	return exists, nil
}

func (r *patientMySQLRepository) ListAppointmentsByPatientID(ctx context.Context, patientID int64) ([]models.Appointment, error) {
	query := `
		SELECT id, patient_id, doctor_id, reason, appointment_date, consultation_type, branch, status
		FROM sparrc_appointments
		WHERE patient_id = ?
		ORDER BY appointment_date`

	rows, err := r.DB.QueryContext(ctx, query, patientID)
	if err != nil {
		r.Log.Error("patientMySQLRepository.ListAppointmentsByPatientID query failed",
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMySQLQuery(err)
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		var appointment models.Appointment
		err := rows.Scan(
			&appointment.ID,
			&appointment.PatientID,
			&appointment.DoctorID,
			&appointment.Reason,
			&appointment.ScheduledAt,
			&appointment.ConsultationType,
			&appointment.Branch,
			&appointment.Status,
		)
		if err != nil {
			return nil, exceptions.ErrMySQLQuery(err)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrMySQLQuery(err)
	}
	return appointments, nil
}

func (r *patientMySQLRepository) ListChatMessagesByPatientID(ctx context.Context, patientID int64) ([]models.ChatMessage, error) {
	query := `
		SELECT id, patient_id, sender, message
		FROM sparrc_chatbot_conversations
		WHERE patient_id = ?
		ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, patientID)
	if err != nil {
		r.Log.Error("patientMySQLRepository.ListChatMessagesByPatientID query failed",
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMySQLQuery(err)
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var message models.ChatMessage
		err := rows.Scan(
			&message.ID,
			&message.PatientID,
			&message.Sender,
			&message.Message,
		)
		if err != nil {
			return nil, exceptions.ErrMySQLQuery(err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrMySQLQuery(err)
	}
	return messages, nil
}
