package appointments

import (
	"context"
	"database/sql"
	"sparrc-service/internal/app/models"
	"sparrc-service/internal/pkg/constvars"
	"sparrc-service/internal/pkg/exceptions"
	"sparrc-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentMySQLRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewAppointmentMySQLRepository(db *sql.DB, logger *zap.Logger) AppointmentRepository {
	return &appointmentMySQLRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *appointmentMySQLRepository) InsertAppointment(ctx context.Context, appointment *models.Appointment) (int64, error) {
	query := `
		INSERT INTO sparrc_appointments
			(patient_id, doctor_id, reason, appointment_date, consultation_type, branch, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.DB.ExecContext(ctx, query,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.Reason,
		utils.ToSQLDatetime(appointment.ScheduledAt),
		appointment.ConsultationType,
		appointment.Branch,
		appointment.Status,
	)
	if err != nil {
		r.Log.Error("appointmentMySQLRepository.InsertAppointment exec failed",
			zap.Int64(constvars.LoggingPatientIDKey, appointment.PatientID),
			zap.Error(err),
		)
		return 0, exceptions.ErrMySQLExec(err)
	}

	appointmentID, err := result.LastInsertId()
	if err != nil {
		return 0, exceptions.ErrMySQLExec(err)
	}
	return appointmentID, nil
}
