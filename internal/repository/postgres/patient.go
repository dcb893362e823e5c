package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

// PatientRepository - хранилище пациентов, медицинских записей
// и OTP-сессий поверх PostgreSQL
type PatientRepository struct {
	db *pgxpool.Pool
}

func NewPatientRepository(db *pgxpool.Pool) service.PatientRepository {
	return &PatientRepository{db: db}
}

const patientColumns = `id, abha_id, name, phone, COALESCE(email, ''), COALESCE(date_of_birth, ''), COALESCE(blood_group, ''), COALESCE(address, ''), COALESCE(emergency_contact, '')`

// List возвращает всех пациентов
func (r *PatientRepository) List(ctx context.Context) ([]*models.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	patients := make([]*models.Patient, 0)
	for rows.Next() {
		patient := &models.Patient{}
		if err := scanPatient(rows, patient); err != nil {
			return nil, fmt.Errorf("failed to scan patient row: %w", err)
		}
		patients = append(patients, patient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return patients, nil
}

// GetByID возвращает пациента по его ID
func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE id = $1;
	`
	patient := &models.Patient{}
	err := scanPatient(r.db.QueryRow(ctx, query, id), patient)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient by id: %w", err)
	}
	return patient, nil
}

// GetByAbhaID находит пациента по его ABHA ID без учета регистра
func (r *PatientRepository) GetByAbhaID(ctx context.Context, abhaID string) (*models.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE LOWER(abha_id) = LOWER($1);
	`
	patient := &models.Patient{}
	err := scanPatient(r.db.QueryRow(ctx, query, abhaID), patient)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient by abha id: %w", err)
	}
	return patient, nil
}

// ListMedicalRecords возвращает записи пациента, свежие даты первыми
func (r *PatientRepository) ListMedicalRecords(ctx context.Context, patientID string) ([]*models.MedicalRecord, error) {
	query := `
		SELECT id, patient_id, type, title, doctor_name, COALESCE(hospital_name, ''), date, COALESCE(notes, '')
		FROM medical_records
		WHERE patient_id = $1
		ORDER BY date DESC;
	`
	rows, err := r.db.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.MedicalRecord, 0)
	for rows.Next() {
		record := &models.MedicalRecord{}
		err := rows.Scan(
			&record.ID,
			&record.PatientID,
			&record.Type,
			&record.Title,
			&record.DoctorName,
			&record.HospitalName,
			&record.Date,
			&record.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medical record row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}

// CreateMedicalRecord добавляет медицинскую запись
func (r *PatientRepository) CreateMedicalRecord(ctx context.Context, record *models.MedicalRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	query := `
		INSERT INTO medical_records (id, patient_id, type, title, doctor_name, hospital_name, date, notes)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, NULLIF($8, ''));
	`
	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.PatientID,
		record.Type,
		record.Title,
		record.DoctorName,
		record.HospitalName,
		record.Date,
		record.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return nil
}

// CreateOtpSession сохраняет OTP-сессию
func (r *PatientRepository) CreateOtpSession(ctx context.Context, session *models.OtpSession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	query := `
		INSERT INTO otp_sessions (id, abha_id, otp, expires_at, verified)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.AbhaID,
		session.Otp,
		session.ExpiresAt,
		session.Verified,
	)
	if err != nil {
		return fmt.Errorf("failed to create otp session: %w", err)
	}
	return nil
}

// GetOtpSession возвращает OTP-сессию по её ID
func (r *PatientRepository) GetOtpSession(ctx context.Context, id string) (*models.OtpSession, error) {
	query := `
		SELECT id, abha_id, otp, expires_at, verified
		FROM otp_sessions
		WHERE id = $1;
	`
	session := &models.OtpSession{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.AbhaID,
		&session.Otp,
		&session.ExpiresAt,
		&session.Verified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrOtpSessionNotFound
		}
		return nil, fmt.Errorf("failed to get otp session: %w", err)
	}
	return session, nil
}

// VerifyOtpSession помечает OTP-сессию как подтвержденную
func (r *PatientRepository) VerifyOtpSession(ctx context.Context, id string) (*models.OtpSession, error) {
	query := `
		UPDATE otp_sessions SET verified = TRUE
		WHERE id = $1
		RETURNING id, abha_id, otp, expires_at, verified;
	`
	session := &models.OtpSession{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.AbhaID,
		&session.Otp,
		&session.ExpiresAt,
		&session.Verified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrOtpSessionNotFound
		}
		return nil, fmt.Errorf("failed to verify otp session: %w", err)
	}
	return session, nil
}

func scanPatient(row pgx.Row, patient *models.Patient) error {
	return row.Scan(
		&patient.ID,
		&patient.AbhaID,
		&patient.Name,
		&patient.Phone,
		&patient.Email,
		&patient.DateOfBirth,
		&patient.BloodGroup,
		&patient.Address,
		&patient.EmergencyContact,
	)
}
