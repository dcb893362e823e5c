package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

type patientService struct {
	patients PatientRepository
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewPatientService(patients PatientRepository, logger *logrus.Logger, cfg *config.Config) PatientService {
	return &patientService{
		patients: patients,
		logger:   logger,
		cfg:      cfg,
	}
}

// RequestOtp создает OTP-сессию для пациента по его ABHA ID
func (s *patientService) RequestOtp(ctx context.Context, abhaID string) (*models.OtpSession, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "patient",
		"method":  "RequestOtp",
		"abha_id": abhaID,
	})
	log.Info("Requesting OTP session")

	patient, err := s.patients.GetByAbhaID(ctx, abhaID)
	if err != nil {
		log.WithError(err).Warn("Patient lookup failed")
		return nil, fmt.Errorf("service: %w", err)
	}

	session := &models.OtpSession{
		AbhaID:    patient.AbhaID,
		Otp:       generateOtp(),
		ExpiresAt: time.Now().Add(s.cfg.OtpTTL),
		Verified:  false,
	}
	if err := s.patients.CreateOtpSession(ctx, session); err != nil {
		log.WithError(err).Error("Failed to create OTP session in repository")
		return nil, fmt.Errorf("service: could not create otp session: %w", err)
	}

	log.WithField("session_id", session.ID).Info("OTP session created")
	return session, nil
}

// VerifyOtp проверяет одноразовый код и возвращает пациента сессии
func (s *patientService) VerifyOtp(ctx context.Context, sessionID, otp string) (*models.Patient, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "patient",
		"method":     "VerifyOtp",
		"session_id": sessionID,
	})
	log.Info("Verifying OTP")

	session, err := s.patients.GetOtpSession(ctx, sessionID)
	if err != nil {
		log.WithError(err).Warn("OTP session lookup failed")
		return nil, fmt.Errorf("service: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		log.Warn("OTP session has expired")
		return nil, ErrOtpExpired
	}

	if session.Otp != otp {
		log.Warn("OTP mismatch")
		return nil, ErrOtpInvalid
	}

	if _, err := s.patients.VerifyOtpSession(ctx, sessionID); err != nil {
		log.WithError(err).Error("Failed to mark OTP session verified")
		return nil, fmt.Errorf("service: could not verify otp session: %w", err)
	}

	patient, err := s.patients.GetByAbhaID(ctx, session.AbhaID)
	if err != nil {
		log.WithError(err).Warn("Patient lookup failed after verification")
		return nil, fmt.Errorf("service: %w", err)
	}

	log.Info("OTP verified successfully")
	return patient, nil
}

// ListPatients возвращает всех пациентов
func (s *patientService) ListPatients(ctx context.Context) ([]*models.Patient, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list patients from repository")
		return nil, fmt.Errorf("service: could not list patients: %w", err)
	}
	return patients, nil
}

// GetPatient получает пациента по ID
func (s *patientService) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("patient_id", id).Warn("Failed to get patient from repository")
		return nil, fmt.Errorf("service: %w", err)
	}
	return patient, nil
}

// ListMedicalRecords возвращает медицинские записи пациента, новые первыми
func (s *patientService) ListMedicalRecords(ctx context.Context, patientID string) ([]*models.MedicalRecord, error) {
	records, err := s.patients.ListMedicalRecords(ctx, patientID)
	if err != nil {
		s.logger.WithError(err).WithField("patient_id", patientID).Error("Failed to list medical records")
		return nil, fmt.Errorf("service: could not list medical records: %w", err)
	}
	return records, nil
}

// AddMedicalRecord добавляет медицинскую запись пациенту
func (s *patientService) AddMedicalRecord(ctx context.Context, record *models.MedicalRecord) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "patient",
		"method":     "AddMedicalRecord",
		"patient_id": record.PatientID,
	})

	if _, err := s.patients.GetByID(ctx, record.PatientID); err != nil {
		log.WithError(err).Warn("Patient lookup failed")
		return fmt.Errorf("service: %w", err)
	}

	if err := s.patients.CreateMedicalRecord(ctx, record); err != nil {
		log.WithError(err).Error("Failed to create medical record in repository")
		return fmt.Errorf("service: could not create medical record: %w", err)
	}

	log.WithField("record_id", record.ID).Info("Medical record created")
	return nil
}

// generateOtp генерирует шестизначный одноразовый код
func generateOtp() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
