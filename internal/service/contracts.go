package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
)

// FleetRepository определяет контракт для работы с хранилищем автопарка.
// Все возвращаемые значения - снапшоты, живых ссылок наружу не отдаётся.
type FleetRepository interface {
	List(ctx context.Context) ([]*models.Ambulance, error)
	GetByID(ctx context.Context, id string) (*models.Ambulance, error)
	Create(ctx context.Context, ambulance *models.Ambulance) error
	SetStatus(ctx context.Context, id string, status models.AmbulanceStatus) (*models.Ambulance, error)
	SetPosition(ctx context.Context, id string, lat, lon float64) (*models.Ambulance, error)
}

// IncidentRepository определяет контракт для работы с хранилищем инцидентов
type IncidentRepository interface {
	List(ctx context.Context) ([]*models.Incident, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Create(ctx context.Context, incident *models.Incident) error
	Update(ctx context.Context, id uuid.UUID, update models.IncidentUpdate) (*models.Incident, error)
	CountActive(ctx context.Context) (int, error)
}

// HospitalRepository определяет контракт для справочника больниц (только чтение)
type HospitalRepository interface {
	List(ctx context.Context) ([]*models.Hospital, error)
	GetByID(ctx context.Context, id string) (*models.Hospital, error)
}

// PatientRepository определяет контракт для работы с пациентами,
// их медицинскими записями и OTP-сессиями
type PatientRepository interface {
	List(ctx context.Context) ([]*models.Patient, error)
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetByAbhaID(ctx context.Context, abhaID string) (*models.Patient, error)
	ListMedicalRecords(ctx context.Context, patientID string) ([]*models.MedicalRecord, error)
	CreateMedicalRecord(ctx context.Context, record *models.MedicalRecord) error
	CreateOtpSession(ctx context.Context, session *models.OtpSession) error
	GetOtpSession(ctx context.Context, id string) (*models.OtpSession, error)
	VerifyOtpSession(ctx context.Context, id string) (*models.OtpSession, error)
}

// DispatchService определяет контракт для бизнес-логики диспетчеризации
type DispatchService interface {
	HandleSos(ctx context.Context, patientID string, lat, lon float64) (*DispatchResult, error)
	Assign(ctx context.Context, incidentID uuid.UUID, ambulanceID string) (*AssignResult, error)
	Resolve(ctx context.Context, incidentID uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	GetStats(ctx context.Context) (*DispatchStats, error)
}

// FleetService определяет контракт для операций над автопарком
type FleetService interface {
	ListAmbulances(ctx context.Context) ([]*models.Ambulance, error)
	GetAmbulance(ctx context.Context, id string) (*models.Ambulance, error)
	RegisterAmbulance(ctx context.Context, ambulance *models.Ambulance) error
	SetAmbulanceStatus(ctx context.Context, id string, status models.AmbulanceStatus) (*models.Ambulance, error)
}

// HospitalService определяет контракт для справочника больниц
type HospitalService interface {
	ListHospitals(ctx context.Context) ([]*models.Hospital, error)
}

// PatientService определяет контракт для пациентов: OTP-вход и медкарта
type PatientService interface {
	RequestOtp(ctx context.Context, abhaID string) (*models.OtpSession, error)
	VerifyOtp(ctx context.Context, sessionID, otp string) (*models.Patient, error)
	ListPatients(ctx context.Context) ([]*models.Patient, error)
	GetPatient(ctx context.Context, id string) (*models.Patient, error)
	ListMedicalRecords(ctx context.Context, patientID string) ([]*models.MedicalRecord, error)
	AddMedicalRecord(ctx context.Context, record *models.MedicalRecord) error
}
