package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

// PatientRepository - in-memory хранилище пациентов, их медицинских
// записей и OTP-сессий
type PatientRepository struct {
	mu       sync.RWMutex
	byID     map[string]*models.Patient
	order    []string
	records  map[string]*models.MedicalRecord
	sessions map[string]*models.OtpSession
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{
		byID:     make(map[string]*models.Patient),
		records:  make(map[string]*models.MedicalRecord),
		sessions: make(map[string]*models.OtpSession),
	}
}

// List возвращает всех пациентов в порядке добавления
func (r *PatientRepository) List(ctx context.Context) ([]*models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patients := make([]*models.Patient, 0, len(r.order))
	for _, id := range r.order {
		snapshot := *r.byID[id]
		patients = append(patients, &snapshot)
	}
	return patients, nil
}

// GetByID возвращает пациента по его ID
func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.byID[id]
	if !ok {
		return nil, service.ErrPatientNotFound
	}
	snapshot := *patient
	return &snapshot, nil
}

// GetByAbhaID находит пациента по его ABHA ID без учета регистра
func (r *PatientRepository) GetByAbhaID(ctx context.Context, abhaID string) (*models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, patient := range r.byID {
		if strings.EqualFold(patient.AbhaID, abhaID) {
			snapshot := *patient
			return &snapshot, nil
		}
	}
	return nil, service.ErrPatientNotFound
}

// Create добавляет пациента
func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}
	snapshot := *patient
	r.byID[patient.ID] = &snapshot
	r.order = append(r.order, patient.ID)
	return nil
}

// ListMedicalRecords возвращает записи пациента, свежие даты первыми
func (r *PatientRepository) ListMedicalRecords(ctx context.Context, patientID string) ([]*models.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*models.MedicalRecord, 0)
	for _, record := range r.records {
		if record.PatientID == patientID {
			snapshot := *record
			records = append(records, &snapshot)
		}
	}
	// Даты хранятся в формате YYYY-MM-DD, лексикографический порядок совпадает с хронологическим
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records, nil
}

// CreateMedicalRecord добавляет медицинскую запись
func (r *PatientRepository) CreateMedicalRecord(ctx context.Context, record *models.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	snapshot := *record
	r.records[record.ID] = &snapshot
	return nil
}

// CreateOtpSession сохраняет OTP-сессию
func (r *PatientRepository) CreateOtpSession(ctx context.Context, session *models.OtpSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	snapshot := *session
	r.sessions[session.ID] = &snapshot
	return nil
}

// GetOtpSession возвращает OTP-сессию по её ID
func (r *PatientRepository) GetOtpSession(ctx context.Context, id string) (*models.OtpSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, service.ErrOtpSessionNotFound
	}
	snapshot := *session
	return &snapshot, nil
}

// VerifyOtpSession помечает OTP-сессию как подтвержденную
func (r *PatientRepository) VerifyOtpSession(ctx context.Context, id string) (*models.OtpSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, service.ErrOtpSessionNotFound
	}
	session.Verified = true
	snapshot := *session
	return &snapshot, nil
}
