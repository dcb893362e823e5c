package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

// HospitalRepository - in-memory справочник больниц
type HospitalRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.Hospital
	order []string
}

func NewHospitalRepository() *HospitalRepository {
	return &HospitalRepository{
		byID: make(map[string]*models.Hospital),
	}
}

// List возвращает все больницы в порядке добавления
func (r *HospitalRepository) List(ctx context.Context) ([]*models.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hospitals := make([]*models.Hospital, 0, len(r.order))
	for _, id := range r.order {
		snapshot := *r.byID[id]
		hospitals = append(hospitals, &snapshot)
	}
	return hospitals, nil
}

// GetByID возвращает больницу по её ID
func (r *HospitalRepository) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hospital, ok := r.byID[id]
	if !ok {
		return nil, service.ErrHospitalNotFound
	}
	snapshot := *hospital
	return &snapshot, nil
}

// Create добавляет больницу в справочник
func (r *HospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if hospital.ID == "" {
		hospital.ID = uuid.NewString()
	}
	snapshot := *hospital
	r.byID[hospital.ID] = &snapshot
	r.order = append(r.order, hospital.ID)
	return nil
}
