package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/geo"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// NearestCandidate - кандидат на назначение с рассчитанными расстоянием и ETA.
// EffectiveStatus равен "assigned" для выбранной машины, иначе её реальному статусу.
type NearestCandidate struct {
	Ambulance       *models.Ambulance
	DistanceKm      float64
	EtaMinutes      int
	EffectiveStatus string
}

// DispatchResult - результат обработки SOS-запроса
type DispatchResult struct {
	Incident *models.Incident
	Assigned *models.Ambulance
	Nearest  []NearestCandidate
}

// AssignResult - результат ручного назначения машины диспетчером
type AssignResult struct {
	Incident  *models.Incident
	Ambulance *models.Ambulance
	ETA       string
}

// DispatchStats - сводка для диспетчерской панели
type DispatchStats struct {
	ActiveIncidents     int
	AvailableAmbulances int
}

type dispatchService struct {
	fleet     FleetRepository
	incidents IncidentRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.DispatchPublisher
}

func NewDispatchService(fleet FleetRepository, incidents IncidentRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.DispatchPublisher) DispatchService {
	return &dispatchService{
		fleet:     fleet,
		incidents: incidents,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// HandleSos обрабатывает SOS-запрос: находит ближайшую свободную машину,
// резервирует её и создает инцидент. Отсутствие свободных машин - не ошибка:
// инцидент создается в статусе pending с запасным ETA.
func (s *dispatchService) HandleSos(ctx context.Context, patientID string, lat, lon float64) (*DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "HandleSos",
		"patient_id": patientID,
	})
	log.Info("Handling SOS request")

	ambulances, err := s.fleet.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list fleet")
		return nil, fmt.Errorf("service: could not list fleet: %w", err)
	}

	candidates := s.rankCandidates(ambulances, lat, lon)
	nearest := candidates
	if limit := s.candidateLimit(); len(nearest) > limit {
		nearest = nearest[:limit]
	}

	etaString := fmt.Sprintf("%d min", s.cfg.FallbackEtaMinutes)
	status := models.IncidentPending
	var assigned *models.Ambulance
	var assignedID *string

	if len(nearest) > 0 {
		winner := nearest[0]
		etaString = fmt.Sprintf("%d min", winner.EtaMinutes)
		status = models.IncidentAssigned

		// Резервируем победителя до создания инцидента
		assigned, err = s.fleet.SetStatus(ctx, winner.Ambulance.ID, models.AmbulanceBusy)
		if err != nil {
			log.WithError(err).Error("Failed to reserve ambulance")
			return nil, fmt.Errorf("service: could not reserve ambulance: %w", err)
		}
		assignedID = &assigned.ID
	}

	incident := &models.Incident{
		PatientID:           patientID,
		Latitude:            lat,
		Longitude:           lon,
		Status:              status,
		AssignedAmbulanceID: assignedID,
		CreatedAt:           time.Now(),
		ETA:                 etaString,
	}
	if err := s.incidents.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		// Снимаем резерв, чтобы машина не осталась busy без инцидента
		if assigned != nil {
			if _, relErr := s.fleet.SetStatus(ctx, assigned.ID, models.AmbulanceAvailable); relErr != nil {
				log.WithError(relErr).WithField("ambulance_id", assigned.ID).Warn("Failed to release reserved ambulance")
			}
		}
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	for i := range nearest {
		if assigned != nil && nearest[i].Ambulance.ID == assigned.ID {
			nearest[i].EffectiveStatus = "assigned"
		}
	}

	s.publishEvent(ctx, log, webhook.DispatchEvent{
		Type:        webhook.EventSosCreated,
		IncidentID:  incident.ID,
		PatientID:   patientID,
		AmbulanceID: derefOrEmpty(assignedID),
		ETA:         etaString,
		Timestamp:   time.Now(),
	})

	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"status":      incident.Status,
		"candidates":  len(nearest),
	}).Info("SOS request handled")

	return &DispatchResult{
		Incident: incident,
		Assigned: assigned,
		Nearest:  nearest,
	}, nil
}

// Assign выполняет ручное назначение машины на инцидент. Ранее назначенная
// другая машина освобождается, чтобы на инцидент не было двух резервов.
// Повторный вызов с той же машиной идемпотентен.
func (s *dispatchService) Assign(ctx context.Context, incidentID uuid.UUID, ambulanceID string) (*AssignResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "dispatch",
		"method":       "Assign",
		"incident_id":  incidentID,
		"ambulance_id": ambulanceID,
	})
	log.Info("Assigning ambulance to incident")

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Incident lookup failed")
		return nil, fmt.Errorf("service: %w", err)
	}

	ambulance, err := s.fleet.GetByID(ctx, ambulanceID)
	if err != nil {
		log.WithError(err).Warn("Ambulance lookup failed")
		return nil, fmt.Errorf("service: %w", err)
	}

	distance := geo.DistanceKm(incident.Latitude, incident.Longitude, ambulance.Latitude, ambulance.Longitude)
	etaString := fmt.Sprintf("%d min", geo.EtaMinutes(distance))

	ambulance, err = s.fleet.SetStatus(ctx, ambulanceID, models.AmbulanceBusy)
	if err != nil {
		log.WithError(err).Error("Failed to reserve ambulance")
		return nil, fmt.Errorf("service: could not reserve ambulance: %w", err)
	}

	// Освобождаем ранее назначенную машину, если она другая
	if prev := incident.AssignedAmbulanceID; prev != nil && *prev != ambulanceID {
		if _, err := s.fleet.SetStatus(ctx, *prev, models.AmbulanceAvailable); err != nil {
			log.WithError(err).WithField("previous_ambulance_id", *prev).Warn("Failed to release previously assigned ambulance")
		}
	}

	statusAssigned := models.IncidentAssigned
	updated, err := s.incidents.Update(ctx, incidentID, models.IncidentUpdate{
		Status:              &statusAssigned,
		AssignedAmbulanceID: &ambulanceID,
		ETA:                 &etaString,
	})
	if err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	s.publishEvent(ctx, log, webhook.DispatchEvent{
		Type:        webhook.EventAmbulanceAssigned,
		IncidentID:  incidentID,
		PatientID:   updated.PatientID,
		AmbulanceID: ambulanceID,
		ETA:         etaString,
		Timestamp:   time.Now(),
	})

	log.Info("Ambulance assigned successfully")
	return &AssignResult{
		Incident:  updated,
		Ambulance: ambulance,
		ETA:       etaString,
	}, nil
}

// Resolve закрывает инцидент и возвращает назначенную машину в available.
// Повторный вызов для уже разрешенного инцидента безопасен.
func (s *dispatchService) Resolve(ctx context.Context, incidentID uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "Resolve",
		"incident_id": incidentID,
	})
	log.Info("Resolving incident")

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Incident lookup failed")
		return nil, fmt.Errorf("service: %w", err)
	}

	if incident.AssignedAmbulanceID != nil {
		if _, err := s.fleet.SetStatus(ctx, *incident.AssignedAmbulanceID, models.AmbulanceAvailable); err != nil {
			log.WithError(err).WithField("ambulance_id", *incident.AssignedAmbulanceID).Warn("Failed to release assigned ambulance")
		}
	}

	statusResolved := models.IncidentResolved
	resolvedAt := time.Now()
	updated, err := s.incidents.Update(ctx, incidentID, models.IncidentUpdate{
		Status:     &statusResolved,
		ResolvedAt: &resolvedAt,
	})
	if err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	s.publishEvent(ctx, log, webhook.DispatchEvent{
		Type:        webhook.EventIncidentResolved,
		IncidentID:  incidentID,
		PatientID:   updated.PatientID,
		AmbulanceID: derefOrEmpty(updated.AssignedAmbulanceID),
		Timestamp:   time.Now(),
	})

	log.Info("Incident resolved successfully")
	return updated, nil
}

// ListIncidents возвращает все инциденты, новые первыми
func (s *dispatchService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	incidents, err := s.incidents.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// GetIncident получает инцидент по ID
func (s *dispatchService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("incident_id", id).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: %w", err)
	}
	return incident, nil
}

// GetStats возвращает сводку по активным инцидентам и свободным машинам
func (s *dispatchService) GetStats(ctx context.Context) (*DispatchStats, error) {
	active, err := s.incidents.CountActive(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count active incidents")
		return nil, fmt.Errorf("service: could not count active incidents: %w", err)
	}

	ambulances, err := s.fleet.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list fleet")
		return nil, fmt.Errorf("service: could not list fleet: %w", err)
	}

	available := 0
	for _, a := range ambulances {
		if a.Status == models.AmbulanceAvailable {
			available++
		}
	}

	return &DispatchStats{
		ActiveIncidents:     active,
		AvailableAmbulances: available,
	}, nil
}

// rankCandidates отбирает свободные машины и сортирует их по расстоянию
// до точки инцидента. Сортировка стабильная: при равных расстояниях
// сохраняется порядок выдачи хранилища.
func (s *dispatchService) rankCandidates(ambulances []*models.Ambulance, lat, lon float64) []NearestCandidate {
	candidates := make([]NearestCandidate, 0, len(ambulances))
	for _, a := range ambulances {
		if a.Status != models.AmbulanceAvailable {
			continue
		}
		distance := geo.DistanceKm(lat, lon, a.Latitude, a.Longitude)
		candidates = append(candidates, NearestCandidate{
			Ambulance:       a,
			DistanceKm:      distance,
			EtaMinutes:      geo.EtaMinutes(distance),
			EffectiveStatus: string(a.Status),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})
	return candidates
}

func (s *dispatchService) candidateLimit() int {
	if s.cfg.NearestCandidates > 0 {
		return s.cfg.NearestCandidates
	}
	return 3
}

// publishEvent ставит событие в очередь вебхуков. Ошибка публикации не
// прерывает операцию диспетчеризации.
func (s *dispatchService) publishEvent(ctx context.Context, log *logrus.Entry, event webhook.DispatchEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish dispatch event")
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
