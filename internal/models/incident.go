package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentStatus - статус SOS-инцидента
type IncidentStatus string

const (
	IncidentPending  IncidentStatus = "pending"
	IncidentAssigned IncidentStatus = "assigned"
	IncidentEnRoute  IncidentStatus = "en_route"
	IncidentArrived  IncidentStatus = "arrived"
	IncidentResolved IncidentStatus = "resolved"
)

// Incident представляет SOS-инцидент от момента создания до разрешения.
// AssignedAmbulanceID заполняется при назначении машины и сохраняется
// в истории после разрешения инцидента.
type Incident struct {
	ID                  uuid.UUID      `json:"id"`
	PatientID           string         `json:"patient_id"`
	Latitude            float64        `json:"latitude"`
	Longitude           float64        `json:"longitude"`
	Status              IncidentStatus `json:"status"`
	AssignedAmbulanceID *string        `json:"assigned_ambulance_id,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	ResolvedAt          *time.Time     `json:"resolved_at,omitempty"`
	ETA                 string         `json:"eta,omitempty"`
	Notes               string         `json:"notes,omitempty"`
}

// IncidentUpdate - перечисленный набор полей, которые разрешено менять
// при частичном обновлении инцидента. nil-поле остается без изменений.
type IncidentUpdate struct {
	Status              *IncidentStatus
	AssignedAmbulanceID *string
	ETA                 *string
	ResolvedAt          *time.Time
	Notes               *string
}
