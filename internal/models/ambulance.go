package models

// AmbulanceStatus - статус доступности машины скорой помощи
type AmbulanceStatus string

const (
	AmbulanceAvailable AmbulanceStatus = "available"
	AmbulanceBusy      AmbulanceStatus = "busy"
	AmbulanceOffline   AmbulanceStatus = "offline"
)

// Ambulance представляет машину скорой помощи и её текущее состояние.
// Статус и позиция меняются только через FleetRepository.
type Ambulance struct {
	ID            string          `json:"id"`
	VehicleNumber string          `json:"vehicle_number"`
	DriverName    string          `json:"driver_name"`
	DriverPhone   string          `json:"driver_phone"`
	Status        AmbulanceStatus `json:"status"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	HospitalID    string          `json:"hospital_id,omitempty"`
}
