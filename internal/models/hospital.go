package models

// Hospital - статические справочные данные о больнице, ядро их не изменяет
type Hospital struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	BedsAvailable string  `json:"beds_available,omitempty"`
	Specialties   string  `json:"specialties,omitempty"`
}
