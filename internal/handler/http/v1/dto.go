package v1

import (
	"github.com/google/uuid"
)

// SosRequest DTO для SOS-запроса пациента.
// Координаты - указатели: required на указателе отличает отсутствующее
// поле от валидных нулевых координат.
// @Description DTO для SOS-запроса пациента
type SosRequest struct {
	PatientID string   `json:"patient_id" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// AssignRequest DTO для ручного назначения машины
// @Description DTO для ручного назначения машины
type AssignRequest struct {
	AmbulanceID string `json:"ambulance_id" validate:"required"`
}

// CreateAmbulanceRequest DTO для регистрации машины скорой помощи
// @Description DTO для регистрации машины скорой помощи
type CreateAmbulanceRequest struct {
	VehicleNumber string   `json:"vehicle_number" validate:"required"`
	DriverName    string   `json:"driver_name" validate:"required"`
	DriverPhone   string   `json:"driver_phone" validate:"required"`
	Status        string   `json:"status,omitempty" validate:"omitempty,oneof=available busy offline"`
	Latitude      *float64 `json:"latitude" validate:"required,latitude"`
	Longitude     *float64 `json:"longitude" validate:"required,longitude"`
	HospitalID    string   `json:"hospital_id,omitempty"`
}

// SetAmbulanceStatusRequest DTO для смены статуса машины
// @Description DTO для смены статуса машины
type SetAmbulanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available busy offline"`
}

// CreateMedicalRecordRequest DTO для добавления медицинской записи
// @Description DTO для добавления медицинской записи
type CreateMedicalRecordRequest struct {
	PatientID    string `json:"patient_id" validate:"required"`
	Type         string `json:"type" validate:"required"`
	Title        string `json:"title" validate:"required"`
	DoctorName   string `json:"doctor_name" validate:"required"`
	HospitalName string `json:"hospital_name,omitempty"`
	Date         string `json:"date" validate:"required"`
	Notes        string `json:"notes,omitempty"`
}

// RequestOtpRequest DTO для запроса одноразового кода
// @Description DTO для запроса одноразового кода
type RequestOtpRequest struct {
	AbhaID string `json:"abha_id" validate:"required"`
}

// VerifyOtpRequest DTO для проверки одноразового кода
// @Description DTO для проверки одноразового кода
type VerifyOtpRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Otp       string `json:"otp" validate:"required"`
}

// IncidentResponse DTO для ответа с информацией об инциденте.
// Времена отдаются локализованной строкой вида "02:15 PM".
type IncidentResponse struct {
	ID                  uuid.UUID `json:"id"`
	PatientID           string    `json:"patient_id"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	Status              string    `json:"status"`
	AssignedAmbulanceID *string   `json:"assigned_ambulance_id,omitempty"`
	CreatedAt           string    `json:"created_at"`
	ResolvedAt          string    `json:"resolved_at,omitempty"`
	ETA                 string    `json:"eta,omitempty"`
	Notes               string    `json:"notes,omitempty"`
}

// AmbulanceResponse DTO для ответа с информацией о машине
type AmbulanceResponse struct {
	ID            string  `json:"id"`
	VehicleNumber string  `json:"vehicle_number"`
	DriverName    string  `json:"driver_name"`
	DriverPhone   string  `json:"driver_phone"`
	Status        string  `json:"status"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	HospitalID    string  `json:"hospital_id,omitempty"`
}

// AmbulanceContactResponse DTO с контактами экипажа назначенной машины
type AmbulanceContactResponse struct {
	VehicleNumber string `json:"vehicle_number"`
	DriverName    string `json:"driver_name"`
	DriverPhone   string `json:"driver_phone"`
}

// NearestAmbulanceResponse DTO для кандидата из списка ближайших машин.
// Для выбранной машины статус отображается как "assigned".
type NearestAmbulanceResponse struct {
	ID            string  `json:"id"`
	VehicleNumber string  `json:"vehicle_number"`
	DistanceKm    float64 `json:"distance_km"`
	EtaMinutes    int     `json:"eta_minutes"`
	Status        string  `json:"status"`
}

// SosResponse DTO для ответа на SOS-запрос
type SosResponse struct {
	Incident          *IncidentResponse           `json:"incident"`
	AssignedAmbulance *AmbulanceContactResponse   `json:"assigned_ambulance"`
	NearestAmbulances []*NearestAmbulanceResponse `json:"nearest_ambulances"`
}

// AssignResponse DTO для ответа на ручное назначение
type AssignResponse struct {
	Incident  *IncidentResponse         `json:"incident"`
	Ambulance *AmbulanceContactResponse `json:"ambulance"`
	ETA       string                    `json:"eta"`
}

// HospitalResponse DTO для ответа со справочными данными больницы
type HospitalResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	BedsAvailable string  `json:"beds_available,omitempty"`
	Specialties   string  `json:"specialties,omitempty"`
}

// PatientResponse DTO для ответа с данными пациента
type PatientResponse struct {
	ID               string `json:"id"`
	AbhaID           string `json:"abha_id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	BloodGroup       string `json:"blood_group,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}

// MedicalRecordResponse DTO для ответа с медицинской записью
type MedicalRecordResponse struct {
	ID           string `json:"id"`
	PatientID    string `json:"patient_id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	DoctorName   string `json:"doctor_name"`
	HospitalName string `json:"hospital_name,omitempty"`
	Date         string `json:"date"`
	Notes        string `json:"notes,omitempty"`
}

// RequestOtpResponse DTO для ответа на запрос одноразового кода.
// Сам код возвращается в ответе: SMS-шлюз в системе не моделируется.
type RequestOtpResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Otp       string `json:"otp"`
}

// VerifyOtpResponse DTO для ответа на проверку одноразового кода
type VerifyOtpResponse struct {
	Message string           `json:"message"`
	Patient *PatientResponse `json:"patient"`
}

// StatsResponse DTO для ответа со сводкой диспетчерской панели
type StatsResponse struct {
	ActiveIncidents     int `json:"active_incidents"`
	AvailableAmbulances int `json:"available_ambulances"`
}
