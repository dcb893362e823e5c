package models

import "time"

// Patient - пациент, для диспетчеризации используется только как идентификатор
type Patient struct {
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

// MedicalRecord - медицинская запись пациента
type MedicalRecord struct {
	ID           string `json:"id"`
	PatientID    string `json:"patient_id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	DoctorName   string `json:"doctor_name"`
	HospitalName string `json:"hospital_name,omitempty"`
	Date         string `json:"date"`
	Notes        string `json:"notes,omitempty"`
}

// OtpSession - сессия одноразового кода для входа пациента
type OtpSession struct {
	ID        string    `json:"id"`
	AbhaID    string    `json:"abha_id"`
	Otp       string    `json:"otp"`
	ExpiresAt time.Time `json:"expires_at"`
	Verified  bool      `json:"verified"`
}
